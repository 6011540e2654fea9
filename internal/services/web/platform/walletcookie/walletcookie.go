// Package walletcookie stores the connected wallet address for the browser.
//
// The cookie only mirrors what the browser wallet kit reports; it grants no
// authority and is never used to sign anything.
package walletcookie

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/descilaunch/launchpad-web/internal/services/web/platform/requestmeta"
)

// Name is the wallet cookie name.
const Name = "dl_wallet"

// maxAge keeps a connection for a week of inactivity.
const maxAge = 7 * 24 * 60 * 60

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{1,64}$`)

// Session is the wallet connection seen on a request.
type Session struct {
	Address string
}

// Connected reports whether a wallet address is present.
func (s Session) Connected() bool {
	return s.Address != ""
}

// Short returns the abbreviated address shown in the header.
func (s Session) Short() string {
	if len(s.Address) <= 10 {
		return s.Address
	}
	return s.Address[:6] + "…" + s.Address[len(s.Address)-4:]
}

// NormalizeAddress lower-cases a Sui address and reports whether it is valid.
func NormalizeAddress(raw string) (string, bool) {
	address := strings.TrimSpace(raw)
	if !addressPattern.MatchString(address) {
		return "", false
	}
	return strings.ToLower(address), true
}

// Read returns the wallet session carried by the request. Malformed cookie
// values read as disconnected.
func Read(r *http.Request) Session {
	if r == nil {
		return Session{}
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return Session{}
	}
	address, ok := NormalizeAddress(cookie.Value)
	if !ok {
		return Session{}
	}
	return Session{Address: address}
}

// Write stores the wallet address for the current request context.
func Write(w http.ResponseWriter, r *http.Request, address string) {
	WriteWithPolicy(w, r, address, requestmeta.SchemePolicy{})
}

// WriteWithPolicy stores the wallet address for the current request context.
// Invalid addresses are ignored.
func WriteWithPolicy(w http.ResponseWriter, r *http.Request, address string, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	normalized, ok := NormalizeAddress(address)
	if !ok {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    normalized,
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, policy),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

// Clear expires the wallet cookie.
func Clear(w http.ResponseWriter, r *http.Request) {
	ClearWithPolicy(w, r, requestmeta.SchemePolicy{})
}

// ClearWithPolicy expires the wallet cookie.
func ClearWithPolicy(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, policy),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
