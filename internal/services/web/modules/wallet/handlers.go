package wallet

import (
	"net/http"
	"strings"

	"github.com/descilaunch/launchpad-web/internal/services/web/platform/flash"
	"github.com/descilaunch/launchpad-web/internal/services/web/platform/httpx"
	"github.com/descilaunch/launchpad-web/internal/services/web/platform/publichandler"
	"github.com/descilaunch/launchpad-web/internal/services/web/platform/requestmeta"
	"github.com/descilaunch/launchpad-web/internal/services/web/platform/walletcookie"
	"github.com/descilaunch/launchpad-web/internal/services/web/routepath"
)

const (
	noticeConnected    = "toast.wallet_connected"
	noticeDisconnected = "toast.wallet_disconnected"
	noticeInvalid      = "toast.wallet_invalid"
)

type handlers struct {
	publichandler.Base
	service service
	policy  requestmeta.SchemePolicy
}

func newHandlers(s service, base publichandler.Base, policy requestmeta.SchemePolicy) handlers {
	return handlers{Base: base, service: s, policy: policy}
}

func (h handlers) handleConnect(w http.ResponseWriter, r *http.Request) {
	if !h.sameOrigin(r) {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	returnTo := h.returnPath(r)
	address, err := h.service.connect(r.FormValue("address"))
	if err != nil {
		flash.WriteWithPolicy(w, r, flash.NoticeError(noticeInvalid), h.policy)
		httpx.WriteRedirect(w, r, returnTo)
		return
	}
	walletcookie.WriteWithPolicy(w, r, address, h.policy)
	h.Logger().WithField("wallet", walletcookie.Session{Address: address}.Short()).Info("wallet connected")
	flash.WriteWithPolicy(w, r, flash.NoticeSuccess(noticeConnected), h.policy)
	httpx.WriteRedirect(w, r, returnTo)
}

func (h handlers) handleDisconnect(w http.ResponseWriter, r *http.Request) {
	session := walletcookie.Read(r)
	if session.Connected() && !h.sameOrigin(r) {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	walletcookie.ClearWithPolicy(w, r, h.policy)
	if session.Connected() {
		flash.WriteWithPolicy(w, r, flash.NoticeInfo(noticeDisconnected), h.policy)
	}
	httpx.WriteRedirect(w, r, h.returnPath(r))
}

func (h handlers) returnPath(r *http.Request) string {
	return requestmeta.LocalReturnPath(r, strings.TrimSpace(r.FormValue("return_to")), routepath.Root, h.policy)
}

// sameOrigin rejects cross-site form posts. Requests that carry neither
// Origin nor Referer are accepted.
func (h handlers) sameOrigin(r *http.Request) bool {
	if r.Header.Get("Origin") == "" && r.Header.Get("Referer") == "" {
		return true
	}
	return requestmeta.HasSameOriginProofWithPolicy(r, h.policy)
}
