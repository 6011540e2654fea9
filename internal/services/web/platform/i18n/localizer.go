// Package i18n resolves the request localizer for web handlers.
package i18n

import (
	"net/http"

	webi18n "github.com/descilaunch/launchpad-web/internal/services/web/i18n"
	"golang.org/x/text/message"
)

// Localizer is the printer surface templates need.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// ResolveLocalizer picks the request language, persists an explicit choice
// as a cookie and returns its printer with the language tag.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, setCookie := webi18n.ResolveTag(r)
	if setCookie {
		webi18n.SetLanguageCookie(w, tag)
	}
	return webi18n.Printer(tag), tag.String()
}
