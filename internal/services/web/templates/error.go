package templates

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/descilaunch/launchpad-web/internal/services/web/routepath"
)

const (
	errorPageTitleNotFoundKey  = "web.error.page_title_not_found"
	errorPageTitleServerErrKey = "web.error.page_title_server_error"
	errorMessageNotFoundKey    = "web.error.message_not_found"
	errorMessageServerErrKey   = "web.error.message_server_error"
	errorBackKey               = "web.error.action_back"
	expiredMessageKey          = "web.error.view_expired"
)

// ErrorPageTitle returns the browser page title for error pages.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, errorPageTitleNotFoundKey)
	}
	return T(loc, errorPageTitleServerErrKey)
}

// ErrorPage renders a page-level error. An empty message falls back to the
// generic copy for the status.
func ErrorPage(statusCode int, message string, loc Localizer) templ.Component {
	return component(func(h *html) {
		message = strings.TrimSpace(message)
		if message == "" {
			message = errorMessage(statusCode, loc)
		}
		h.open("section", "class", "mx-auto max-w-xl py-20 text-center", "data-error-status", itoa(statusCode))
		h.el("p", itoa(statusCode), "class", "font-mono text-sm text-slate-500")
		h.el("h1", message, "class", "mt-2 text-2xl font-semibold text-slate-100")
		h.el("a", T(loc, errorBackKey), "href", routepath.Launches, "class", "mt-6 inline-flex rounded-full border border-slate-600 px-4 py-2 text-sm text-slate-200 hover:bg-slate-800")
		h.close("section")
	})
}

// ExpiredFragment replaces a widget whose page view is gone.
func ExpiredFragment(loc Localizer) templ.Component {
	return component(func(h *html) {
		h.el("div", T(loc, expiredMessageKey), "class", "rounded-xl border border-amber-500/30 bg-amber-500/10 p-4 text-sm text-amber-200", "role", "alert", "data-view-expired", "true")
	})
}

func errorMessage(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, errorMessageNotFoundKey)
	}
	return T(loc, errorMessageServerErrKey)
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
