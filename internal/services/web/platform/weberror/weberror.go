// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	apperrors "github.com/descilaunch/launchpad-web/internal/services/web/platform/errors"
	webi18n "github.com/descilaunch/launchpad-web/internal/services/web/platform/i18n"
	"github.com/descilaunch/launchpad-web/internal/services/web/platform/pagerender"
	webtemplates "github.com/descilaunch/launchpad-web/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized error page. message replaces the generic
// copy when non-empty.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, message string, resolver pagerender.RequestResolver) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, _ := webi18n.ResolveLocalizer(w, r)
	err := pagerender.WriteModulePage(w, r, resolver, pagerender.ModulePage{
		Title:      webtemplates.ErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Fragment:   webtemplates.ErrorPage(statusCode, message, loc),
	})
	if err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response: an error
// page for not-found and server failures, plain text otherwise.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, resolver pagerender.RequestResolver) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	loc, _ := webi18n.ResolveLocalizer(w, r)
	if ShouldRenderAppError(statusCode) {
		message := ""
		if apperrors.LocalizationKey(err) != "" {
			message = PublicMessage(loc, err)
		}
		WriteAppError(w, r, statusCode, message, resolver)
		return
	}
	http.Error(w, PublicMessage(loc, err), statusCode)
}
