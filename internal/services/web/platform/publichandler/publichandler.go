// Package publichandler provides a shared base for web module handlers.
// It centralizes error handling, localization, and page rendering that would
// otherwise be duplicated across modules.
package publichandler

import (
	"net/http"

	"github.com/a-h/templ"
	module "github.com/descilaunch/launchpad-web/internal/services/web/module"
	apperrors "github.com/descilaunch/launchpad-web/internal/services/web/platform/errors"
	webi18n "github.com/descilaunch/launchpad-web/internal/services/web/platform/i18n"
	"github.com/descilaunch/launchpad-web/internal/services/web/platform/pagerender"
	"github.com/descilaunch/launchpad-web/internal/services/web/platform/weberror"
	webtemplates "github.com/descilaunch/launchpad-web/internal/services/web/templates"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/message"
)

// Base provides shared error handling and page rendering. Embed this in
// handler structs to get WritePage, WriteFragment, WriteNotFound and
// WriteError.
type Base struct {
	resolveViewer module.ResolveViewer
	logger        logrus.FieldLogger
}

// Option configures a Base.
type Option func(*Base)

// WithResolveViewer attaches a viewer resolver for layout rendering.
func WithResolveViewer(rv module.ResolveViewer) Option {
	return func(b *Base) { b.resolveViewer = rv }
}

// WithLogger attaches the logger used for render and server failures.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(b *Base) { b.logger = logger }
}

// NewBase builds a handler base with the given options.
func NewBase(opts ...Option) Base {
	var b Base
	for _, o := range opts {
		o(&b)
	}
	return b
}

// ResolveRequestViewer resolves viewer state for the request.
// Returns a zero Viewer when no resolver is configured.
func (b Base) ResolveRequestViewer(r *http.Request) module.Viewer {
	if b.resolveViewer == nil {
		return module.Viewer{}
	}
	return b.resolveViewer(r)
}

// Localizer resolves the request printer.
func (Base) Localizer(w http.ResponseWriter, r *http.Request) *message.Printer {
	loc, _ := webi18n.ResolveLocalizer(w, r)
	return loc
}

// Logger returns the configured logger, or the logrus standard logger.
func (b Base) Logger() logrus.FieldLogger {
	if b.logger == nil {
		return logrus.StandardLogger()
	}
	return b.logger
}

// WritePage renders a module page in the shared layout.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, title string, statusCode int, body templ.Component) {
	err := pagerender.WriteModulePage(w, r, b, pagerender.ModulePage{
		Title:      title,
		StatusCode: statusCode,
		Fragment:   body,
	})
	if err != nil {
		b.Logger().WithError(err).WithField("path", requestPath(r)).Error("render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// WriteFragment renders an HTMX fragment with an optional toast.
func (b Base) WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, body templ.Component, toast *webtemplates.Toast) {
	if err := pagerender.WriteFragment(w, r, statusCode, body, toast); err != nil {
		b.Logger().WithError(err).WithField("path", requestPath(r)).Error("render fragment")
	}
}

// WriteNotFound renders a localized 404 error page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, "", b)
}

// WriteError renders a user-safe error response: error pages for not-found
// and server errors, plain-text status messages for everything else.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	if apperrors.HTTPStatus(err) >= http.StatusInternalServerError {
		b.Logger().WithError(err).WithField("path", requestPath(r)).Warn("request failed")
	}
	weberror.WriteModuleError(w, r, err, b)
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	return r.URL.Path
}
