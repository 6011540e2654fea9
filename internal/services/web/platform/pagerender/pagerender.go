// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	module "github.com/descilaunch/launchpad-web/internal/services/web/module"
	flashnotice "github.com/descilaunch/launchpad-web/internal/services/web/platform/flash"
	"github.com/descilaunch/launchpad-web/internal/services/web/platform/httpx"
	webi18n "github.com/descilaunch/launchpad-web/internal/services/web/platform/i18n"
	webtemplates "github.com/descilaunch/launchpad-web/internal/services/web/templates"
)

// RequestResolver resolves viewer state from a request.
// This decouples platform rendering from the module-layer Dependencies type.
type RequestResolver interface {
	ResolveRequestViewer(r *http.Request) module.Viewer
}

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WriteModulePage writes a module page. HTMX requests get the fragment
// alone; everything else gets the full layout with any pending flash toast.
func WriteModulePage(w http.ResponseWriter, r *http.Request, resolver RequestResolver, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	loc, lang := webi18n.ResolveLocalizer(w, r)
	ctx := httpx.RequestContext(r)
	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := fragment.Render(ctx, &buf); err != nil {
			return err
		}
		return writeBuffer(w, statusCode, &buf)
	}

	viewer := module.Viewer{}
	if resolver != nil {
		viewer = resolver.ResolveRequestViewer(r)
	}
	path := ""
	if r != nil && r.URL != nil {
		path = r.URL.Path
	}
	layout := webtemplates.Layout(webtemplates.PageContext{
		Lang:        lang,
		Loc:         loc,
		Title:       page.Title,
		CurrentPath: path,
		Wallet:      webtemplates.WalletView{Address: viewer.WalletAddress, Short: viewer.WalletShort},
		Toast:       resolveFlashToast(w, r, loc),
	})
	if err := layout.Render(templ.WithChildren(ctx, fragment), &buf); err != nil {
		return err
	}
	return writeBuffer(w, statusCode, &buf)
}

// WriteFragment writes an HTMX fragment, appending toast as an out-of-band
// swap when present.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, fragment templ.Component, toast *webtemplates.Toast) error {
	if w == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	ctx := httpx.RequestContext(r)
	var buf bytes.Buffer
	if fragment != nil {
		if err := fragment.Render(ctx, &buf); err != nil {
			return err
		}
	}
	if toast != nil {
		if err := webtemplates.ToastOOB(*toast).Render(ctx, &buf); err != nil {
			return err
		}
	}
	return writeBuffer(w, statusCode, &buf)
}

func writeBuffer(w http.ResponseWriter, statusCode int, buf *bytes.Buffer) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err := w.Write(buf.Bytes())
	return err
}

func resolveFlashToast(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer) *webtemplates.Toast {
	notice, ok := flashnotice.ReadAndClear(w, r)
	if !ok {
		return nil
	}
	toast := webtemplates.NewToast(loc, notice.Key, notice.Destructive())
	if toast.Title == "" {
		return nil
	}
	return &toast
}
