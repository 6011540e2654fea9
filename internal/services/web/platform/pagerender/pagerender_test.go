package pagerender

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/descilaunch/launchpad-web/internal/services/web/module"
	flashnotice "github.com/descilaunch/launchpad-web/internal/services/web/platform/flash"
	webtemplates "github.com/descilaunch/launchpad-web/internal/services/web/templates"
)

type staticResolver module.Viewer

func (s staticResolver) ResolveRequestViewer(*http.Request) module.Viewer {
	return module.Viewer(s)
}

func TestWriteModulePageRendersHTMXFragmentWithStatus(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/launches", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, nil, ModulePage{
		Title:      "Launchpad",
		StatusCode: http.StatusCreated,
		Fragment:   textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusCreated)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="fragment-root"`) {
		t.Fatalf("body missing fragment marker: %q", body)
	}
	if strings.Contains(strings.ToLower(body), "<!doctype html") || strings.Contains(strings.ToLower(body), "<html") {
		t.Fatalf("expected htmx fragment without full document wrapper")
	}
}

func TestWriteModulePageRendersFullPageWithLayout(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/launches", nil)
	rr := httptest.NewRecorder()

	resolver := staticResolver{WalletAddress: "0xabc", WalletShort: "0xabc"}
	err := WriteModulePage(rr, req, resolver, ModulePage{
		Title:      "Launchpad",
		StatusCode: http.StatusAccepted,
		Fragment:   textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusAccepted)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q, want %q", got, "text/html; charset=utf-8")
	}
	body := rr.Body.String()
	for _, marker := range []string{`id="main"`, `id="fragment-root"`, `action="/wallet/disconnect"`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
}

func TestWriteModulePageRendersToastFromFlashNotice(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/launches/neuro", nil)
	setFlashCookie(t, req, flashnotice.NoticeError("toast.wallet_required"))
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, nil, ModulePage{
		Title:    "Neuro",
		Fragment: textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	body := rr.Body.String()
	for _, marker := range []string{`id="toast-region"`, `Connect wallet`, `toast-destructive`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
	if !responseHasCookieName(rr, flashnotice.CookieName) {
		t.Fatalf("response missing %q clear cookie", flashnotice.CookieName)
	}
}

func TestWriteModulePageHTMXDoesNotConsumeFlashNotice(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/launches", nil)
	req.Header.Set("HX-Request", "true")
	setFlashCookie(t, req, flashnotice.NoticeSuccess("toast.swap_submitted"))
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, nil, ModulePage{
		Fragment: textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if strings.Contains(rr.Body.String(), "Swap submitted") {
		t.Fatalf("htmx body unexpectedly contains toast markup: %q", rr.Body.String())
	}
	if responseHasCookieName(rr, flashnotice.CookieName) {
		t.Fatalf("htmx response unexpectedly set %q cookie", flashnotice.CookieName)
	}
}

func TestWriteFragmentAppendsToast(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	toast := webtemplates.Toast{Title: "Quote unavailable", Destructive: true}
	if err := WriteFragment(rr, httptest.NewRequest(http.MethodPost, "/", nil), http.StatusOK, textComponent(`<form id="swap-widget"></form>`), &toast); err != nil {
		t.Fatalf("WriteFragment() error = %v", err)
	}
	body := rr.Body.String()
	if !strings.HasPrefix(body, `<form id="swap-widget"></form>`) || !strings.Contains(body, `hx-swap-oob="innerHTML"`) {
		t.Fatalf("unexpected body %q", body)
	}
}

func setFlashCookie(t *testing.T, req *http.Request, notice flashnotice.Notice) {
	t.Helper()
	seed := httptest.NewRecorder()
	flashnotice.Write(seed, req, notice)
	setCookieHeader := strings.TrimSpace(seed.Header().Get("Set-Cookie"))
	if setCookieHeader == "" {
		t.Fatalf("expected flash cookie header")
	}
	cookie, err := http.ParseSetCookie(setCookieHeader)
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	req.AddCookie(cookie)
}

func responseHasCookieName(rr *httptest.ResponseRecorder, name string) bool {
	if rr == nil {
		return false
	}
	for _, cookie := range rr.Result().Cookies() {
		if cookie != nil && cookie.Name == name {
			return true
		}
	}
	return false
}

type textComponent string

func (c textComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}
