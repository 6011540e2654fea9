package publichandler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/descilaunch/launchpad-web/internal/platform/logging"
	module "github.com/descilaunch/launchpad-web/internal/services/web/module"
	apperrors "github.com/descilaunch/launchpad-web/internal/services/web/platform/errors"
	webtemplates "github.com/descilaunch/launchpad-web/internal/services/web/templates"
)

func TestResolveRequestViewerDelegatesToResolver(t *testing.T) {
	t.Parallel()

	base := NewBase(WithResolveViewer(func(*http.Request) module.Viewer {
		return module.Viewer{WalletAddress: "0xabc"}
	}))
	got := base.ResolveRequestViewer(httptest.NewRequest(http.MethodGet, "/", nil))
	if !got.Connected() {
		t.Fatalf("ResolveRequestViewer() = %+v, want connected", got)
	}
}

func TestResolveRequestViewerReturnsZeroWhenNil(t *testing.T) {
	t.Parallel()

	if got := NewBase().ResolveRequestViewer(httptest.NewRequest(http.MethodGet, "/", nil)); got.Connected() {
		t.Fatalf("ResolveRequestViewer() = %+v, want zero", got)
	}
}

func TestWritePageUsesViewerInLayout(t *testing.T) {
	t.Parallel()

	base := NewBase(WithResolveViewer(func(*http.Request) module.Viewer {
		return module.Viewer{WalletAddress: "0xabcdef0123456789", WalletShort: "0xabcd…6789"}
	}))
	rr := httptest.NewRecorder()
	base.WritePage(rr, httptest.NewRequest(http.MethodGet, "/launches", nil), "Launchpad", http.StatusOK, webtemplates.ExpiredFragment(nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "0xabcd…6789") {
		t.Fatalf("body missing wallet chip: %q", rr.Body.String())
	}
}

func TestWriteErrorMapsNotFound(t *testing.T) {
	t.Parallel()

	base := NewBase(WithLogger(logging.Discard()))
	rr := httptest.NewRecorder()
	base.WriteError(rr, httptest.NewRequest(http.MethodGet, "/launches/x", nil), apperrors.EK(apperrors.KindNotFound, "detail.error.not_found", "launch not found"))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Launch not found.") {
		t.Fatalf("body = %q", rr.Body.String())
	}
}

func TestWriteNotFoundUsesGenericCopy(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewBase().WriteNotFound(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "The page you requested could not be found.") {
		t.Fatalf("body = %q", rr.Body.String())
	}
}
