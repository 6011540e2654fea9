package static

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandlerServesEmbeddedAssets(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"app.js", "app.css"} {
		rr := httptest.NewRecorder()
		Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/"+name, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("%s status = %d", name, rr.Code)
		}
		if rr.Header().Get("Cache-Control") == "" {
			t.Fatalf("%s missing cache header", name)
		}
	}
}

func TestScriptHandlesWalletPrompt(t *testing.T) {
	t.Parallel()

	payload, err := FS.ReadFile("app.js")
	if err != nil {
		t.Fatalf("read app.js: %v", err)
	}
	for _, marker := range []string{"wallet-required", "data-tab-target", "data-busy-label", "twttr", "responseHandling"} {
		if !strings.Contains(string(payload), marker) {
			t.Fatalf("app.js missing %q", marker)
		}
	}
}
