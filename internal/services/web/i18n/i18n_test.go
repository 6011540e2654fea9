package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTagPrecedence(t *testing.T) {
	t.Run("query param persists", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=en", nil)
		req.Header.Set("Accept-Language", "fr")

		tag, persist := ResolveTag(req)
		if tag != language.English {
			t.Fatalf("expected en, got %s", tag.String())
		}
		if !persist {
			t.Fatalf("expected persist to be true")
		}
	})

	t.Run("cookie is not persisted again", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en-GB"})

		tag, persist := ResolveTag(req)
		if tag != language.English {
			t.Fatalf("expected en, got %s", tag.String())
		}
		if persist {
			t.Fatalf("expected persist to be false")
		}
	})

	t.Run("unsupported accept-language falls back", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		req.Header.Set("Accept-Language", "pt-BR, ja;q=0.9")

		tag, _ := ResolveTag(req)
		if tag != Default() {
			t.Fatalf("expected default, got %s", tag.String())
		}
	})
}

func TestResolveTagInvalidQueryParam(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=not-a-lang", nil)

	tag, persist := ResolveTag(req)
	if tag != Default() {
		t.Fatalf("expected default, got %s", tag.String())
	}
	if persist {
		t.Fatalf("expected persist to be false for invalid tag")
	}
}

func TestResolveTagNilRequest(t *testing.T) {
	tag, persist := ResolveTag(nil)
	if tag != Default() || persist {
		t.Fatalf("ResolveTag(nil) = %s, %v", tag, persist)
	}
}

func TestSetLanguageCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	SetLanguageCookie(rec, language.English)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != LangCookieName || cookies[0].Value != "en" {
		t.Fatalf("cookies = %+v", cookies)
	}
}

func TestCatalogCoversDetailCopy(t *testing.T) {
	printer := Printer(language.English)
	tests := map[string]string{
		"detail.error.not_found":        "Launch not found.",
		"detail.error.load_failed":      "Failed to load launch details.",
		"toast.wallet_required.title":   "Connect wallet",
		"toast.quote_unavailable.title": "Quote unavailable",
		"web.error.view_expired":        "This page has expired, reload to continue.",
	}
	for key, want := range tests {
		if got := printer.Sprintf(key); got != want {
			t.Fatalf("Sprintf(%q) = %q, want %q", key, got, want)
		}
	}
	if got := printer.Sprintf("detail.sentiment.positive", 88); got != "88% POSITIVE" {
		t.Fatalf("positive = %q", got)
	}
}
