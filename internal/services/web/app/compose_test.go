package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/descilaunch/launchpad-web/internal/services/web/module"
)

func TestComposeRejectsDuplicateModulePrefix(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "one", mount: module.Mount{Prefix: "/one/", Handler: noContent()}},
			stubModule{id: "two", mount: module.Mount{Prefix: "/one/", Handler: noContent()}},
		},
	})
	if err == nil {
		t.Fatalf("expected duplicate prefix error")
	}
	if got := err.Error(); !strings.Contains(got, `"two"`) || !strings.Contains(got, `"one"`) {
		t.Fatalf("unexpected error = %q", got)
	}
}

func TestComposeRejectsInvalidModulePrefixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
	}{
		{name: "missing leading slash", prefix: "launches/"},
		{name: "missing trailing slash", prefix: "/launches"},
		{name: "contains surrounding whitespace", prefix: "/launches/ "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Compose(ComposeInput{
				Modules: []module.Module{
					stubModule{id: "bad", mount: module.Mount{Prefix: tc.prefix, Handler: noContent()}},
				},
			})
			if err == nil {
				t.Fatalf("expected invalid prefix error")
			}
			if got := err.Error(); !strings.Contains(got, "invalid prefix") || !strings.Contains(got, tc.prefix) || !strings.Contains(got, "bad") {
				t.Fatalf("unexpected error = %q", got)
			}
		})
	}
}

func TestComposeRejectsReservedPrefixes(t *testing.T) {
	t.Parallel()

	for _, prefix := range []string{"/static/", "/up/"} {
		_, err := Compose(ComposeInput{
			Modules: []module.Module{stubModule{id: "greedy", mount: module.Mount{Prefix: prefix, Handler: noContent()}}},
		})
		if err == nil || !strings.Contains(err.Error(), "reserved") {
			t.Fatalf("Compose(%q) error = %v, want reserved prefix error", prefix, err)
		}
	}
}

func TestComposeRejectsNilModule(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{Modules: []module.Module{nil}})
	if err == nil {
		t.Fatalf("expected nil module error")
	}
}

func TestComposeRejectsMissingHandler(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Modules: []module.Module{stubModule{id: "empty", mount: module.Mount{Prefix: "/empty/"}}},
	})
	if err == nil || !strings.Contains(err.Error(), "handler is required") {
		t.Fatalf("error = %v, want handler is required", err)
	}
}

func TestComposePropagatesMountError(t *testing.T) {
	t.Parallel()

	cause := errors.New("distribution does not sum to 100")
	_, err := Compose(ComposeInput{
		Modules: []module.Module{stubModule{id: "launches", err: cause}},
	})
	if !errors.Is(err, cause) {
		t.Fatalf("error = %v, want wrapped %v", err, cause)
	}
}

func TestComposeRoutesToOwningModule(t *testing.T) {
	t.Parallel()

	root := stubModule{id: "home", mount: module.Mount{Prefix: "/", Handler: statusHandler(http.StatusOK)}}
	launches := stubModule{id: "launches", mount: module.Mount{Prefix: "/launches/", Handler: statusHandler(http.StatusAccepted)}}

	h, err := Compose(ComposeInput{Modules: []module.Module{root, launches}})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	tests := []struct {
		path string
		want int
	}{
		{path: "/", want: http.StatusOK},
		{path: "/launches", want: http.StatusOK},
		{path: "/launches/longevity-dao", want: http.StatusAccepted},
		{path: "/launches/", want: http.StatusAccepted},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if rr.Code != tc.want {
			t.Fatalf("GET %s status = %d, want %d", tc.path, rr.Code, tc.want)
		}
	}
}

func TestComposeWithoutRootModuleRedirectsBarePrefix(t *testing.T) {
	t.Parallel()

	wallet := stubModule{id: "wallet", mount: module.Mount{Prefix: "/wallet/", Handler: noContent()}}
	h, err := Compose(ComposeInput{Modules: []module.Module{wallet}})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/wallet", nil))
	if rr.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMovedPermanently)
	}
}

func TestSlashlessPrefixAlias(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"/":          "",
		"/launches/": "/launches",
		"/wallet/":   "/wallet",
	}
	for prefix, want := range tests {
		if got := slashlessPrefixAlias(prefix); got != want {
			t.Fatalf("slashlessPrefixAlias(%q) = %q, want %q", prefix, got, want)
		}
	}
}

type stubModule struct {
	id    string
	mount module.Mount
	err   error
}

func (s stubModule) ID() string { return s.id }

func (s stubModule) Mount() (module.Mount, error) {
	if s.err != nil {
		return module.Mount{}, s.err
	}
	return s.mount, nil
}

type healthStub struct {
	stubModule
	healthy bool
}

func (h healthStub) Healthy() bool { return h.healthy }

func noContent() http.Handler { return statusHandler(http.StatusNoContent) }

func statusHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
}
