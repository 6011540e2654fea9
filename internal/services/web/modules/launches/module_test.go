package launches

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/descilaunch/launchpad-web/internal/launchpad"
	"github.com/descilaunch/launchpad-web/internal/services/web/routepath"
	"github.com/descilaunch/launchpad-web/internal/services/web/viewstate"
)

func TestModuleIDAndPrefix(t *testing.T) {
	t.Parallel()

	m := New()
	if m.ID() != "launches" {
		t.Fatalf("ID() = %q", m.ID())
	}
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.LaunchesPrefix {
		t.Fatalf("Prefix = %q", mount.Prefix)
	}
}

func TestModuleHealth(t *testing.T) {
	t.Parallel()

	if New().Healthy() {
		t.Fatal("module without gateway reported healthy")
	}
	if !New(WithGateway(&fakeGateway{})).Healthy() {
		t.Fatal("module with gateway reported unhealthy")
	}
}

func TestModuleOpensViewsInSharedStore(t *testing.T) {
	t.Parallel()

	views := viewstate.NewStore(viewstate.Options{})
	t.Cleanup(views.Close)
	m := New(WithGateway(&fakeGateway{projects: []launchpad.Project{sampleProject()}}), WithViews(views))
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}

	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/launches/LDAO", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if views.Len() != 1 {
		t.Fatalf("views = %d, want 1", views.Len())
	}
}

func TestModuleWithoutGatewayReportsUpstreamFailure(t *testing.T) {
	t.Parallel()

	mount, err := New().Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/launches/LDAO", nil))
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadGateway)
	}
}
