package launches

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/descilaunch/launchpad-web/internal/services/web/platform/publichandler"
	"github.com/descilaunch/launchpad-web/internal/services/web/viewstate"
)

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newHandlers(newService(nil, nil), viewstate.NewStore(viewstate.Options{}), nil, publichandler.NewBase()))
}

func TestRegisterRoutesPathAndMethodContracts(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, &fakeGateway{})
	_, ref := env.openView(sampleProject())
	viewPath := "/launches/" + ref.token + "/views/" + ref.viewID

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "detail unknown launch", method: http.MethodGet, path: "/launches/nope", wantStatus: http.StatusNotFound},
		{name: "vote get", method: http.MethodGet, path: viewPath + "/vote", wantStatus: http.StatusNotFound},
		{name: "quote get", method: http.MethodGet, path: viewPath + "/swap/quote", wantStatus: http.StatusNotFound},
		{name: "guard post", method: http.MethodPost, path: viewPath + "/swap/guard", wantStatus: http.StatusFound},
		{name: "feed get", method: http.MethodGet, path: viewPath + "/feed", wantStatus: http.StatusOK},
		{name: "feed post", method: http.MethodPost, path: viewPath + "/feed", wantStatus: http.StatusNotFound},
		{name: "deep unknown path", method: http.MethodGet, path: "/launches/a/b/c", wantStatus: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			env.mux.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
		})
	}
}
