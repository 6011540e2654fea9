package home

import (
	"net/http"

	"github.com/descilaunch/launchpad-web/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.Launches, h.handleLaunches)
	mux.HandleFunc(routepath.Root, h.WriteNotFound)
}
