package wallet

import (
	"net/http"

	"github.com/descilaunch/launchpad-web/internal/services/web/platform/httpx"
	"github.com/descilaunch/launchpad-web/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodPost+" "+routepath.WalletConnect, h.handleConnect)
	mux.Handle(routepath.WalletConnect, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.WalletDisconnect, h.handleDisconnect)
	mux.Handle(routepath.WalletDisconnect, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(routepath.WalletPrefix, h.WriteNotFound)
}
