package web

import (
	"net/http"

	module "github.com/descilaunch/launchpad-web/internal/services/web/module"
	"github.com/descilaunch/launchpad-web/internal/services/web/platform/walletcookie"
)

// resolveViewer reads the wallet cookie into chrome viewer state. The cookie
// mirrors the browser wallet and carries no authority.
func resolveViewer(r *http.Request) module.Viewer {
	session := walletcookie.Read(r)
	if !session.Connected() {
		return module.Viewer{}
	}
	return module.Viewer{WalletAddress: session.Address, WalletShort: session.Short()}
}
