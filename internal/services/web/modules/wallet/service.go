package wallet

import (
	apperrors "github.com/descilaunch/launchpad-web/internal/services/web/platform/errors"
	"github.com/descilaunch/launchpad-web/internal/services/web/platform/walletcookie"
)

// service validates wallet addresses posted by the browser wallet kit.
type service struct{}

func newService() service {
	return service{}
}

// connect returns the canonical form of a Sui address.
func (service) connect(raw string) (string, error) {
	address, ok := walletcookie.NormalizeAddress(raw)
	if !ok {
		return "", apperrors.EK(apperrors.KindInvalidInput, "toast.wallet_invalid.description", "invalid wallet address")
	}
	return address, nil
}
