package templates

import (
	"strings"

	"github.com/descilaunch/launchpad-web/internal/services/web/routepath"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang        string
	Loc         Localizer
	Title       string
	CurrentPath string
	Wallet      WalletView
	Toast       *Toast
}

// WalletView is the header wallet state.
type WalletView struct {
	Address string
	Short   string
}

// Connected reports whether a wallet address is present.
func (w WalletView) Connected() bool {
	return strings.TrimSpace(w.Address) != ""
}

func navActive(current string, target string) bool {
	current = strings.TrimSpace(current)
	if target == routepath.Root {
		return current == routepath.Root
	}
	return current == target || strings.HasPrefix(current, target+"/")
}

func pageTitle(loc Localizer, title string) string {
	brand := T(loc, "layout.brand")
	title = strings.TrimSpace(title)
	if title == "" || title == brand {
		return brand
	}
	return title + " | " + brand
}
