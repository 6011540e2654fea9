package modules

import (
	"github.com/descilaunch/launchpad-web/internal/services/web/modules/home"
	"github.com/descilaunch/launchpad-web/internal/services/web/modules/launches"
	"github.com/descilaunch/launchpad-web/internal/services/web/modules/wallet"
	"github.com/descilaunch/launchpad-web/internal/services/web/platform/publichandler"
)

// DefaultModules returns the launchpad web modules in mount order.
func DefaultModules(deps Dependencies, res ModuleResolvers) []Module {
	base := publichandler.NewBase(
		publichandler.WithResolveViewer(res.ResolveViewer),
		publichandler.WithLogger(deps.Logger),
	)

	homeOpts := []home.Option{home.WithBase(base), home.WithPreviewLimit(deps.PreviewLimit)}
	launchOpts := []launches.Option{
		launches.WithBase(base),
		launches.WithFeedLoader(deps.Feeds),
		launches.WithViews(deps.Views),
		launches.WithNotifyLimiter(deps.NotifyLimiter),
	}
	if deps.Launchpad != nil {
		homeOpts = append(homeOpts, home.WithGateway(deps.Launchpad))
		launchOpts = append(launchOpts, launches.WithGateway(deps.Launchpad))
	}

	return []Module{
		home.New(homeOpts...),
		launches.New(launchOpts...),
		wallet.New(wallet.WithBase(base), wallet.WithSchemePolicy(deps.SchemePolicy)),
	}
}
