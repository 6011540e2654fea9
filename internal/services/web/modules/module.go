// Package modules defines web module registry helpers.
package modules

import (
	module "github.com/descilaunch/launchpad-web/internal/services/web/module"
	"github.com/descilaunch/launchpad-web/internal/services/web/modules/launches"
	"github.com/descilaunch/launchpad-web/internal/services/web/platform/requestmeta"
	"github.com/descilaunch/launchpad-web/internal/services/web/viewstate"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// ModuleResolvers carries request-scoped resolver functions. The server
// builds them from the wallet cookie and passes them to registry functions
// for module composition.
type ModuleResolvers struct {
	ResolveViewer module.ResolveViewer
}

// Dependencies carries the backend clients and shared state required to
// compose the web module registry. Client fields are typed as the narrow
// interfaces defined by the consuming modules.
type Dependencies struct {
	// Launchpad serves both the project index and the detail page.
	Launchpad launches.LaunchpadGateway
	Feeds     launches.FeedLoader
	Views     *viewstate.Store

	NotifyLimiter *rate.Limiter
	PreviewLimit  int
	SchemePolicy  requestmeta.SchemePolicy
	Logger        logrus.FieldLogger
}
