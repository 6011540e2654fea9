package app

import (
	module "github.com/descilaunch/launchpad-web/internal/services/web/module"
	"github.com/sirupsen/logrus"
)

// Config captures the composition inputs for the web root handler.
type Config struct {
	Modules []module.Module
	// Logger receives access logs and recovered panics.
	Logger logrus.FieldLogger
}
