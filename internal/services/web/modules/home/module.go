package home

import (
	"net/http"

	"github.com/descilaunch/launchpad-web/internal/services/web/module"
	"github.com/descilaunch/launchpad-web/internal/services/web/platform/publichandler"
	"github.com/descilaunch/launchpad-web/internal/services/web/routepath"
)

// DefaultPreviewLimit is how many projects the landing page previews.
const DefaultPreviewLimit = 6

// Option configures a home module.
type Option func(*Module)

// WithGateway sets the project list gateway.
func WithGateway(g ProjectGateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithBase sets the shared handler base.
func WithBase(b publichandler.Base) Option {
	return func(m *Module) { m.base = b }
}

// WithPreviewLimit bounds the landing page card grid.
func WithPreviewLimit(limit int) Option {
	return func(m *Module) { m.previewLimit = limit }
}

// Module provides the landing page and the launch index.
type Module struct {
	gateway      ProjectGateway
	base         publichandler.Base
	previewLimit int
}

// New returns a home module configured by the given options.
// Without a gateway the module renders empty project grids.
func New(opts ...Option) Module {
	m := Module{previewLimit: DefaultPreviewLimit}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires landing and index routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(m.gateway, m.previewLimit)
	h := newHandlers(svc, m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
