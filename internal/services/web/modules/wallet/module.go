package wallet

import (
	"net/http"

	"github.com/descilaunch/launchpad-web/internal/services/web/module"
	"github.com/descilaunch/launchpad-web/internal/services/web/platform/publichandler"
	"github.com/descilaunch/launchpad-web/internal/services/web/platform/requestmeta"
	"github.com/descilaunch/launchpad-web/internal/services/web/routepath"
)

// Option configures a wallet module.
type Option func(*Module)

// WithBase sets the shared handler base.
func WithBase(b publichandler.Base) Option {
	return func(m *Module) { m.base = b }
}

// WithSchemePolicy sets how cookie security and same-origin checks resolve
// the request scheme.
func WithSchemePolicy(p requestmeta.SchemePolicy) Option {
	return func(m *Module) { m.policy = p }
}

// Module attaches and detaches the viewer's wallet address.
type Module struct {
	base   publichandler.Base
	policy requestmeta.SchemePolicy
}

// New returns a wallet module configured by the given options.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "wallet" }

// Mount wires connect and disconnect routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(), m.base, m.policy)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.WalletPrefix, Handler: mux}, nil
}
