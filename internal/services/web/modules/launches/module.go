package launches

import (
	"context"
	"fmt"
	"net/http"

	"github.com/descilaunch/launchpad-web/internal/launchpad"
	"github.com/descilaunch/launchpad-web/internal/services/web/module"
	"github.com/descilaunch/launchpad-web/internal/services/web/platform/publichandler"
	"github.com/descilaunch/launchpad-web/internal/services/web/routepath"
	"github.com/descilaunch/launchpad-web/internal/services/web/viewstate"
	"golang.org/x/time/rate"
)

// Option configures a launches module.
type Option func(*Module)

// WithGateway sets the launchpad backend gateway.
func WithGateway(g LaunchpadGateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithFeedLoader sets the social timeline loader.
func WithFeedLoader(l FeedLoader) Option {
	return func(m *Module) { m.feeds = l }
}

// WithViews sets the page view store. The caller owns its janitor.
func WithViews(s *viewstate.Store) Option {
	return func(m *Module) { m.views = s }
}

// WithBase sets the shared handler base.
func WithBase(b publichandler.Base) Option {
	return func(m *Module) { m.base = b }
}

// WithNotifyLimiter paces background sentiment notifications.
func WithNotifyLimiter(l *rate.Limiter) Option {
	return func(m *Module) { m.limiter = l }
}

// Module provides the launch detail page and its interactive fragments.
type Module struct {
	gateway LaunchpadGateway
	feeds   FeedLoader
	views   *viewstate.Store
	base    publichandler.Base
	limiter *rate.Limiter

	notifier *sentimentNotifier
}

// New returns a launches module configured by the given options.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	if m.views == nil {
		m.views = viewstate.NewStore(viewstate.Options{})
	}
	if m.limiter == nil {
		m.limiter = rate.NewLimiter(DefaultNotifyRate, DefaultNotifyBurst)
	}
	m.notifier = newSentimentNotifier(newService(m.gateway, m.feeds).gateway, m.limiter, m.base.Logger())
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "launches" }

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires detail and fragment routes. It fails when the static token
// distribution is inconsistent.
func (m Module) Mount() (module.Mount, error) {
	if err := launchpad.ValidateDistribution(launchpad.Distribution); err != nil {
		return module.Mount{}, fmt.Errorf("tokenomics: %w", err)
	}
	mux := http.NewServeMux()
	svc := newService(m.gateway, m.feeds)
	h := newHandlers(svc, m.views, m.notifier, m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.LaunchesPrefix, Handler: mux}, nil
}

// Drain waits for sentiment notifications sent after their responses.
func (m Module) Drain(ctx context.Context) error {
	return m.notifier.drain(ctx)
}
