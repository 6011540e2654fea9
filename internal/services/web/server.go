package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/descilaunch/launchpad-web/internal/platform/logging"
	"github.com/descilaunch/launchpad-web/internal/platform/timeouts"
	"github.com/descilaunch/launchpad-web/internal/services/web/app"
	"github.com/descilaunch/launchpad-web/internal/services/web/integration/cache"
	"github.com/descilaunch/launchpad-web/internal/services/web/integration/launchpadapi"
	"github.com/descilaunch/launchpad-web/internal/services/web/integration/xembed"
	module "github.com/descilaunch/launchpad-web/internal/services/web/module"
	"github.com/descilaunch/launchpad-web/internal/services/web/modules"
	"github.com/descilaunch/launchpad-web/internal/services/web/platform/requestmeta"
	webstorage "github.com/descilaunch/launchpad-web/internal/services/web/storage"
	"github.com/descilaunch/launchpad-web/internal/services/web/viewstate"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	defaultSweepInterval = time.Minute
	defaultPurgeInterval = 10 * time.Minute
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// BackendURL is the launchpad backend base URL; blank uses
	// launchpadapi.DefaultBaseURL.
	BackendURL     string
	BackendTimeout time.Duration
	PreviewLimit   int

	ViewTTL       time.Duration
	MaxViews      int
	SweepInterval time.Duration

	EmbedEndpoint    string
	EmbedMaxAttempts int
	EmbedInterval    time.Duration
	EmbedCacheTTL    time.Duration
	// CachePath enables the SQLite embed cache when set.
	CachePath     string
	PurgeInterval time.Duration

	NotifyRate  rate.Limit
	NotifyBurst int

	TrustForwardedProto bool
	Logger              logrus.FieldLogger
}

// Server hosts the launchpad web HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	views      *viewstate.Store
	modules    []module.Module
	cache      *cacheHandle
	log        logrus.FieldLogger

	background     sync.WaitGroup
	stopBackground context.CancelFunc
	closeOnce      sync.Once
}

// cacheHandle owns the optional SQLite store.
type cacheHandle struct {
	store interface {
		webstorage.Store
		Close() error
	}
}

// NewServer builds a configured web server. Background janitors run until
// ctx ends or Close is called.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	log := cfg.Logger
	if log == nil {
		log = logging.Discard()
	}

	handle, err := openCache(cfg.CachePath)
	if err != nil {
		return nil, err
	}
	var embedCache webstorage.Store
	if handle != nil {
		embedCache = handle.store
	}

	backend := launchpadapi.New(launchpadapi.Config{
		BaseURL: cfg.BackendURL,
		Timeout: cfg.BackendTimeout,
	})
	log.WithField("backend_url", backend.BaseURL()).Info("launchpad backend configured")
	feeds := xembed.NewLoader(xembed.Config{
		Endpoint:    cfg.EmbedEndpoint,
		MaxAttempts: cfg.EmbedMaxAttempts,
		Interval:    cfg.EmbedInterval,
		CacheTTL:    cfg.EmbedCacheTTL,
		Cache:       embedCache,
		Logger:      log,
	})
	views := viewstate.NewStore(viewstate.Options{TTL: cfg.ViewTTL, MaxViews: cfg.MaxViews})

	var limiter *rate.Limiter
	if cfg.NotifyRate > 0 {
		limiter = rate.NewLimiter(cfg.NotifyRate, max(cfg.NotifyBurst, 1))
	}

	deps := modules.Dependencies{
		Launchpad:     backend,
		Feeds:         feeds,
		Views:         views,
		NotifyLimiter: limiter,
		PreviewLimit:  cfg.PreviewLimit,
		SchemePolicy:  requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
		Logger:        log,
	}
	features := modules.DefaultModules(deps, modules.ModuleResolvers{ResolveViewer: resolveViewer})
	handler, err := app.BuildRootHandler(app.Config{
		Modules: features,
		Logger:  logging.Component(log, "http"),
	})
	if err != nil {
		views.Close()
		handle.close(log)
		return nil, fmt.Errorf("compose web handler: %w", err)
	}

	bgCtx, stop := context.WithCancel(ctx)
	s := &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			BaseContext:       func(net.Listener) context.Context { return ctx },
		},
		views:          views,
		modules:        features,
		cache:          handle,
		log:            log,
		stopBackground: stop,
	}
	s.startBackground(bgCtx, cfg)
	return s, nil
}

func (s *Server) startBackground(ctx context.Context, cfg Config) {
	sweep := cfg.SweepInterval
	if sweep <= 0 {
		sweep = defaultSweepInterval
	}
	s.background.Add(1)
	go func() {
		defer s.background.Done()
		s.views.Run(ctx, sweep)
	}()

	if s.cache == nil {
		return
	}
	purge := cfg.PurgeInterval
	if purge <= 0 {
		purge = defaultPurgeInterval
	}
	s.background.Add(1)
	go func() {
		defer s.background.Done()
		cache.RunPurge(ctx, s.cache.store, purge, logging.Component(s.log, "cache"))
	}()
}

// Handler exposes the composed root handler.
func (s *Server) Handler() http.Handler {
	if s == nil || s.httpServer == nil {
		return nil
	}
	return s.httpServer.Handler
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.log.WithField("addr", s.httpAddr).Info("web listening")
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close drains module background work, stops the janitors, closes every
// open view and releases the cache.
func (s *Server) Close() {
	if s == nil {
		return
	}
	s.closeOnce.Do(func() {
		s.drainModules()
		if s.stopBackground != nil {
			s.stopBackground()
		}
		s.background.Wait()
		s.views.Close()
		s.cache.close(s.log)
	})
}

// drainModules gives modules with post-response work up to the shutdown
// timeout to finish it.
func (s *Server) drainModules() {
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
	defer cancel()
	for _, feature := range s.modules {
		drainer, ok := feature.(module.Drainer)
		if !ok {
			continue
		}
		if err := drainer.Drain(ctx); err != nil {
			s.log.WithError(err).WithField("module", feature.ID()).Warn("module background work dropped at shutdown")
		}
	}
}

func openCache(path string) (*cacheHandle, error) {
	store, err := cache.OpenStore(path)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, nil
	}
	return &cacheHandle{store: store}, nil
}

func (h *cacheHandle) close(log logrus.FieldLogger) {
	if h == nil || h.store == nil {
		return
	}
	if err := h.store.Close(); err != nil {
		log.WithError(err).Warn("close web cache")
	}
}
