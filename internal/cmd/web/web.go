// Package web parses launchpad web flags and launches the service.
package web

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	entrypoint "github.com/descilaunch/launchpad-web/internal/platform/cmd"
	"github.com/descilaunch/launchpad-web/internal/platform/logging"
	"github.com/descilaunch/launchpad-web/internal/services/web"
	"github.com/descilaunch/launchpad-web/internal/services/web/integration/launchpadapi"
	"golang.org/x/time/rate"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr   string `env:"LAUNCHPAD_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	BackendURL string `env:"LAUNCHPAD_BACKEND_URL"`
	// LegacyBackendURL is the variable name used by the previous front end
	// deployment; LAUNCHPAD_BACKEND_URL wins when both are set.
	LegacyBackendURL string        `env:"REACT_APP_BACKEND_URL"`
	BackendTimeout   time.Duration `env:"LAUNCHPAD_BACKEND_TIMEOUT" envDefault:"10s"`
	PreviewLimit     int           `env:"LAUNCHPAD_WEB_PREVIEW_LIMIT" envDefault:"6"`

	ViewTTL  time.Duration `env:"LAUNCHPAD_WEB_VIEW_TTL" envDefault:"30m"`
	MaxViews int           `env:"LAUNCHPAD_WEB_MAX_VIEWS" envDefault:"10000"`

	EmbedMaxAttempts int           `env:"LAUNCHPAD_WEB_EMBED_MAX_ATTEMPTS" envDefault:"10"`
	EmbedInterval    time.Duration `env:"LAUNCHPAD_WEB_EMBED_INTERVAL" envDefault:"500ms"`
	EmbedCacheTTL    time.Duration `env:"LAUNCHPAD_WEB_EMBED_CACHE_TTL" envDefault:"15m"`
	CachePath        string        `env:"LAUNCHPAD_WEB_CACHE_PATH"`

	NotifyRate  float64 `env:"LAUNCHPAD_WEB_NOTIFY_RATE" envDefault:"5"`
	NotifyBurst int     `env:"LAUNCHPAD_WEB_NOTIFY_BURST" envDefault:"10"`

	LogLevel  string `env:"LAUNCHPAD_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LAUNCHPAD_LOG_FORMAT" envDefault:"json"`
	LogFile   string `env:"LAUNCHPAD_LOG_FILE"`

	TrustForwardedProto bool `env:"LAUNCHPAD_WEB_TRUST_FORWARDED_PROTO" envDefault:"false"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.BackendURL, "backend-url", cfg.BackendURL, "Launchpad backend base URL")
	fs.DurationVar(&cfg.BackendTimeout, "backend-timeout", cfg.BackendTimeout, "Timeout for one backend request")
	fs.IntVar(&cfg.PreviewLimit, "preview-limit", cfg.PreviewLimit, "Number of launches previewed on the landing page")
	fs.DurationVar(&cfg.ViewTTL, "view-ttl", cfg.ViewTTL, "Idle time before a page view expires")
	fs.IntVar(&cfg.MaxViews, "max-views", cfg.MaxViews, "Maximum number of open page views")
	fs.IntVar(&cfg.EmbedMaxAttempts, "embed-max-attempts", cfg.EmbedMaxAttempts, "Social timeline load attempts")
	fs.DurationVar(&cfg.EmbedInterval, "embed-interval", cfg.EmbedInterval, "Delay between social timeline attempts")
	fs.DurationVar(&cfg.EmbedCacheTTL, "embed-cache-ttl", cfg.EmbedCacheTTL, "Lifetime of cached social timeline checks")
	fs.StringVar(&cfg.CachePath, "cache-path", cfg.CachePath, "SQLite cache path; empty disables the cache")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (json or text)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Optional rotated log file")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto for cookie security")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	cfg.BackendURL = resolveBackendURL(cfg.BackendURL, cfg.LegacyBackendURL)
	return cfg, nil
}

func resolveBackendURL(primary string, legacy string) string {
	for _, candidate := range []string{primary, legacy} {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			return trimmed
		}
	}
	return launchpadapi.DefaultBaseURL
}

// Run starts the launchpad web server.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	log := logger.WithField("service", entrypoint.ServiceWeb)

	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceWeb, entrypoint.RunOptions{Logger: log}, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			BackendURL:          cfg.BackendURL,
			BackendTimeout:      cfg.BackendTimeout,
			PreviewLimit:        cfg.PreviewLimit,
			ViewTTL:             cfg.ViewTTL,
			MaxViews:            cfg.MaxViews,
			EmbedMaxAttempts:    cfg.EmbedMaxAttempts,
			EmbedInterval:       cfg.EmbedInterval,
			EmbedCacheTTL:       cfg.EmbedCacheTTL,
			CachePath:           cfg.CachePath,
			NotifyRate:          rate.Limit(cfg.NotifyRate),
			NotifyBurst:         cfg.NotifyBurst,
			TrustForwardedProto: cfg.TrustForwardedProto,
			Logger:              log,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
