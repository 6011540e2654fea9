package app

import (
	"net/http"

	module "github.com/descilaunch/launchpad-web/internal/services/web/module"
	"github.com/descilaunch/launchpad-web/internal/services/web/platform/httpx"
	"github.com/descilaunch/launchpad-web/internal/services/web/platform/observability"
	"github.com/descilaunch/launchpad-web/internal/services/web/routepath"
	"github.com/descilaunch/launchpad-web/internal/services/web/static"
	"github.com/sirupsen/logrus"
)

const (
	healthStatusOK       = "ok"
	healthStatusDegraded = "degraded"
)

// isReservedPrefix reports prefixes the root handler serves itself.
func isReservedPrefix(prefix string) bool {
	return prefix == routepath.StaticPrefix || prefix == routepath.Health+"/"
}

// BuildRootHandler composes the modules, the static assets and the health
// probe behind the shared middleware chain.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	root, err := Compose(ComposeInput{Modules: cfg.Modules})
	if err != nil {
		return nil, err
	}
	root.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, static.Handler()))
	root.HandleFunc("GET "+routepath.Health, healthHandler(cfg.Modules))

	return httpx.Chain(root,
		httpx.RequestID(),
		observability.RequestLogger(logger),
		httpx.RecoverPanic(logger),
	), nil
}

type healthReport struct {
	Status  string          `json:"status"`
	Modules map[string]bool `json:"modules"`
}

// healthHandler answers 200 while the process serves requests. Modules that
// lost their backend are reported as degraded rather than failing the probe.
func healthHandler(modules []module.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		report := healthReport{Status: healthStatusOK, Modules: make(map[string]bool)}
		for _, feature := range modules {
			reporter, ok := feature.(module.HealthReporter)
			if !ok {
				continue
			}
			healthy := reporter.Healthy()
			report.Modules[feature.ID()] = healthy
			if !healthy {
				report.Status = healthStatusDegraded
			}
		}
		_ = httpx.WriteJSON(w, http.StatusOK, report)
	}
}
