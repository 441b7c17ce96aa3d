package providers

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/km-arc/diaita/framework/config"
	"github.com/km-arc/diaita/framework/container"
	gohttp "github.com/km-arc/diaita/framework/http"
	"github.com/km-arc/diaita/framework/logging"
	"github.com/km-arc/diaita/framework/metrics"
	"github.com/km-arc/diaita/framework/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the configuration from the environment (and
// the given .env files) and binds it.
//
// Bound types:
//   - *config.Config
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(c *container.Container) error {
	container.Bind(c, config.Load(p.EnvFiles...))
	return nil
}

// ── LoggingServiceProvider ────────────────────────────────────────────────────

// LoggingServiceProvider builds the process logger from config.Log.
//
// Bound types:
//   - *zap.Logger
type LoggingServiceProvider struct {
	container.BaseProvider
}

func (p *LoggingServiceProvider) Register(c *container.Container) error {
	cfg, err := configFrom(c)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	container.Bind(c, log.With(zap.String("app", cfg.App.Name), zap.String("env", cfg.App.Env)))
	return nil
}

// ── MetricsServiceProvider ────────────────────────────────────────────────────

// MetricsServiceProvider creates the Prometheus collector, namespaced by the
// application name.
//
// Bound types:
//   - *metrics.Collector
type MetricsServiceProvider struct {
	container.BaseProvider
}

func (p *MetricsServiceProvider) Register(c *container.Container) error {
	cfg, err := configFrom(c)
	if err != nil {
		return err
	}
	container.Bind(c, metrics.NewCollector(Namespace(cfg.App.Name)))
	return nil
}

// Namespace turns an application name into a valid metric namespace.
func Namespace(name string) string {
	ns := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, name)
	if ns == "" {
		return "app"
	}
	return ns
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router with the default
// middleware stack, and mounts /health and /metrics once booted.
//
// Bound types:
//   - *routing.Router
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(c *container.Container) error {
	cfg, err := configFrom(c)
	if err != nil {
		return err
	}
	log, _ := container.Instance[*zap.Logger](c)
	m, _ := container.Instance[*metrics.Collector](c)

	container.Bind(c, routing.New(routing.Options{
		Logger:      log,
		Metrics:     m,
		CORSOrigins: cfg.App.CORSOrigins,
	}))
	return nil
}

func (p *RoutingServiceProvider) Boot(c *container.Container) error {
	router, err := container.Resolve[*routing.Router](c)
	if err != nil {
		return err
	}
	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		gohttp.NewResponse(w).Status(http.StatusOK, "ok")
	})
	if m, ok := container.Instance[*metrics.Collector](c); ok {
		router.Handle("/metrics", m.Handler())
	}
	return nil
}

var errConfigNotBound = errors.New("providers: *config.Config is not bound; register ConfigServiceProvider first")

func configFrom(c *container.Container) (*config.Config, error) {
	cfg, ok := container.Instance[*config.Config](c)
	if !ok {
		return nil, errConfigNotBound
	}
	return cfg, nil
}
