package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/km-arc/diaita/framework/config"
	"github.com/km-arc/diaita/framework/container"
	gohttp "github.com/km-arc/diaita/framework/http"
	"github.com/km-arc/diaita/framework/providers"
	"github.com/km-arc/diaita/framework/routing"
)

// Application is the top-level application container.
// It embeds the Container and ProviderRegistry so bootstrap code can bind,
// provide and register providers directly on it.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry
}

// ErrNotBound is returned when a core service the kernel needs was never
// bound, usually because its provider was not registered.
var ErrNotBound = errors.New("app: core service not bound")

// New creates the application and registers the framework core providers:
// config, logging, metrics and routing, in that order. Types the container
// constructs later are traced at debug level on the bound logger.
func New(envFiles ...string) (*Application, error) {
	c := container.New()
	registry := container.NewProviderRegistry(c)

	app := &Application{
		Container: c,
		Providers: registry,
	}
	container.Bind(c, app)

	core := []container.ServiceProvider{
		&providers.ConfigServiceProvider{EnvFiles: envFiles},
		&providers.LoggingServiceProvider{},
		&providers.MetricsServiceProvider{},
		&providers.RoutingServiceProvider{},
	}
	for _, p := range core {
		if err := registry.Register(p); err != nil {
			return nil, err
		}
	}

	if _, err := bound[*zap.Logger](app); err != nil {
		return nil, err
	}
	c.OnResolved(func(key container.TypeKey, _ any) {
		if log, err := bound[*zap.Logger](app); err == nil {
			log.Debug("container: resolved", zap.Stringer("type", key))
		}
	})
	return app, nil
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) error {
	return a.Providers.Register(provider)
}

// Boot runs the Boot phase on all providers. The first successful boot logs
// every bound type at debug level.
func (a *Application) Boot() error {
	if a.Providers.Booted() {
		return nil
	}
	if err := a.Providers.Boot(); err != nil {
		return err
	}
	if log, err := bound[*zap.Logger](a); err == nil {
		keys := a.Keys()
		log.Debug("application booted", zap.Int("bindings", len(keys)), zap.Stringers("types", keys))
	}
	return nil
}

// Config is the bound *config.Config. It panics when config was never bound.
func (a *Application) Config() *config.Config {
	return mustBound[*config.Config](a)
}

// Router is the bound *routing.Router. It panics when the router was never
// bound.
func (a *Application) Router() *routing.Router {
	return mustBound[*routing.Router](a)
}

// Logger is the bound *zap.Logger. It panics when the logger was never bound.
func (a *Application) Logger() *zap.Logger {
	return mustBound[*zap.Logger](a)
}

// bound looks T up without constructing it: the kernel's core services come
// from providers, never from a zero value.
func bound[T any](a *Application) (T, error) {
	v, ok := container.Instance[T](a.Container)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrNotBound, container.KeyOf[T]())
	}
	return v, nil
}

func mustBound[T any](a *Application) T {
	v, err := bound[T](a)
	if err != nil {
		panic(err)
	}
	return v
}

// Run boots the application (if needed), validates the configuration and
// serves HTTP until ctx is cancelled, then shuts down gracefully within
// App.ShutdownTimeout.
func (a *Application) Run(ctx context.Context) error {
	if err := a.Boot(); err != nil {
		return err
	}
	cfg, err := bound[*config.Config](a)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr(), err)
	}
	return a.Serve(ctx, ln)
}

// Serve is Run on an existing listener, without config validation.
func (a *Application) Serve(ctx context.Context, ln net.Listener) error {
	if err := a.Boot(); err != nil {
		return err
	}
	cfg, err := bound[*config.Config](a)
	if err != nil {
		return err
	}
	log, err := bound[*zap.Logger](a)
	if err != nil {
		return err
	}
	router, err := bound[*routing.Router](a)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          zap.NewStdLog(log),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening",
			zap.String("addr", ln.Addr().String()),
			zap.String("name", cfg.App.Name),
		)
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down", zap.Duration("timeout", cfg.App.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	_ = log.Sync()
	return nil
}

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }

// Controller is an embeddable base for HTTP controllers.
type Controller struct{}

func (c *Controller) Request(r *http.Request) *gohttp.Request {
	return gohttp.NewRequest(r)
}

func (c *Controller) Response(w http.ResponseWriter) *gohttp.Response {
	return gohttp.NewResponse(w)
}
