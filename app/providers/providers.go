// Package providers binds the application services: the Postgrest manager,
// the REST clients, and the constructors for prompts, repositories and
// services. Controllers are never registered; the container builds them from
// their injected fields.
package providers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/km-arc/diaita/app/clients"
	"github.com/km-arc/diaita/app/database"
	"github.com/km-arc/diaita/app/prompts"
	"github.com/km-arc/diaita/app/repos"
	"github.com/km-arc/diaita/app/services"
	"github.com/km-arc/diaita/framework/config"
	"github.com/km-arc/diaita/framework/container"
	"github.com/km-arc/diaita/framework/metrics"
)

var errNoConfig = errors.New("providers: *config.Config is not bound")

// DatabaseServiceProvider binds *database.Manager.
type DatabaseServiceProvider struct {
	container.BaseProvider
}

func (p *DatabaseServiceProvider) Register(c *container.Container) error {
	cfg, ok := container.Instance[*config.Config](c)
	if !ok {
		return errNoConfig
	}
	log, _ := container.Instance[*zap.Logger](c)
	m, _ := container.Instance[*metrics.Collector](c)

	manager, err := database.NewManager(cfg.Supabase, log, m)
	if err != nil {
		return err
	}
	container.Bind(c, manager)
	return nil
}

// ClientServiceProvider binds the Spoonacular and Gemini clients. They share
// one *http.Client.
type ClientServiceProvider struct {
	container.BaseProvider
}

func (p *ClientServiceProvider) Register(c *container.Container) error {
	cfg, ok := container.Instance[*config.Config](c)
	if !ok {
		return errNoConfig
	}
	log, _ := container.Instance[*zap.Logger](c)
	m, _ := container.Instance[*metrics.Collector](c)

	opts := []clients.Option{
		clients.WithHTTPClient(&http.Client{Timeout: cfg.HTTPClient.Timeout}),
		clients.WithLogger(log),
		clients.WithMetrics(m),
	}
	c.BindAll(
		clients.NewNutritionClient(cfg.Spoonacular, opts...),
		clients.NewGeminiClient(cfg.Gemini, opts...),
	)
	return nil
}

// AppServiceProvider registers the constructors of everything between the
// clients and the controllers.
type AppServiceProvider struct {
	container.BaseProvider
}

func (p *AppServiceProvider) Register(c *container.Container) error {
	for _, ctor := range []any{
		prompts.NewFactory,
		repos.NewWorkoutRepo,
		repos.NewUserRepo,
		services.NewWorkoutService,
		services.NewNutritionService,
		services.NewUserService,
	} {
		if err := c.Provide(ctor); err != nil {
			return err
		}
	}
	return nil
}
