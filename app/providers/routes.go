package providers

import (
	"github.com/km-arc/diaita/framework/container"
	"github.com/km-arc/diaita/framework/routing"
	"github.com/km-arc/diaita/routes"
)

// RouteServiceProvider resolves the controllers and mounts the API routes
// once every other provider has registered.
type RouteServiceProvider struct {
	container.BaseProvider
}

func (p *RouteServiceProvider) Register(_ *container.Container) error { return nil }

func (p *RouteServiceProvider) Boot(c *container.Container) error {
	router, err := container.Resolve[*routing.Router](c)
	if err != nil {
		return err
	}
	return routes.Register(router, c)
}
