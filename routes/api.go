// Package routes declares the HTTP API.
package routes

import (
	"github.com/km-arc/diaita/app/controllers"
	"github.com/km-arc/diaita/framework/container"
	"github.com/km-arc/diaita/framework/routing"
)

// Register resolves the controllers from c and mounts their routes. A
// controller that cannot be built fails the whole registration.
func Register(r *routing.Router, c *container.Container) error {
	users, err := container.Resolve[*controllers.UserController](c)
	if err != nil {
		return err
	}
	nutrition, err := container.Resolve[*controllers.NutritionController](c)
	if err != nil {
		return err
	}
	workouts, err := container.Resolve[*controllers.WorkoutController](c)
	if err != nil {
		return err
	}

	r.Post("/register", users.Register)
	r.Post("/user/profile", users.Register)
	r.Prefix("/user/settings", func(r *routing.Router) {
		for _, s := range users.Sections() {
			r.Get("/"+s.Slug+"/{userId}", s.Get)
			r.Put("/"+s.Slug+"/{userId}", s.Put)
			r.Delete("/"+s.Slug+"/{userId}", s.Delete)
		}
	})

	r.Prefix("/nutrition", func(r *routing.Router) {
		r.Post("/search/ingredients", nutrition.SearchIngredients)
		r.Post("/search/products", nutrition.SearchProducts)
		r.Post("/search/menuItems", nutrition.SearchMenuItems)
		r.Get("/ingredient/{id}", nutrition.Ingredient)
		r.Get("/product/{id}", nutrition.Product)
		r.Get("/menuItem/{id}", nutrition.MenuItem)
	})

	r.Post("/workouts/search", workouts.Search)
	return nil
}
