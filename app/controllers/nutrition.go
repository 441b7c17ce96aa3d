package controllers

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/km-arc/diaita/app/dto"
	"github.com/km-arc/diaita/app/services"
	"github.com/km-arc/diaita/framework/app"
)

const msgQueryRequired = "Invalid request: 'query' field is required"

type NutritionController struct {
	app.Controller
	Nutrition *services.NutritionService `inject:""`
	Log       *zap.Logger                `inject:""`
}

// SearchIngredients handles POST /nutrition/search/ingredients.
func (c *NutritionController) SearchIngredients(w http.ResponseWriter, r *http.Request) {
	var body dto.IngredientSearchFilters
	search(c, w, r, &body, func() string { return body.Query }, "Failed to search ingredients",
		func(ctx context.Context) (*dto.FoodSearchResponse, error) { return c.Nutrition.SearchIngredients(ctx, body) })
}

// SearchProducts handles POST /nutrition/search/products.
func (c *NutritionController) SearchProducts(w http.ResponseWriter, r *http.Request) {
	var body dto.ProductSearchFilters
	search(c, w, r, &body, func() string { return body.Query }, "Failed to search products",
		func(ctx context.Context) (*dto.FoodSearchResponse, error) { return c.Nutrition.SearchProducts(ctx, body) })
}

// SearchMenuItems handles POST /nutrition/search/menuItems.
func (c *NutritionController) SearchMenuItems(w http.ResponseWriter, r *http.Request) {
	var body dto.MenuItemSearchFilters
	search(c, w, r, &body, func() string { return body.Query }, "Failed to search menu items",
		func(ctx context.Context) (*dto.FoodSearchResponse, error) { return c.Nutrition.SearchMenuItems(ctx, body) })
}

// Ingredient handles GET /nutrition/ingredient/{id}.
func (c *NutritionController) Ingredient(w http.ResponseWriter, r *http.Request) {
	c.byID(w, r, "Invalid ingredient id", "Ingredient not found", c.Nutrition.Ingredient)
}

// Product handles GET /nutrition/product/{id}.
func (c *NutritionController) Product(w http.ResponseWriter, r *http.Request) {
	c.byID(w, r, "Invalid product id", "Product not found", c.Nutrition.Product)
}

// MenuItem handles GET /nutrition/menuItem/{id}.
func (c *NutritionController) MenuItem(w http.ResponseWriter, r *http.Request) {
	c.byID(w, r, "Invalid menu item id", "Menu item not found", c.Nutrition.MenuItem)
}

// search decodes body, insists on a non-blank query, validates the rest and
// answers with run's result.
func search(
	c *NutritionController,
	w http.ResponseWriter,
	r *http.Request,
	body any,
	query func() string,
	failure string,
	run func(context.Context) (*dto.FoodSearchResponse, error),
) {
	req, res := c.Request(r), c.Response(w)

	if err := req.Bind(body); err != nil {
		res.BadRequest(msgInvalidPayload)
		return
	}
	if strings.TrimSpace(query()) == "" {
		res.BadRequest(msgQueryRequired)
		return
	}
	if errs := req.Validate(body); errs.Has() {
		res.ValidationError(errs)
		return
	}

	out, err := run(r.Context())
	if err != nil {
		c.Log.Error(failure, zap.String("request_id", req.RequestID()), zap.Error(err))
		fail(res, err, "Not found", failure)
		return
	}
	res.OK(out)
}

func (c *NutritionController) byID(
	w http.ResponseWriter,
	r *http.Request,
	invalid, notFound string,
	get func(context.Context, int) (*dto.Food, error),
) {
	req, res := c.Request(r), c.Response(w)

	id, err := req.RouteParamInt("id")
	if err != nil {
		res.BadRequest(invalid)
		return
	}
	food, err := get(r.Context(), id)
	if err != nil {
		c.Log.Warn("nutrition lookup", zap.Int("id", id), zap.Error(err))
		fail(res, err, notFound, "Failed to fetch nutrition details")
		return
	}
	res.OK(food)
}
