package clients

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/km-arc/diaita/app/dto"
	"github.com/km-arc/diaita/framework/config"
)

// SpoonacularKeyHeader carries the Spoonacular API key.
const SpoonacularKeyHeader = "x-api-key"

// NutritionClient wraps the Spoonacular food endpoints.
type NutritionClient struct {
	rest *RestClient
}

func NewNutritionClient(cfg config.SpoonacularConfig, opts ...Option) *NutritionClient {
	return &NutritionClient{rest: NewRestClient("spoonacular", cfg.BaseURL, SpoonacularKeyHeader, cfg.APIKey, opts...)}
}

// Rest exposes the underlying client.
func (c *NutritionClient) Rest() *RestClient { return c.rest }

func (c *NutritionClient) SearchIngredients(ctx context.Context, f dto.IngredientSearchFilters) (*dto.IngredientSearchResponse, error) {
	q := searchQuery(f.Query, f.Offset, f.Number)
	setFloat(q, "minProteinPercent", f.MinProteinPercent)
	setFloat(q, "maxProteinPercent", f.MaxProteinPercent)
	setFloat(q, "minFatPercent", f.MinFatPercent)
	setFloat(q, "maxFatPercent", f.MaxFatPercent)
	setFloat(q, "minCarbsPercent", f.MinCarbsPercent)
	setFloat(q, "maxCarbsPercent", f.MaxCarbsPercent)
	if len(f.Intolerances) > 0 {
		q.Set("intolerances", strings.Join(f.Intolerances, ","))
	}

	var out dto.IngredientSearchResponse
	if err := c.rest.GetJSON(ctx, "/food/ingredients/search", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *NutritionClient) SearchProducts(ctx context.Context, f dto.ProductSearchFilters) (*dto.ProductSearchResponse, error) {
	q := searchQuery(f.Query, f.Offset, f.Number)
	setFloat(q, "minCalories", f.MinCalories)
	setFloat(q, "maxCalories", f.MaxCalories)
	setFloat(q, "minCarbs", f.MinCarbs)
	setFloat(q, "maxCarbs", f.MaxCarbs)
	setFloat(q, "minProtein", f.MinProtein)
	setFloat(q, "maxProtein", f.MaxProtein)
	setFloat(q, "minFat", f.MinFat)
	setFloat(q, "maxFat", f.MaxFat)

	var out dto.ProductSearchResponse
	if err := c.rest.GetJSON(ctx, "/food/products/search", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *NutritionClient) SearchMenuItems(ctx context.Context, f dto.MenuItemSearchFilters) (*dto.MenuItemSearchResponse, error) {
	var out dto.MenuItemSearchResponse
	if err := c.rest.GetJSON(ctx, "/food/menuItems/search", searchQuery(f.Query, f.Offset, f.Number), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IngredientInformation asks for nutrition per 100 grams.
func (c *NutritionClient) IngredientInformation(ctx context.Context, id int) (*dto.IngredientInformation, error) {
	q := url.Values{"amount": {"100"}, "unit": {"grams"}}

	var out dto.IngredientInformation
	if err := c.rest.GetJSON(ctx, "/food/ingredients/"+strconv.Itoa(id)+"/information", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *NutritionClient) ProductInformation(ctx context.Context, id int) (*dto.ProductInformation, error) {
	var out dto.ProductInformation
	if err := c.rest.GetJSON(ctx, "/food/products/"+strconv.Itoa(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *NutritionClient) MenuItemInformation(ctx context.Context, id int) (*dto.MenuItemInformation, error) {
	var out dto.MenuItemInformation
	if err := c.rest.GetJSON(ctx, "/food/menuItems/"+strconv.Itoa(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// searchQuery applies DefaultSearchNumber when number is unset.
func searchQuery(query string, offset, number int) url.Values {
	if number <= 0 {
		number = dto.DefaultSearchNumber
	}
	return url.Values{
		"query":  {query},
		"offset": {strconv.Itoa(offset)},
		"number": {strconv.Itoa(number)},
	}
}

func setFloat(q url.Values, key string, v *float64) {
	if v != nil {
		q.Set(key, strconv.FormatFloat(*v, 'f', -1, 64))
	}
}
