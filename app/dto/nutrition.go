package dto

// ── Search requests ──────────────────────────────────────────────────────────

type IngredientSearchFilters struct {
	Query             string   `json:"query" validate:"required"`
	MinProteinPercent *float64 `json:"minProteinPercent,omitempty"`
	MaxProteinPercent *float64 `json:"maxProteinPercent,omitempty"`
	MinFatPercent     *float64 `json:"minFatPercent,omitempty"`
	MaxFatPercent     *float64 `json:"maxFatPercent,omitempty"`
	MinCarbsPercent   *float64 `json:"minCarbsPercent,omitempty"`
	MaxCarbsPercent   *float64 `json:"maxCarbsPercent,omitempty"`
	Intolerances      []string `json:"intolerances,omitempty"`
	Offset            int      `json:"offset" validate:"gte=0"`
	Number            int      `json:"number" validate:"gte=0,lte=100"`
}

type ProductSearchFilters struct {
	Query       string   `json:"query" validate:"required"`
	MinCalories *float64 `json:"minCalories,omitempty"`
	MaxCalories *float64 `json:"maxCalories,omitempty"`
	MinCarbs    *float64 `json:"minCarbs,omitempty"`
	MaxCarbs    *float64 `json:"maxCarbs,omitempty"`
	MinProtein  *float64 `json:"minProtein,omitempty"`
	MaxProtein  *float64 `json:"maxProtein,omitempty"`
	MinFat      *float64 `json:"minFat,omitempty"`
	MaxFat      *float64 `json:"maxFat,omitempty"`
	Offset      int      `json:"offset" validate:"gte=0"`
	Number      int      `json:"number" validate:"gte=0,lte=100"`
}

type MenuItemSearchFilters struct {
	Query  string `json:"query" validate:"required"`
	Offset int    `json:"offset" validate:"gte=0"`
	Number int    `json:"number" validate:"gte=0,lte=100"`
}

// DefaultSearchNumber is used when a search request leaves number at zero.
const DefaultSearchNumber = 10

// ── Responses ────────────────────────────────────────────────────────────────

// Food is the normalized shape for ingredients, products and menu items.
type Food struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name"`
	Brand                  *string  `json:"brand,omitempty"`
	Category               string   `json:"category,omitempty"`
	ServingSize            *float64 `json:"servingSize,omitempty"`
	ServingUnit            *string  `json:"servingUnit,omitempty"`
	CaloriesPerServingSize *float64 `json:"caloriesPerServingSize,omitempty"`
	ProteinGPerServingSize *float64 `json:"proteinGPerServingSize,omitempty"`
	CarbGPerServingSize    *float64 `json:"carbGPerServingSize,omitempty"`
	FatGPerServingSize     *float64 `json:"fatGPerServingSize,omitempty"`
	CreatedAt              *string  `json:"createdAt,omitempty"`
}

type FoodSearchResponse struct {
	Foods        []Food `json:"foods"`
	TotalResults int    `json:"totalResults"`
	Offset       int    `json:"offset"`
	Number       int    `json:"number"`
}
