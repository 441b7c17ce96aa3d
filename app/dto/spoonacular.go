package dto

// Spoonacular wire payloads. Unknown fields are ignored on decode.

type IngredientSearchResponse struct {
	Results      []IngredientSearchResult `json:"results"`
	Offset       int                      `json:"offset"`
	Number       int                      `json:"number"`
	TotalResults int                      `json:"totalResults"`
}

type IngredientSearchResult struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Image *string `json:"image,omitempty"`
}

type ProductSearchResponse struct {
	Products      []ProductSearchResult `json:"products"`
	Offset        int                   `json:"offset"`
	Number        int                   `json:"number"`
	TotalProducts int                   `json:"totalProducts"`
}

type ProductSearchResult struct {
	ID    int     `json:"id"`
	Title string  `json:"title"`
	Image *string `json:"image,omitempty"`
	Brand *string `json:"brand,omitempty"`
}

type MenuItemSearchResponse struct {
	MenuItems      []MenuItemSearchResult `json:"menuItems"`
	TotalMenuItems int                    `json:"totalMenuItems"`
	Offset         int                    `json:"offset"`
	Number         int                    `json:"number"`
}

type MenuItemSearchResult struct {
	ID              int     `json:"id"`
	Title           string  `json:"title"`
	RestaurantChain *string `json:"restaurantChain,omitempty"`
	Image           *string `json:"image,omitempty"`
}

type IngredientInformation struct {
	ID        int                   `json:"id"`
	Name      string                `json:"name"`
	Amount    *float64              `json:"amount,omitempty"`
	Unit      *string               `json:"unit,omitempty"`
	Nutrition *SpoonacularNutrition `json:"nutrition,omitempty"`
}

type ProductInformation struct {
	ID          int                   `json:"id"`
	Title       string                `json:"title"`
	Brand       *string               `json:"brand,omitempty"`
	Brands      *string               `json:"brands,omitempty"`
	ServingSize *float64              `json:"serving_size,omitempty"`
	ServingUnit *string               `json:"serving_unit,omitempty"`
	Nutrition   *SpoonacularNutrition `json:"nutrition,omitempty"`
}

type MenuItemInformation struct {
	ID              int                   `json:"id"`
	Title           string                `json:"title"`
	RestaurantChain *string               `json:"restaurantChain,omitempty"`
	Nutrition       *SpoonacularNutrition `json:"nutrition,omitempty"`
}

type SpoonacularNutrition struct {
	Nutrients []SpoonacularNutrient `json:"nutrients"`
}

type SpoonacularNutrient struct {
	Name   string   `json:"name"`
	Amount *float64 `json:"amount,omitempty"`
	Unit   *string  `json:"unit,omitempty"`
}
