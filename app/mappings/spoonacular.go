package mappings

import (
	"strconv"
	"strings"

	"github.com/km-arc/diaita/app/dto"
)

const (
	CategoryIngredient = "ingredient"
	CategoryProduct    = "product"
	CategoryMenuItem   = "menuItem"

	defaultIngredientAmount = 100.0
	defaultIngredientUnit   = "grams"
)

// nutrientAmount returns the amount of the first nutrient whose name matches
// any of names, ignoring case.
func nutrientAmount(n *dto.SpoonacularNutrition, names ...string) *float64 {
	if n == nil {
		return nil
	}
	for _, nutrient := range n.Nutrients {
		for _, name := range names {
			if strings.EqualFold(nutrient.Name, name) {
				return nutrient.Amount
			}
		}
	}
	return nil
}

func withMacros(f dto.Food, n *dto.SpoonacularNutrition) dto.Food {
	f.CaloriesPerServingSize = nutrientAmount(n, "Calories")
	f.ProteinGPerServingSize = nutrientAmount(n, "Protein")
	f.CarbGPerServingSize = nutrientAmount(n, "Carbohydrates", "Carbs")
	f.FatGPerServingSize = nutrientAmount(n, "Fat")
	return f
}

// IngredientToFood defaults the serving to 100 grams when Spoonacular omits it.
func IngredientToFood(in dto.IngredientInformation) dto.Food {
	size, unit := defaultIngredientAmount, defaultIngredientUnit
	if in.Amount != nil {
		size = *in.Amount
	}
	if in.Unit != nil {
		unit = *in.Unit
	}
	return withMacros(dto.Food{
		ID:          strconv.Itoa(in.ID),
		Name:        in.Name,
		Category:    CategoryIngredient,
		ServingSize: &size,
		ServingUnit: &unit,
	}, in.Nutrition)
}

func ProductToFood(p dto.ProductInformation) dto.Food {
	brand := p.Brand
	if brand == nil {
		brand = p.Brands
	}
	return withMacros(dto.Food{
		ID:          strconv.Itoa(p.ID),
		Name:        p.Title,
		Brand:       brand,
		Category:    CategoryProduct,
		ServingSize: p.ServingSize,
		ServingUnit: p.ServingUnit,
	}, p.Nutrition)
}

func MenuItemToFood(m dto.MenuItemInformation) dto.Food {
	return withMacros(dto.Food{
		ID:       strconv.Itoa(m.ID),
		Name:     m.Title,
		Brand:    m.RestaurantChain,
		Category: CategoryMenuItem,
	}, m.Nutrition)
}
