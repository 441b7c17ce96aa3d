package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/km-arc/diaita/app/clients"
	"github.com/km-arc/diaita/app/dto"
	"github.com/km-arc/diaita/app/mappings"
)

// detailConcurrency bounds the information calls made per search.
const detailConcurrency = 4

// NutritionService searches Spoonacular and enriches every hit with its
// nutrition details.
type NutritionService struct {
	client *clients.NutritionClient
	log    *zap.Logger
}

func NewNutritionService(client *clients.NutritionClient, log *zap.Logger) *NutritionService {
	return &NutritionService{client: client, log: log.Named("nutrition")}
}

func (s *NutritionService) SearchIngredients(ctx context.Context, f dto.IngredientSearchFilters) (*dto.FoodSearchResponse, error) {
	res, err := s.client.SearchIngredients(ctx, f)
	if err != nil {
		return nil, err
	}
	foods := enrich(ctx, s.log, res.Results,
		func(h dto.IngredientSearchResult) int { return h.ID },
		s.client.IngredientInformation, mappings.IngredientToFood)
	return &dto.FoodSearchResponse{Foods: foods, TotalResults: res.TotalResults, Offset: res.Offset, Number: res.Number}, nil
}

func (s *NutritionService) SearchProducts(ctx context.Context, f dto.ProductSearchFilters) (*dto.FoodSearchResponse, error) {
	res, err := s.client.SearchProducts(ctx, f)
	if err != nil {
		return nil, err
	}
	foods := enrich(ctx, s.log, res.Products,
		func(h dto.ProductSearchResult) int { return h.ID },
		s.client.ProductInformation, mappings.ProductToFood)
	return &dto.FoodSearchResponse{Foods: foods, TotalResults: res.TotalProducts, Offset: res.Offset, Number: res.Number}, nil
}

func (s *NutritionService) SearchMenuItems(ctx context.Context, f dto.MenuItemSearchFilters) (*dto.FoodSearchResponse, error) {
	res, err := s.client.SearchMenuItems(ctx, f)
	if err != nil {
		return nil, err
	}
	foods := enrich(ctx, s.log, res.MenuItems,
		func(h dto.MenuItemSearchResult) int { return h.ID },
		s.client.MenuItemInformation, mappings.MenuItemToFood)
	return &dto.FoodSearchResponse{Foods: foods, TotalResults: res.TotalMenuItems, Offset: res.Offset, Number: res.Number}, nil
}

func (s *NutritionService) Ingredient(ctx context.Context, id int) (*dto.Food, error) {
	return detail(ctx, id, s.client.IngredientInformation, mappings.IngredientToFood)
}

func (s *NutritionService) Product(ctx context.Context, id int) (*dto.Food, error) {
	return detail(ctx, id, s.client.ProductInformation, mappings.ProductToFood)
}

func (s *NutritionService) MenuItem(ctx context.Context, id int) (*dto.Food, error) {
	return detail(ctx, id, s.client.MenuItemInformation, mappings.MenuItemToFood)
}

func detail[I any](ctx context.Context, id int, fetch func(context.Context, int) (*I, error), toFood func(I) dto.Food) (*dto.Food, error) {
	info, err := fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	food := toFood(*info)
	return &food, nil
}

// enrich fetches the details of every hit with bounded concurrency. Hits whose
// detail call fails are dropped; the rest keep their search order.
func enrich[H, I any](
	ctx context.Context,
	log *zap.Logger,
	hits []H,
	id func(H) int,
	fetch func(context.Context, int) (*I, error),
	toFood func(I) dto.Food,
) []dto.Food {
	slots := make([]*dto.Food, len(hits))

	var g errgroup.Group
	g.SetLimit(detailConcurrency)
	for i, hit := range hits {
		g.Go(func() error {
			food, err := detail(ctx, id(hit), fetch, toFood)
			if err != nil {
				log.Warn("dropping search hit", zap.Int("id", id(hit)), zap.Error(err))
				return nil
			}
			slots[i] = food
			return nil
		})
	}
	_ = g.Wait()

	foods := make([]dto.Food, 0, len(hits))
	for _, f := range slots {
		if f != nil {
			foods = append(foods, *f)
		}
	}
	return foods
}
