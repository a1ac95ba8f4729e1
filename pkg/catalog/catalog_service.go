package catalog

import (
	"context"

	"cookus-server/domain"
)

const ingredientSearchLimit = 20

type (
	CatalogService interface {
		GetRecipe(ctx context.Context, recipeID int) (domain.RecipeDetailResponse, error)
		SearchIngredients(ctx context.Context, query string) ([]domain.IngredientNameResponse, error)
	}

	catalogService struct {
		repo CatalogRepository
	}
)

func NewCatalogService(repo CatalogRepository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) GetRecipe(ctx context.Context, recipeID int) (domain.RecipeDetailResponse, error) {
	recipe, err := s.repo.RecipeByID(ctx, recipeID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	return domain.RecipeDetailResponse{
		RecipeID:       recipe.RecipeID,
		RecipeNmKo:     recipe.RecipeNmKo,
		CookingTime:    recipe.CookingTime,
		LevelNm:        recipe.LevelNm,
		IngredientFull: recipe.IngredientFull,
		StepText:       recipe.StepText,
	}, nil
}

func (s *catalogService) SearchIngredients(ctx context.Context, query string) ([]domain.IngredientNameResponse, error) {
	ingredients, err := s.repo.SearchIngredients(ctx, query, ingredientSearchLimit)
	if err != nil {
		return nil, err
	}

	out := make([]domain.IngredientNameResponse, 0, len(ingredients))
	for _, ing := range ingredients {
		out = append(out, domain.IngredientNameResponse{Name: ing.IngredientName})
	}
	return out, nil
}
