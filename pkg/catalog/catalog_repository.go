package catalog

import (
	"context"
	"errors"

	"cookus-server/domain"
	"cookus-server/entities"

	"gorm.io/gorm"
)

type (
	CatalogRepository interface {
		RecipeByID(ctx context.Context, recipeID int) (*entities.Recipe, error)
		SearchIngredients(ctx context.Context, query string, limit int) ([]entities.Ingredient, error)
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) RecipeByID(ctx context.Context, recipeID int) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *catalogRepository) SearchIngredients(ctx context.Context, query string, limit int) ([]entities.Ingredient, error) {
	var ingredients []entities.Ingredient
	if err := r.db.WithContext(ctx).
		Where("ingredient_name LIKE ?", "%"+query+"%").
		Limit(limit).
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}
