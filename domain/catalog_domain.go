package domain

import "errors"

var (
	MessageSuccessGetRecipe         = "recipe retrieved successfully"
	MessageSuccessSearchIngredients = "ingredients retrieved successfully"

	MessageFailedGetRecipe         = "failed to retrieve recipe"
	MessageFailedSearchIngredients = "failed to search ingredients"

	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	RecipeDetailResponse struct {
		RecipeID       int    `json:"recipe_id"`
		RecipeNmKo     string `json:"recipe_nm_ko"`
		CookingTime    int    `json:"cooking_time"`
		LevelNm        string `json:"level_nm"`
		IngredientFull string `json:"ingredient_full"`
		StepText       string `json:"step_text"`
	}

	IngredientNameResponse struct {
		Name string `json:"name"`
	}
)
