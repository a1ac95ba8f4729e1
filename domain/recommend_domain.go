package domain

import "errors"

var (
	MessageSuccessRecommend       = "recommendations generated successfully"
	MessageSuccessSelectRecipe    = "recipe selected successfully"
	MessageSuccessGetSelections   = "selected recipes retrieved successfully"
	MessageSuccessDeleteSelection = "selected recipe removed"
	MessageSuccessUpdateAction    = "selection action updated"

	MessageFailedRecommend       = "failed to generate recommendations"
	MessageFailedSelectRecipe    = "failed to select recipe"
	MessageFailedGetSelections   = "failed to retrieve selected recipes"
	MessageFailedDeleteSelection = "failed to remove selected recipe"
	MessageFailedUpdateAction    = "failed to update selection action"

	ErrProfileNotFound      = errors.New("user profile not found")
	ErrGenerationFailed     = errors.New("recipe generation returned no usable recipes")
	ErrFridgeEmpty          = errors.New("fridge has no ingredients")
	ErrNoEligibleUser       = errors.New("no user with fridge items found")
	ErrRecommendationAbsent = errors.New("no recent recommendation for this recipe")
	ErrSelectionNotFound    = errors.New("selected record not found")
	ErrInvalidAction        = errors.New("action must be 0 or 1")
)

type (
	RecommendRequest struct {
		UserID     string `json:"user_id" validate:"omitempty"`
		Limit      int    `json:"limit" validate:"omitempty,min=1,max=5"`
		ExcludeIDs []int  `json:"exclude_ids" validate:"omitempty"`
	}

	RecommendedCandidate struct {
		RecipeID    int      `json:"recipe_id"`
		Title       string   `json:"title"`
		CookTime    int      `json:"cook_time,omitempty"`
		Difficulty  string   `json:"difficulty"`
		Ingredients string   `json:"ingredients"`
		Steps       string   `json:"steps"`
		Missing     []string `json:"missing"`
	}

	RecommendResponse struct {
		UserID         string                 `json:"user_id"`
		FridgeSample   []string               `json:"fridge_sample"`
		RecentEmphasis []string               `json:"recent_emphasis"`
		DisplayText    string                 `json:"display_text"`
		Candidates     []RecommendedCandidate `json:"candidates"`
		Degraded       bool                   `json:"degraded,omitempty"`
	}

	SelectRecipeRequest struct {
		RecipeID int `json:"recipe_id" validate:"required"`
	}

	SelectedRecipeResponse struct {
		SelectedID   int64  `json:"selected_id"`
		RecommendID  int64  `json:"recommend_id"`
		RecipeID     int    `json:"recipe_id"`
		RecipeNmKo   string `json:"recipe_nm_ko"`
		Action       int    `json:"action"`
		CookTime     int    `json:"cook_time,omitempty"`
		Difficulty   string `json:"difficulty,omitempty"`
		SelectedDate string `json:"selected_date"`
	}

	UpdateSelectionActionRequest struct {
		Action *int `json:"action" validate:"required,min=0,max=1"`
	}
)
