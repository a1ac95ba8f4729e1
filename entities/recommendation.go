package entities

import "time"

// RecommendRecipe is an accepted recommendation, persisted after the
// generation step. IngredientFull is a JSON object of ingredient -> quantity
// hint, already reduced to ingredients the user owns.
type RecommendRecipe struct {
	RecommendID    int64     `gorm:"primaryKey;autoIncrement;column:recommend_id" json:"recommend_id"`
	UserID         string    `gorm:"size:64;index;column:user_id" json:"user_id"`
	RecipeNmKo     string    `gorm:"column:recipe_nm_ko" json:"recipe_nm_ko"`
	IngredientFull string    `gorm:"column:ingredient_full;type:text" json:"ingredient_full"`
	StepText       string    `gorm:"column:step_text;type:text" json:"step_text"`
	RecipeID       int       `gorm:"column:recipe_id;index" json:"recipe_id"`
	RecommendDate  time.Time `gorm:"column:recommend_date;type:timestamp;index" json:"recommend_date"`
}

func (RecommendRecipe) TableName() string { return "recommend_recipe" }

// SelectedRecipe references a RecommendRecipe the user chose to cook.
type SelectedRecipe struct {
	SelectedID   int64     `gorm:"primaryKey;autoIncrement;column:selected_id" json:"selected_id"`
	UserID       string    `gorm:"size:64;index;column:user_id" json:"user_id"`
	RecommendID  int64     `gorm:"column:recommend_id" json:"recommend_id"`
	RecipeID     int       `gorm:"column:recipe_id" json:"recipe_id"`
	Action       int       `gorm:"column:action;default:0" json:"action"` // 0 planned, 1 cooked
	SelectedDate time.Time `gorm:"column:selected_date;type:timestamp" json:"selected_date"`

	Recommend *RecommendRecipe `gorm:"foreignKey:RecommendID;references:RecommendID"`
}

func (SelectedRecipe) TableName() string { return "selected_recipe" }
