package entities

// Recipe is a read-only catalog row. The ingredient_full column holds
// free-form text, most often a stringified mapping such as
// "{'양파': '1개', '돼지고기': '300g'}" but sometimes a quoted list or
// plain delimited text.
type Recipe struct {
	RecipeID       int    `gorm:"primaryKey;column:recipe_id" json:"recipe_id"`
	RecipeNmKo     string `gorm:"column:recipe_nm_ko" json:"recipe_nm_ko"`
	CookingTime    int    `gorm:"column:cooking_time" json:"cooking_time"` // minutes, 0 when unknown
	LevelNm        string `gorm:"column:level_nm" json:"level_nm"`         // "상", "중", "하"
	IngredientFull string `gorm:"column:ingredient_full;type:text" json:"ingredient_full"`
	StepText       string `gorm:"column:step_text;type:text" json:"step_text"`
	TyNm           string `gorm:"column:ty_nm" json:"ty_nm"` // dish type tag, may be empty
}

func (Recipe) TableName() string { return "recipe" }
