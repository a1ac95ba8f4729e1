package entities

// Ingredient is a catalog dictionary row used by typeahead search.
type Ingredient struct {
	IngredientID   int64  `gorm:"primaryKey;autoIncrement;column:ingredient_id" json:"ingredient_id"`
	IngredientName string `gorm:"column:ingredient_name;index" json:"ingredient_name"`
}

func (Ingredient) TableName() string { return "ingredient" }
