package entities

import (
	"time"

	"github.com/google/uuid"
)

type FridgeItem struct {
	FridgeID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"fridge_id"`
	UserID         string    `gorm:"size:64;index" json:"user_id"`
	IngredientName string    `json:"ingredient_name"` // may carry a unit suffix, e.g. "양파(개)"
	Quantity       int       `json:"quantity"`
	StoredAt       time.Time `gorm:"type:timestamp;index" json:"stored_at"`

	User *User `gorm:"foreignKey:UserID"`
}

func (FridgeItem) TableName() string { return "fridge_item" }
