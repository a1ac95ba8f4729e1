package domain

import "errors"

var (
	MessageSuccessGetFridge    = "fridge items retrieved successfully"
	MessageSuccessSaveFridge   = "fridge items saved successfully"
	MessageSuccessDeleteFridge = "fridge item deleted successfully"

	MessageFailedGetFridge    = "failed to retrieve fridge items"
	MessageFailedSaveFridge   = "failed to save fridge items"
	MessageFailedDeleteFridge = "failed to delete fridge item"

	ErrFridgeItemNotFound = errors.New("fridge item not found")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
)

type (
	FridgeItemRequest struct {
		Name     string `json:"name" validate:"required"`
		Quantity int    `json:"quantity" validate:"required,min=1"`
		Unit     string `json:"unit" validate:"omitempty"`
	}

	SaveFridgeRequest struct {
		Items        []FridgeItemRequest `json:"items" validate:"required,dive"`
		Mode         string              `json:"mode" validate:"omitempty,oneof=merge replace"`
		PurgeMissing bool                `json:"purge_missing"`
	}

	FridgeItemResponse struct {
		FridgeID string `json:"fridge_id"`
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
		Unit     string `json:"unit,omitempty"`
		StoredAt string `json:"stored_at"`
	}
)
