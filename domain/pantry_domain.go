package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddPantryItem    = "pantry item added successfully"
	MessageSuccessGetPantryItems   = "pantry items retrieved successfully"
	MessageSuccessUpdatePantryItem = "pantry item updated successfully"
	MessageSuccessDeletePantryItem = "pantry item deleted successfully"

	MessageFailedAddPantryItem    = "failed to add pantry item"
	MessageFailedGetPantryItems   = "failed to retrieve pantry items"
	MessageFailedUpdatePantryItem = "failed to update pantry item"
	MessageFailedDeletePantryItem = "failed to delete pantry item"

	ErrPantryItemNotFound    = errors.New("pantry item not found")
	ErrInvalidPantryQuantity = errors.New("pantry quantity must be non-negative")
)

type (
	AddPantryItemRequest struct {
		Item     string  `json:"item" validate:"required"`
		Quantity float64 `json:"quantity" validate:"min=0"`
		Unit     string  `json:"unit" validate:"required"`
	}

	UpdatePantryItemRequest struct {
		Item     string  `json:"item" validate:"omitempty"`
		Quantity float64 `json:"quantity" validate:"omitempty,min=0"`
		Unit     string  `json:"unit" validate:"omitempty"`
	}

	PantryItemResponse struct {
		ID        string    `json:"id"`
		Item      string    `json:"item"`
		Quantity  float64   `json:"quantity"`
		Unit      string    `json:"unit"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
)
