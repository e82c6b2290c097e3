package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGenerateGroceryList = "grocery list generated successfully"
	MessageSuccessGetGroceryList      = "grocery list retrieved successfully"
	MessageSuccessUpdateGroceryList   = "grocery list updated successfully"
	MessageSuccessDeleteGroceryList   = "grocery list deleted successfully"
	MessageSuccessExportGroceryList   = "grocery list exported successfully"
	MessageSuccessShareGroceryList    = "grocery list shared successfully"

	MessageFailedGenerateGroceryList = "failed to generate grocery list"
	MessageFailedGetGroceryList      = "failed to retrieve grocery list"
	MessageFailedUpdateGroceryList   = "failed to update grocery list"
	MessageFailedDeleteGroceryList   = "failed to delete grocery list"
	MessageFailedExportGroceryList   = "failed to export grocery list"
	MessageFailedShareGroceryList    = "failed to share grocery list"

	ErrGroceryListNotFound     = errors.New("grocery list not found")
	ErrUnauthorizedListAccess  = errors.New("unauthorized access to grocery list")
	ErrInvalidUnitSystem       = errors.New("unit system must be imperial or metric")
	ErrInvalidExportFormat     = errors.New("invalid export format, use csv or json")
	ErrInvalidGenerationResult = errors.New("generation result does not match the grocery item schema")
	ErrGenerationServiceFailed = errors.New("grocery list generation service failed")
)

type (
	// GroceryItemSource records which meal's recipe contributed to a line item.
	GroceryItemSource struct {
		RecipeID string `json:"recipe_id"`
		MealDate string `json:"meal_date"`
		Servings int    `json:"servings"`
	}

	// GroceryItem is one consolidated line of a grocery list.
	GroceryItem struct {
		ID               string              `json:"id"`
		Name             string              `json:"name"`
		DisplayName      string              `json:"display_name"`
		Quantity         float64             `json:"quantity"`
		Unit             string              `json:"unit"`
		QuantityInGrams  *float64            `json:"quantity_in_grams,omitempty"`
		Category         string              `json:"category"`
		Notes            string              `json:"notes,omitempty"`
		FromRecipes      []GroceryItemSource `json:"from_recipes"`
		EstimatedPrice   *float64            `json:"estimated_price,omitempty"`
		StoreSuggestions []string            `json:"store_suggestions,omitempty"`
		Optional         bool                `json:"optional"`
	}

	DateRange struct {
		Start string `json:"start"`
		End   string `json:"end"`
	}

	GroceryListMeta struct {
		GeneratedAt   time.Time `json:"generated_at"`
		DateRange     DateRange `json:"date_range"`
		ServingsScale float64   `json:"servings_scale"`
		UnitSystem    string    `json:"unit_system"`
	}

	GroceryListSummary struct {
		TotalItems     int      `json:"total_items"`
		EstimatedTotal *float64 `json:"estimated_total,omitempty"`
	}

	GroceryListResponse struct {
		ID         string             `json:"id"`
		MealPlanID string             `json:"meal_plan_id"`
		Meta       GroceryListMeta    `json:"meta"`
		Items      []GroceryItem      `json:"items"`
		Summary    GroceryListSummary `json:"summary"`
		CreatedAt  time.Time          `json:"created_at"`
	}

	GenerateGroceryListRequest struct {
		UnitSystem  string               `json:"unit_system" validate:"omitempty,oneof=imperial metric"`
		PantryItems []PantryItemOverride `json:"pantry_items,omitempty" validate:"omitempty,dive"`
	}

	// PantryItemOverride lets the caller supply a pantry snapshot instead of
	// the stored one.
	PantryItemOverride struct {
		Item     string  `json:"item" validate:"required"`
		Quantity float64 `json:"quantity" validate:"min=0"`
		Unit     string  `json:"unit" validate:"required"`
	}

	UpdateGroceryListRequest struct {
		Items   []GroceryItem      `json:"items" validate:"required,dive"`
		Summary GroceryListSummary `json:"summary"`
	}

	ShareGroceryListRequest struct {
		Email string `json:"email" validate:"required,email"`
	}
)
