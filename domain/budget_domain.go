package domain

import (
	"time"
)

var (
	MessageSuccessEstimateBudget = "budget estimate calculated successfully"
	MessageFailedEstimateBudget  = "failed to calculate budget estimate"
)

type (
	PriceEstimateRequest struct {
		GroceryListID   string             `json:"grocery_list_id" validate:"required,uuid"`
		Store           string             `json:"store,omitempty"`
		ManualOverrides map[string]float64 `json:"manual_overrides,omitempty"` // item id -> price
	}

	BudgetLine struct {
		ItemID         string  `json:"item_id"`
		Name           string  `json:"name"`
		Quantity       float64 `json:"quantity"`
		Unit           string  `json:"unit"`
		EstimatedPrice float64 `json:"estimated_price"`
		Store          string  `json:"store,omitempty"`
	}

	BudgetEstimate struct {
		GroceryListID     string             `json:"grocery_list_id"`
		Items             []BudgetLine       `json:"items"`
		CategorySubtotals map[string]float64 `json:"category_subtotals"`
		TaxEstimate       float64            `json:"tax_estimate"`
		GrandTotal        float64            `json:"grand_total"`
		CreatedAt         time.Time          `json:"created_at"`
	}
)
