package budget

import (
	"time"

	"mealplanner-backend/domain"
)

// TaxRate is the flat sales-tax rate applied to the subtotal.
const TaxRate = 0.0825

// Estimate computes a budget estimate for a grocery list. The effective price
// of an item is the manual override when one exists, else the item's stored
// estimate, else zero; missing prices never abort the calculation. The
// function is pure and leaves the list untouched.
func Estimate(list domain.GroceryListResponse, overrides map[string]float64, store string) domain.BudgetEstimate {
	lines := make([]domain.BudgetLine, 0, len(list.Items))
	categorySubtotals := make(map[string]float64)
	var subtotal float64

	for _, item := range list.Items {
		price := effectivePrice(item, overrides)

		name := item.DisplayName
		if name == "" {
			name = item.Name
		}

		lines = append(lines, domain.BudgetLine{
			ItemID:         item.ID,
			Name:           name,
			Quantity:       item.Quantity,
			Unit:           item.Unit,
			EstimatedPrice: price,
			Store:          store,
		})

		categorySubtotals[item.Category] += price
		subtotal += price
	}

	taxEstimate := subtotal * TaxRate

	return domain.BudgetEstimate{
		GroceryListID:     list.ID,
		Items:             lines,
		CategorySubtotals: categorySubtotals,
		TaxEstimate:       taxEstimate,
		GrandTotal:        subtotal + taxEstimate,
		CreatedAt:         time.Now(),
	}
}

func effectivePrice(item domain.GroceryItem, overrides map[string]float64) float64 {
	if price, ok := overrides[item.ID]; ok {
		return price
	}
	if item.EstimatedPrice != nil {
		return *item.EstimatedPrice
	}
	return 0
}
