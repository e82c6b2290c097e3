package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealplanner-backend/domain"
)

func listWith(items ...domain.GroceryItem) domain.GroceryListResponse {
	return domain.GroceryListResponse{
		ID:    "list-1",
		Items: items,
	}
}

func priceOf(v float64) *float64 {
	return &v
}

func TestEstimatePriceResolutionOrder(t *testing.T) {
	list := listWith(
		domain.GroceryItem{ID: "x", Name: "tomato", Category: "produce", EstimatedPrice: priceOf(3.00)},
		domain.GroceryItem{ID: "y", Name: "milk", Category: "dairy", EstimatedPrice: priceOf(2.50)},
		domain.GroceryItem{ID: "z", Name: "mystery", Category: "pantry"},
	)

	est := Estimate(list, map[string]float64{"x": 5.00}, "")
	require.Len(t, est.Items, 3)

	// The override wins over the stored estimate.
	assert.InDelta(t, 5.00, est.Items[0].EstimatedPrice, 0.001)
	assert.InDelta(t, 2.50, est.Items[1].EstimatedPrice, 0.001)
	// No price anywhere contributes zero instead of failing.
	assert.InDelta(t, 0, est.Items[2].EstimatedPrice, 0.001)

	subtotal := 7.50
	assert.InDelta(t, subtotal*TaxRate, est.TaxEstimate, 0.001)
	assert.InDelta(t, subtotal*(1+TaxRate), est.GrandTotal, 0.001)
}

func TestEstimateCategorySubtotals(t *testing.T) {
	list := listWith(
		domain.GroceryItem{ID: "a", Name: "apple", Category: "produce", EstimatedPrice: priceOf(1.00)},
		domain.GroceryItem{ID: "b", Name: "banana", Category: "produce", EstimatedPrice: priceOf(2.00)},
		domain.GroceryItem{ID: "c", Name: "cheese", Category: "dairy", EstimatedPrice: priceOf(4.00)},
	)

	est := Estimate(list, nil, "")
	assert.InDelta(t, 3.00, est.CategorySubtotals["produce"], 0.001)
	assert.InDelta(t, 4.00, est.CategorySubtotals["dairy"], 0.001)
	// Only categories present in the list appear.
	_, ok := est.CategorySubtotals["meat"]
	assert.False(t, ok)

	// Category subtotals sum to the pre-tax total.
	var sum float64
	for _, v := range est.CategorySubtotals {
		sum += v
	}
	assert.InDelta(t, est.GrandTotal-est.TaxEstimate, sum, 0.001)
}

func TestEstimateEmptyList(t *testing.T) {
	est := Estimate(listWith(), nil, "")
	assert.Empty(t, est.Items)
	assert.Empty(t, est.CategorySubtotals)
	assert.InDelta(t, 0, est.TaxEstimate, 0.001)
	assert.InDelta(t, 0, est.GrandTotal, 0.001)
}

func TestEstimateCarriesStoreAndLeavesListUntouched(t *testing.T) {
	item := domain.GroceryItem{ID: "a", Name: "apple", Category: "produce", EstimatedPrice: priceOf(1.25)}
	list := listWith(item)

	est := Estimate(list, map[string]float64{"a": 0.99}, "FreshMart")
	require.Len(t, est.Items, 1)
	assert.Equal(t, "FreshMart", est.Items[0].Store)
	assert.Equal(t, "list-1", est.GroceryListID)

	// Overrides never write back into the list.
	require.NotNil(t, list.Items[0].EstimatedPrice)
	assert.InDelta(t, 1.25, *list.Items[0].EstimatedPrice, 0.001)
}
