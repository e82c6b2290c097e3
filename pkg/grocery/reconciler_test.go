package grocery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealplanner-backend/domain"
)

func TestReconcilePantryDropsExhaustedItems(t *testing.T) {
	items := []domain.GroceryItem{
		{ID: "1", Name: "eggs", DisplayName: "Eggs", Quantity: 12, Unit: "units"},
		{ID: "2", Name: "bread", DisplayName: "Bread", Quantity: 1, Unit: "loaf"},
	}
	pantry := []PantryInput{
		{Item: "Eggs", Quantity: 12, Unit: "units"},
	}

	result := ReconcilePantry(items, pantry)
	require.Len(t, result, 1)
	assert.Equal(t, "bread", result[0].Name)
}

func TestReconcilePantrySubtractsPartialStock(t *testing.T) {
	grams := 907.18
	items := []domain.GroceryItem{
		{ID: "1", Name: "chicken breast", Quantity: 2, Unit: "lb", QuantityInGrams: &grams},
	}
	pantry := []PantryInput{
		{Item: "chicken breast", Quantity: 1, Unit: "lb"},
	}

	result := ReconcilePantry(items, pantry)
	require.Len(t, result, 1)
	assert.InDelta(t, 1, result[0].Quantity, 0.001)
	require.NotNil(t, result[0].QuantityInGrams)
	assert.InDelta(t, 453.59, *result[0].QuantityInGrams, 0.01)
}

func TestReconcilePantryConvertsCompatibleUnits(t *testing.T) {
	// 2 cups needed, 250 ml on hand.
	items := []domain.GroceryItem{
		{ID: "1", Name: "milk", Quantity: 2, Unit: "cup"},
	}
	pantry := []PantryInput{
		{Item: "milk", Quantity: 250, Unit: "ml"},
	}

	result := ReconcilePantry(items, pantry)
	require.Len(t, result, 1)
	// 473.176 ml - 250 ml = 223.176 ml ~= 0.94 cup
	assert.InDelta(t, 0.94, result[0].Quantity, 0.01)
}

func TestReconcilePantryIgnoresIncompatibleUnits(t *testing.T) {
	items := []domain.GroceryItem{
		{ID: "1", Name: "flour", Quantity: 2, Unit: "cups"},
	}
	pantry := []PantryInput{
		{Item: "flour", Quantity: 3, Unit: "bags"},
	}

	result := ReconcilePantry(items, pantry)
	require.Len(t, result, 1)
	assert.InDelta(t, 2, result[0].Quantity, 0.001)
}

func TestReconcilePantryIgnoresUnrelatedEntries(t *testing.T) {
	items := []domain.GroceryItem{
		{ID: "1", Name: "butter", Quantity: 4, Unit: "oz"},
	}
	pantry := []PantryInput{
		{Item: "margarine", Quantity: 16, Unit: "oz"},
	}

	result := ReconcilePantry(items, pantry)
	require.Len(t, result, 1)
	assert.InDelta(t, 4, result[0].Quantity, 0.001)
}

func TestReconcilePantryIsIdempotent(t *testing.T) {
	items := []domain.GroceryItem{
		{ID: "1", Name: "rice", Quantity: 2, Unit: "lb"},
		{ID: "2", Name: "eggs", Quantity: 6, Unit: "units"},
	}
	pantry := []PantryInput{
		{Item: "rice", Quantity: 0.5, Unit: "lb"},
		{Item: "eggs", Quantity: 6, Unit: "units"},
	}

	once := ReconcilePantry(items, pantry)
	twice := ReconcilePantry(items, pantry)
	assert.Equal(t, once, twice)

	// The input list is untouched.
	assert.InDelta(t, 2, items[0].Quantity, 0.001)
	assert.Len(t, items, 2)
}
