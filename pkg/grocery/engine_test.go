package grocery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealplanner-backend/domain"
)

func TestEngineGeneratorFullPipeline(t *testing.T) {
	input := PlanInput{
		MealPlanID: "plan-1",
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-02",
		UnitSystem: domain.UnitSystemImperial,
		Meals: []MealInput{
			{Date: "2026-09-02", MealTime: "dinner", RecipeID: "rec-2", Servings: 3},
			{Date: "2026-09-01", MealTime: "dinner", RecipeID: "rec-1", Servings: 2},
		},
		Recipes: map[string]RecipeInput{
			"rec-1": {
				ID:    "rec-1",
				Title: "Salad",
				Ingredients: []domain.RecipeIngredient{
					{Name: "Tomato", Amount: 2, Unit: "units"},
					{Name: "Eggs", Amount: 1, Unit: "units"},
				},
			},
			"rec-2": {
				ID:    "rec-2",
				Title: "Salsa",
				Ingredients: []domain.RecipeIngredient{
					{Name: "tomato", Amount: 2, Unit: "units"},
				},
			},
		},
		Pantry: []PantryInput{
			{Item: "eggs", Quantity: 2, Unit: "units"},
		},
	}

	items, err := NewEngineGenerator().Generate(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, items, 1)

	// 2x2 from the salad plus 2x3 from the salsa.
	tomato := items[0]
	assert.Equal(t, "tomato", tomato.Name)
	assert.InDelta(t, 10, tomato.Quantity, 0.001)
	assert.Equal(t, "units", tomato.Unit)
	assert.Equal(t, "produce", tomato.Category)

	// Provenance is ordered by meal date.
	require.Len(t, tomato.FromRecipes, 2)
	assert.Equal(t, "rec-1", tomato.FromRecipes[0].RecipeID)
	assert.Equal(t, "2026-09-01", tomato.FromRecipes[0].MealDate)
	assert.Equal(t, 2, tomato.FromRecipes[0].Servings)
	assert.Equal(t, "rec-2", tomato.FromRecipes[1].RecipeID)
	assert.Equal(t, 3, tomato.FromRecipes[1].Servings)
}

func TestEngineGeneratorSkipsFreeformMeals(t *testing.T) {
	input := PlanInput{
		MealPlanID: "plan-1",
		UnitSystem: domain.UnitSystemImperial,
		Meals: []MealInput{
			{Date: "2026-09-01", MealTime: "lunch", Title: "Leftovers", Servings: 2},
			{Date: "2026-09-01", MealTime: "dinner", RecipeID: "gone", Servings: 2},
		},
		Recipes: map[string]RecipeInput{},
	}

	items, err := NewEngineGenerator().Generate(context.Background(), input)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestEngineGeneratorClearsMeasurementNoteWhenTwinLineIsCovered(t *testing.T) {
	input := PlanInput{
		MealPlanID: "plan-1",
		UnitSystem: domain.UnitSystemMetric,
		Meals: []MealInput{
			{Date: "2026-09-01", MealTime: "breakfast", RecipeID: "rec-1", Servings: 1},
			{Date: "2026-09-01", MealTime: "dinner", RecipeID: "rec-2", Servings: 1},
		},
		Recipes: map[string]RecipeInput{
			"rec-1": {ID: "rec-1", Ingredients: []domain.RecipeIngredient{{Name: "flour", Amount: 2, Unit: "cups"}}},
			"rec-2": {ID: "rec-2", Ingredients: []domain.RecipeIngredient{{Name: "flour", Amount: 500, Unit: "g"}}},
		},
		// The pantry exhausts the weight line entirely, leaving the volume
		// line as the only flour entry.
		Pantry: []PantryInput{
			{Item: "flour", Quantity: 500, Unit: "g"},
		},
	}

	items, err := NewEngineGenerator().Generate(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "flour", items[0].Name)
	assert.Empty(t, items[0].Notes, "a disambiguation note is meaningless once only one line survives")
}

func TestEngineGeneratorOrdersMealsWithinADay(t *testing.T) {
	input := PlanInput{
		MealPlanID: "plan-1",
		UnitSystem: domain.UnitSystemImperial,
		Meals: []MealInput{
			{Date: "2026-09-01", MealTime: "dinner", RecipeID: "rec-d", Servings: 1},
			{Date: "2026-09-01", MealTime: "breakfast", RecipeID: "rec-b", Servings: 1},
		},
		Recipes: map[string]RecipeInput{
			"rec-b": {ID: "rec-b", Ingredients: []domain.RecipeIngredient{{Name: "oats", Amount: 1, Unit: "cup"}}},
			"rec-d": {ID: "rec-d", Ingredients: []domain.RecipeIngredient{{Name: "oats", Amount: 1, Unit: "cup"}}},
		},
	}

	items, err := NewEngineGenerator().Generate(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Len(t, items[0].FromRecipes, 2)
	assert.Equal(t, "rec-b", items[0].FromRecipes[0].RecipeID)
	assert.Equal(t, "rec-d", items[0].FromRecipes[1].RecipeID)
}
