package grocery

import (
	"context"
	"sort"

	"mealplanner-backend/domain"
)

// engineGenerator is the deterministic generation path: expand, consolidate,
// reconcile, categorize. It needs no external service and is the fallback
// when no generative backend is configured.
type engineGenerator struct{}

// NewEngineGenerator returns the deterministic consolidation engine.
func NewEngineGenerator() Generator {
	return &engineGenerator{}
}

func (g *engineGenerator) Generate(_ context.Context, input PlanInput) ([]domain.GroceryItem, error) {
	meals := make([]MealInput, len(input.Meals))
	copy(meals, input.Meals)
	sort.SliceStable(meals, func(i, j int) bool {
		if meals[i].Date != meals[j].Date {
			return meals[i].Date < meals[j].Date
		}
		return domain.MealTimeRank(meals[i].MealTime) < domain.MealTimeRank(meals[j].MealTime)
	})

	var expanded []ExpandedIngredient
	for _, meal := range meals {
		if meal.RecipeID == "" {
			// Freeform meals carry no structured ingredients.
			continue
		}
		rec, ok := input.Recipes[meal.RecipeID]
		if !ok {
			continue
		}
		expanded = append(expanded, ExpandRecipe(rec, meal.Servings, meal.Date)...)
	}

	items := Consolidate(expanded, input.UnitSystem)
	items = ReconcilePantry(items, input.Pantry)
	NoteSplitMeasurements(items)
	CategorizeItems(items)

	return items, nil
}
