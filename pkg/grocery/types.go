package grocery

import (
	"context"
	"strings"

	"mealplanner-backend/domain"
)

type (
	// PlanInput is the fully materialized view of a meal plan handed to a
	// generator. The generator performs no I/O of its own.
	PlanInput struct {
		MealPlanID string
		StartDate  string
		EndDate    string
		Meals      []MealInput
		Recipes    map[string]RecipeInput // recipe id -> recipe
		Pantry     []PantryInput
		UnitSystem string
	}

	MealInput struct {
		Date        string
		MealTime    string
		Title       string
		RecipeID    string
		Description string
		Servings    int
	}

	RecipeInput struct {
		ID          string
		Title       string
		Ingredients []domain.RecipeIngredient
	}

	PantryInput struct {
		Item     string
		Quantity float64
		Unit     string
	}

	// ExpandedIngredient is one scaled ingredient instance with its
	// provenance stub, still in the recipe's declared unit.
	ExpandedIngredient struct {
		Name        string
		Amount      float64
		Unit        string
		Preparation string
		Optional    bool
		Source      domain.GroceryItemSource
	}

	// Generator produces the consolidated items for a materialized plan.
	// Generation either fully succeeds or fully fails; no partial lists.
	Generator interface {
		Generate(ctx context.Context, input PlanInput) ([]domain.GroceryItem, error)
	}
)

// CanonicalName lower-cases and whitespace-normalizes an ingredient name so
// it can serve as a merge key.
func CanonicalName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
