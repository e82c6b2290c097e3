package grocery

import (
	"mealplanner-backend/domain"
)

// ExpandRecipe scales a recipe's ingredient list by the requested serving
// count. Declared amounts are per one serving, so scaling is a plain
// multiplication. The declared ingredient order is preserved and no unit
// conversion happens here.
func ExpandRecipe(rec RecipeInput, servings int, mealDate string) []ExpandedIngredient {
	if servings < 1 {
		servings = 1
	}

	expanded := make([]ExpandedIngredient, 0, len(rec.Ingredients))
	for _, ing := range rec.Ingredients {
		expanded = append(expanded, ExpandedIngredient{
			Name:        ing.Name,
			Amount:      ing.Amount * float64(servings),
			Unit:        ing.Unit,
			Preparation: ing.Preparation,
			Optional:    ing.Optional,
			Source: domain.GroceryItemSource{
				RecipeID: rec.ID,
				MealDate: mealDate,
				Servings: servings,
			},
		})
	}
	return expanded
}
