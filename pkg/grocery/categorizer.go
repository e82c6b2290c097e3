package grocery

import (
	"strings"

	"mealplanner-backend/domain"
)

// DefaultCategory is assigned when no keyword matches.
const DefaultCategory = "pantry"

// Keyword table for best-effort categorization, checked in order so that
// more specific entries ("bell pepper") win over generic ones ("pepper").
var categoryKeywords = []struct {
	keyword  string
	category string
}{
	{"bell pepper", "produce"},
	{"tomato", "produce"},
	{"onion", "produce"},
	{"garlic", "produce"},
	{"potato", "produce"},
	{"carrot", "produce"},
	{"lettuce", "produce"},
	{"spinach", "produce"},
	{"broccoli", "produce"},
	{"cucumber", "produce"},
	{"celery", "produce"},
	{"mushroom", "produce"},
	{"avocado", "produce"},
	{"apple", "produce"},
	{"banana", "produce"},
	{"lemon", "produce"},
	{"lime", "produce"},
	{"orange", "produce"},
	{"berry", "produce"},
	{"berries", "produce"},
	{"cilantro", "produce"},
	{"parsley", "produce"},
	{"basil", "produce"},
	{"ginger", "produce"},
	{"zucchini", "produce"},

	{"milk", "dairy"},
	{"cheese", "dairy"},
	{"butter", "dairy"},
	{"yogurt", "dairy"},
	{"cream", "dairy"},
	{"egg", "dairy"},

	{"chicken", "meat"},
	{"beef", "meat"},
	{"pork", "meat"},
	{"turkey", "meat"},
	{"bacon", "meat"},
	{"sausage", "meat"},
	{"ham", "meat"},
	{"lamb", "meat"},

	{"salmon", "seafood"},
	{"shrimp", "seafood"},
	{"tuna", "seafood"},
	{"fish", "seafood"},

	{"bread", "bakery"},
	{"bagel", "bakery"},
	{"tortilla", "bakery"},
	{"bun", "bakery"},
	{"croissant", "bakery"},

	{"frozen", "frozen"},
	{"ice cream", "frozen"},

	{"juice", "beverages"},
	{"soda", "beverages"},
	{"coffee", "beverages"},
	{"tea", "beverages"},
	{"wine", "beverages"},
	{"beer", "beverages"},
	{"sparkling water", "beverages"},

	{"chili powder", "spices"},
	{"cumin", "spices"},
	{"paprika", "spices"},
	{"cinnamon", "spices"},
	{"oregano", "spices"},
	{"turmeric", "spices"},
	{"nutmeg", "spices"},
	{"salt", "spices"},
	{"pepper", "spices"},

	{"paper towel", "household"},
	{"detergent", "household"},
	{"soap", "household"},
	{"foil", "household"},
	{"sponge", "household"},
}

// Categorize maps a canonical ingredient name to a grocery category. Unknown
// names fall back to DefaultCategory rather than failing, so every item ends
// up with a non-empty category.
func Categorize(name string) string {
	canonical := CanonicalName(name)
	for _, entry := range categoryKeywords {
		if strings.Contains(canonical, entry.keyword) {
			return entry.category
		}
	}
	return DefaultCategory
}

// CategorizeItems fills in the category of every item in place.
func CategorizeItems(items []domain.GroceryItem) {
	for i := range items {
		items[i].Category = Categorize(items[i].Name)
	}
}
