package grocery

import (
	"mealplanner-backend/pkg/unit"

	"mealplanner-backend/domain"
)

const exhaustedEpsilon = 1e-9

// ReconcilePantry subtracts on-hand pantry quantities from consolidated
// items. A pantry entry applies only when its canonical name matches and its
// unit is convertible to the item's unit class; otherwise it is ignored. Items
// whose needed quantity is fully covered are dropped. The input slice is not
// mutated, so reconciling the same consolidated list against the same pantry
// snapshot twice gives the same result as doing it once.
func ReconcilePantry(items []domain.GroceryItem, pantry []PantryInput) []domain.GroceryItem {
	result := make([]domain.GroceryItem, 0, len(items))

	for _, item := range items {
		remaining, covered := applyPantry(item, pantry)
		if covered {
			continue
		}
		result = append(result, remaining)
	}

	return result
}

// applyPantry returns the item with pantry stock subtracted, and true when
// the pantry fully covers it.
func applyPantry(item domain.GroceryItem, pantry []PantryInput) (domain.GroceryItem, bool) {
	class := unitClass(item.Unit)

	// Needed amount in the item's canonical terms.
	var needed float64
	switch class {
	case classWeight:
		needed, _ = unit.ToGrams(item.Quantity, item.Unit)
	case classVolume:
		needed, _ = unit.ToMilliliters(item.Quantity, item.Unit)
	default:
		needed = item.Quantity
	}

	name := CanonicalName(item.Name)
	for _, p := range pantry {
		if CanonicalName(p.Item) != name {
			continue
		}

		switch class {
		case classWeight:
			if grams, ok := unit.ToGrams(p.Quantity, p.Unit); ok {
				needed -= grams
			}
		case classVolume:
			if ml, ok := unit.ToMilliliters(p.Quantity, p.Unit); ok {
				needed -= ml
			}
		default:
			if unitClass(p.Unit) == class {
				needed -= p.Quantity
			}
		}
	}

	if needed <= exhaustedEpsilon {
		return domain.GroceryItem{}, true
	}

	// Convert the remainder back into the unit the item already carries.
	switch class {
	case classWeight:
		perUnit, _ := unit.ToGrams(1, item.Unit)
		item.Quantity = round2(needed / perUnit)
		grams := round2(needed)
		item.QuantityInGrams = &grams
	case classVolume:
		perUnit, _ := unit.ToMilliliters(1, item.Unit)
		item.Quantity = round2(needed / perUnit)
	default:
		item.Quantity = round2(needed)
	}

	return item, false
}
