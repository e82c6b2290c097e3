package grocery

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"mealplanner-backend/domain"
	"mealplanner-backend/pkg/unit"
)

// Unit compatibility classes. Two instances merge only when their canonical
// names match and they fall into the same class; for unconvertible units the
// class carries the literal unit text, so only identical units merge.
const (
	classWeight = "weight"
	classVolume = "volume"
)

func unitClass(u string) string {
	if unit.IsWeightUnit(u) {
		return classWeight
	}
	if unit.IsVolumeUnit(u) {
		return classVolume
	}
	return "text:" + CanonicalName(u)
}

type lineItem struct {
	name        string
	displayName string
	class       string
	unit        string  // literal unit for the text class
	canonical   float64 // grams or milliliters for weight/volume classes
	quantity    float64 // summed amount for the text class
	optional    bool
	sources     []domain.GroceryItemSource
}

// Consolidate merges expanded ingredient instances into deduplicated line
// items. Instances with the same canonical name but incompatible units stay
// separate rather than being summed into a meaningless quantity.
func Consolidate(expanded []ExpandedIngredient, unitSystem string) []domain.GroceryItem {
	lines := make([]*lineItem, 0, len(expanded))
	index := make(map[string]*lineItem)

	for _, ing := range expanded {
		name := CanonicalName(ing.Name)
		class := unitClass(ing.Unit)
		key := name + "|" + class

		line, ok := index[key]
		if !ok {
			line = &lineItem{
				name:        name,
				displayName: ing.Name,
				class:       class,
				unit:        ing.Unit,
				optional:    ing.Optional,
			}
			index[key] = line
			lines = append(lines, line)
		} else {
			// A required use anywhere makes the merged item required.
			line.optional = line.optional && ing.Optional
		}

		switch class {
		case classWeight:
			grams, _ := unit.ToGrams(ing.Amount, ing.Unit)
			line.canonical += grams
		case classVolume:
			ml, _ := unit.ToMilliliters(ing.Amount, ing.Unit)
			line.canonical += ml
		default:
			line.quantity += ing.Amount
		}
		line.sources = append(line.sources, ing.Source)
	}

	items := make([]domain.GroceryItem, 0, len(lines))
	for _, line := range lines {
		item := domain.GroceryItem{
			ID:          uuid.New().String(),
			Name:        line.name,
			DisplayName: line.displayName,
			FromRecipes: line.sources,
			Optional:    line.optional,
		}

		switch line.class {
		case classWeight:
			qty, outUnit := unit.FormatWeight(line.canonical, unitSystem)
			item.Quantity = round2(qty)
			item.Unit = outUnit
			grams := round2(line.canonical)
			item.QuantityInGrams = &grams
		case classVolume:
			qty, outUnit := unit.FormatVolume(line.canonical, unitSystem)
			item.Quantity = round2(qty)
			item.Unit = outUnit
		default:
			item.Quantity = round2(line.quantity)
			item.Unit = line.unit
		}

		items = append(items, item)
	}

	NoteSplitMeasurements(items)
	return items
}

// NoteSplitMeasurements annotates items whose canonical name appears on more
// than one line with the measurement each line carries, and strips the note
// once a name is back down to a single line. It must run again whenever lines
// are removed, or a survivor keeps a stale disambiguation note.
func NoteSplitMeasurements(items []domain.GroceryItem) {
	nameCount := make(map[string]int)
	for _, item := range items {
		nameCount[item.Name]++
	}
	for i := range items {
		switch {
		case nameCount[items[i].Name] > 1:
			items[i].Notes = fmt.Sprintf("measured in %s", items[i].Unit)
		case strings.HasPrefix(items[i].Notes, "measured in "):
			items[i].Notes = ""
		}
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
