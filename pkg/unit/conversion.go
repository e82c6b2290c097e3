package unit

import (
	"strings"
)

// Conversion factors to grams for weight units.
var weightToGrams = map[string]float64{
	"g":         1,
	"gram":      1,
	"grams":     1,
	"kg":        1000,
	"kilogram":  1000,
	"kilograms": 1000,
	"oz":        28.3495,
	"ounce":     28.3495,
	"ounces":    28.3495,
	"lb":        453.592,
	"lbs":       453.592,
	"pound":     453.592,
	"pounds":    453.592,
}

// Conversion factors to milliliters for volume units.
var volumeToMl = map[string]float64{
	"ml":           1,
	"milliliter":   1,
	"milliliters":  1,
	"l":            1000,
	"liter":        1000,
	"liters":       1000,
	"tsp":          4.92892,
	"teaspoon":     4.92892,
	"teaspoons":    4.92892,
	"tbsp":         14.7868,
	"tablespoon":   14.7868,
	"tablespoons":  14.7868,
	"fl oz":        29.5735,
	"fluid ounce":  29.5735,
	"fluid ounces": 29.5735,
	"cup":          236.588,
	"cups":         236.588,
	"pint":         473.176,
	"pints":        473.176,
	"quart":        946.353,
	"quarts":       946.353,
	"gallon":       3785.41,
	"gallons":      3785.41,
}

func normalize(u string) string {
	return strings.ToLower(strings.TrimSpace(u))
}

// ToGrams converts a weight amount into grams. The second return value is
// false when the unit is not a known weight unit.
func ToGrams(amount float64, u string) (float64, bool) {
	factor, ok := weightToGrams[normalize(u)]
	if !ok {
		return 0, false
	}
	return amount * factor, true
}

// ToMilliliters converts a volume amount into milliliters. The second return
// value is false when the unit is not a known volume unit.
func ToMilliliters(amount float64, u string) (float64, bool) {
	factor, ok := volumeToMl[normalize(u)]
	if !ok {
		return 0, false
	}
	return amount * factor, true
}

// ToCanonical converts an amount into grams, trying weight first. Volume
// units are converted assuming water density (1 ml ~= 1 g), which is a rough
// estimate; ingredient-specific densities are not modeled.
func ToCanonical(amount float64, u string) (float64, bool) {
	if grams, ok := ToGrams(amount, u); ok {
		return grams, true
	}
	if ml, ok := ToMilliliters(amount, u); ok {
		return ml, true
	}
	return 0, false
}

func IsWeightUnit(u string) bool {
	_, ok := weightToGrams[normalize(u)]
	return ok
}

func IsVolumeUnit(u string) bool {
	_, ok := volumeToMl[normalize(u)]
	return ok
}

// FormatWeight renders grams in the presentation unit of the target system:
// grams/kilograms for metric, ounces/pounds for imperial.
func FormatWeight(grams float64, unitSystem string) (float64, string) {
	if unitSystem == "metric" {
		if grams >= 1000 {
			return grams / 1000, "kg"
		}
		return grams, "g"
	}
	if grams >= weightToGrams["lb"] {
		return grams / weightToGrams["lb"], "lb"
	}
	return grams / weightToGrams["oz"], "oz"
}

// FormatVolume renders milliliters in the presentation unit of the target
// system: milliliters/liters for metric, fluid ounces/cups for imperial.
func FormatVolume(ml float64, unitSystem string) (float64, string) {
	if unitSystem == "metric" {
		if ml >= 1000 {
			return ml / 1000, "l"
		}
		return ml, "ml"
	}
	if ml >= volumeToMl["cup"] {
		return ml / volumeToMl["cup"], "cup"
	}
	return ml / volumeToMl["fl oz"], "fl oz"
}
