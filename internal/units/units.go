// Package units identifies cooking units and converts between compatible
// ones. Volume units share a standard base of milliliters and weight units
// a standard base of grams; everything else only matches by name.
package units

import "strings"

type kind int

const (
	kindOther kind = iota
	kindVolume
	kindWeight
)

// entry describes one known unit: its singular and plural spellings, its
// measurement kind, and the factor that converts one of it into the
// standard base unit for that kind.
type entry struct {
	single     string
	plural     string
	kind       kind
	toStandard float64
}

// table is the full set of units the builder understands. Unknown units
// still work for display and name-equivalence; they just never convert.
var table = []entry{
	// volume, standard base: milliliter
	{"milliliter", "milliliters", kindVolume, 1},
	{"ml", "ml", kindVolume, 1},
	{"liter", "liters", kindVolume, 1000},
	{"teaspoon", "teaspoons", kindVolume, 4.92892},
	{"tsp", "tsp", kindVolume, 4.92892},
	{"tablespoon", "tablespoons", kindVolume, 14.7868},
	{"tbsp", "tbsp", kindVolume, 14.7868},
	{"fluid ounce", "fluid ounces", kindVolume, 29.5735},
	{"cup", "cups", kindVolume, 236.588},
	{"pint", "pints", kindVolume, 473.176},
	{"quart", "quarts", kindVolume, 946.353},
	{"gallon", "gallons", kindVolume, 3785.41},

	// weight, standard base: gram
	{"gram", "grams", kindWeight, 1},
	{"g", "g", kindWeight, 1},
	{"kilogram", "kilograms", kindWeight, 1000},
	{"kg", "kg", kindWeight, 1000},
	{"ounce", "ounces", kindWeight, 28.3495},
	{"oz", "oz", kindWeight, 28.3495},
	{"pound", "pounds", kindWeight, 453.592},
	{"lb", "lbs", kindWeight, 453.592},

	// countable and informal units, no conversion factor
	{"serving", "servings", kindOther, 0},
	{"batch", "batches", kindOther, 0},
	{"clove", "cloves", kindOther, 0},
	{"slice", "slices", kindOther, 0},
	{"stick", "sticks", kindOther, 0},
	{"can", "cans", kindOther, 0},
	{"pinch", "pinches", kindOther, 0},
	{"bunch", "bunches", kindOther, 0},
}

func find(unit string) (entry, bool) {
	u := strings.ToLower(unit)
	for _, e := range table {
		if e.single == u || e.plural == u {
			return e, true
		}
	}
	return entry{}, false
}

// IsKnown reports whether the unit appears in the table, in either its
// singular or plural spelling.
func IsKnown(unit string) bool {
	if unit == "" {
		return false
	}
	_, ok := find(unit)
	return ok
}

// IsVolume reports whether the unit measures volume.
func IsVolume(unit string) bool {
	e, ok := find(unit)
	return ok && e.kind == kindVolume
}

// IsWeight reports whether the unit measures weight.
func IsWeight(unit string) bool {
	e, ok := find(unit)
	return ok && e.kind == kindWeight
}

// Equivalent reports whether two units name the same thing: identical
// strings (case-insensitive), or one is the plural of the other.
func Equivalent(a, b string) bool {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return true
	}
	if e, ok := find(a); ok && (e.single == b || e.plural == b) {
		return true
	}
	return false
}

// ToStandard returns the factor converting one of the given unit into its
// kind's standard base (milliliters or grams). Units outside the table, and
// units with no defined conversion, return 1.
func ToStandard(unit string) float64 {
	e, ok := find(unit)
	if !ok || e.toStandard == 0 {
		return 1
	}
	return e.toStandard
}

// Singular returns the singular spelling of a unit, or the input unchanged
// when the unit is not in the table.
func Singular(unit string) string {
	u := strings.ToLower(unit)
	for _, e := range table {
		if e.plural == u {
			return e.single
		}
	}
	return unit
}

// Plural returns the plural spelling of a unit, or the input unchanged when
// the unit is not in the table.
func Plural(unit string) string {
	u := strings.ToLower(unit)
	for _, e := range table {
		if e.single == u {
			return e.plural
		}
	}
	return unit
}

// Numberize returns the spelling of a unit appropriate for the given
// amount: plural for amounts above one, singular otherwise.
func Numberize(unit string, number float64) string {
	if number > 1 {
		return Plural(unit)
	}
	return Singular(unit)
}
