package builder

import "fmt"

// InvalidScaleError reports a non-positive serving size or scale
// multiplier, either declared in site data or requested by a caller.
type InvalidScaleError struct {
	Recipe string
	Scale  float64
}

func (e *InvalidScaleError) Error() string {
	return fmt.Sprintf("recipe %q: invalid scale %v, must be positive", e.Recipe, e.Scale)
}

// UnitMismatchError reports an ingredient whose declared unit cannot be
// reconciled with what it references: none of the food's package measures,
// or none of the child recipe's yields, are compatible with it.
type UnitMismatchError struct {
	// Recipe is the slug of the recipe that owns the ingredient.
	Recipe string
	// Ingredient is the ingredient's display item text.
	Ingredient string
	// Ref is the food ID or child recipe slug the unit was checked against.
	Ref string
	// Unit is the ingredient's declared unit. Empty means unitless.
	Unit string
}

func (e *UnitMismatchError) Error() string {
	unit := e.Unit
	if unit == "" {
		unit = "(no unit)"
	}
	return fmt.Sprintf("ingredient %q in recipe %q: unit %s cannot be reconciled with %q",
		e.Ingredient, e.Recipe, unit, e.Ref)
}
