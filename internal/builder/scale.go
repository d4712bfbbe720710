package builder

import (
	"github.com/vk/plategen/internal/config"
	"github.com/vk/plategen/internal/units"
)

// FactorFor returns the scale factor that makes the recipe produce
// targetServings servings: the target divided by the recipe's base serving
// count. A recipe without a servings yield is treated as serving one.
// Fails when the requested serving size is not positive.
func FactorFor(r *config.Recipe, targetServings float64) (float64, error) {
	if targetServings <= 0 {
		return 0, &InvalidScaleError{Recipe: r.Slug, Scale: targetServings}
	}
	base, ok := r.Servings()
	if !ok {
		base = 1
	}
	return targetServings / base, nil
}

// validateScales checks that every declared multiplier and every yield of
// the recipe is positive before any computation uses them.
func validateScales(r *config.Recipe) error {
	for _, m := range r.Multipliers() {
		if m <= 0 {
			return &InvalidScaleError{Recipe: r.Slug, Scale: m}
		}
	}
	for _, y := range r.Yields {
		if y.Number <= 0 {
			return &InvalidScaleError{Recipe: r.Slug, Scale: y.Number}
		}
	}
	return nil
}

// scaleRows computes the per-ingredient scaled quantity list for one scale
// factor. Rows come back in declaration order with cost and nutrition
// still zero; the aggregation pass fills those in.
func scaleRows(r *config.Recipe, factor float64) []Row {
	rows := make([]Row, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		rows = append(rows, Row{
			Item:     ing.Item,
			Quantity: ing.Quantity * factor,
			Unit:     ing.Unit,
			Kind:     ing.Kind,
			Ref:      ing.Ref,
		})
	}
	return rows
}

// scaleYields computes the recipe's yields at one scale factor, adjusting
// each unit's spelling to the scaled amount.
func scaleYields(r *config.Recipe, factor float64) []Yield {
	yields := make([]Yield, 0, len(r.Yields))
	for _, y := range r.Yields {
		number := y.Number * factor
		yields = append(yields, Yield{
			Number:          number,
			Unit:            units.Numberize(y.Unit, number),
			ShowYield:       y.ShowYield,
			ShowServingSize: y.ShowServingSize,
		})
	}
	return yields
}
