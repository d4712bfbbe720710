package builder

import (
	"github.com/vk/plategen/internal/config"
	"github.com/vk/plategen/internal/units"
)

// BatchPolicy converts the consumed amount of a recipe-backed ingredient
// into an effective number of base-scale batches of the child recipe. It
// is the single place where "0.5 batches of guacamole" or "2 cups of
// tomato sauce" becomes a multiplier over the child's cached base profile.
//
// The conversion rule is deliberately swappable: how a quantity maps onto a
// sub-recipe's yield is a site-level convention, not a law of the engine.
type BatchPolicy interface {
	// Batches returns how many base-scale batches of child the given
	// amount represents. The bool is false when the amount's unit cannot
	// be reconciled with any of the child's yields.
	Batches(quantity float64, unit string, child *config.Recipe) (float64, bool)
}

// YieldBatchPolicy reconciles the consumed amount against the child's
// yields, in yield declaration order:
//
//   - a volume amount against a volume yield, or a weight amount against a
//     weight yield, converts through the standard base units;
//   - otherwise a name-equivalent unit (including "batch" against a batch
//     yield, or unitless against a unitless yield) divides directly.
//
// A recipe with no yields is treated as yielding one batch, so a unitless
// quantity or one in batches is the batch count itself.
type YieldBatchPolicy struct{}

// Batches implements BatchPolicy.
func (YieldBatchPolicy) Batches(quantity float64, unit string, child *config.Recipe) (float64, bool) {
	if len(child.Yields) == 0 {
		if unit == "" || units.Equivalent(unit, "batch") {
			return quantity, true
		}
		return 0, false
	}

	for _, y := range child.Yields {
		switch {
		case units.IsVolume(unit) && units.IsVolume(y.Unit):
			return quantity * units.ToStandard(unit) / (y.Number * units.ToStandard(y.Unit)), true
		case units.IsWeight(unit) && units.IsWeight(y.Unit):
			return quantity * units.ToStandard(unit) / (y.Number * units.ToStandard(y.Unit)), true
		case units.Equivalent(unit, y.Unit):
			return quantity / y.Number, true
		}
	}

	// "batch" always works: one batch is the whole recipe at base scale.
	if unit == "" || units.Equivalent(unit, "batch") {
		return quantity, true
	}
	return 0, false
}
