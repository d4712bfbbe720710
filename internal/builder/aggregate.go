package builder

import (
	"github.com/vk/plategen/internal/config"
	"github.com/vk/plategen/internal/units"
)

// aggregator reduces scaled ingredient rows into cost and nutrition
// totals. It carries the immutable food and recipe tables, the cached
// base-scale profiles of every already-built child recipe, and the batch
// policy. It holds no mutable state of its own.
type aggregator struct {
	foods   map[string]*config.Food
	recipes map[string]*config.Recipe
	base    map[string]*Profile
	policy  BatchPolicy
}

// aggregate fills in each row's cost and nutrition contribution and
// reduces them into one computed profile for the given scale factor. Rows
// line up with the recipe's ingredients by position. The rows slice is
// modified in place and retained by the profile. A recipe with no rows
// yields a zero-valued profile.
func (a *aggregator) aggregate(r *config.Recipe, factor float64, rows []Row) (*Profile, error) {
	profile := &Profile{
		Slug:       r.Slug,
		Multiplier: factor,
		Yields:     scaleYields(r, factor),
		Rows:       rows,
	}

	for i := range rows {
		if err := a.fillRow(r, r.Ingredients[i], &rows[i], factor); err != nil {
			return nil, err
		}
		profile.Cost += rows[i].Cost
		profile.Nutrition = profile.Nutrition.Add(rows[i].Nutrition)
	}

	// Recipe-level declared cost or nutrition replaces the aggregate.
	if r.ExplicitCost != nil {
		profile.Cost = *r.ExplicitCost * factor
	}
	if r.ExplicitNutrition != nil {
		profile.Nutrition = r.ExplicitNutrition.Scale(factor)
	}

	if servings, ok := r.Servings(); ok {
		profile.HasServings = true
		profile.Servings = servings * factor
	}
	perServing := 1.0
	if profile.HasServings && profile.Servings > 0 {
		perServing = profile.Servings
	}
	profile.CostPerServing = profile.Cost / perServing
	profile.PerServing = profile.Nutrition.Scale(1 / perServing)

	return profile, nil
}

// fillRow computes one row's cost and nutrition contribution. Explicit
// per-ingredient declarations win; otherwise food-backed rows convert
// through the food's package measures and recipe-backed rows re-scale the
// child's cached base-scale totals.
func (a *aggregator) fillRow(r *config.Recipe, ing *config.Ingredient, row *Row, factor float64) error {
	needCost := true
	needNutrition := true
	if ing.ExplicitCost != nil {
		row.Cost = *ing.ExplicitCost * factor
		needCost = false
	}
	if ing.ExplicitNutrition != nil {
		row.Nutrition = ing.ExplicitNutrition.Scale(factor)
		needNutrition = false
	}

	switch row.Kind {
	case config.RecipeRef:
		child := a.recipes[row.Ref]
		batches, ok := a.policy.Batches(row.Quantity, row.Unit, child)
		if !ok {
			return &UnitMismatchError{Recipe: r.Slug, Ingredient: row.Item, Ref: row.Ref, Unit: row.Unit}
		}
		row.Batches = batches
		if !needCost && !needNutrition {
			return nil
		}
		baseProfile, ok := a.base[row.Ref]
		if !ok {
			panic("builder: child recipe built out of order: " + row.Ref)
		}
		if needCost {
			row.Cost = baseProfile.Cost * batches
		}
		if needNutrition {
			row.Nutrition = baseProfile.Nutrition.Scale(batches)
		}

	case config.FoodRef:
		if !needCost && !needNutrition {
			return nil
		}
		food := a.foods[row.Ref]
		count, ok := packageCount(row.Quantity, row.Unit, food)
		if !ok {
			return &UnitMismatchError{Recipe: r.Slug, Ingredient: row.Item, Ref: row.Ref, Unit: row.Unit}
		}
		if needCost {
			row.Cost = food.Cost * count
		}
		if needNutrition {
			row.Nutrition = food.Nutrition.Scale(count)
		}
	}
	return nil
}

// packageCount returns how many packages of the food the given amount
// represents: unitless amounts divide by the discrete count, volume and
// weight amounts convert through the standard base units, and any other
// unit must match the food's free-form measure by name. The bool is false
// when no package measure is compatible.
func packageCount(quantity float64, unit string, food *config.Food) (float64, bool) {
	switch {
	case unit == "":
		if food.DiscreteAmount == 0 {
			return 0, false
		}
		return quantity / food.DiscreteAmount, true

	case units.IsVolume(unit):
		if food.VolumeAmount == 0 || !units.IsVolume(food.VolumeUnit) {
			return 0, false
		}
		return quantity * units.ToStandard(unit) / (food.VolumeAmount * units.ToStandard(food.VolumeUnit)), true

	case units.IsWeight(unit):
		if food.WeightAmount == 0 || !units.IsWeight(food.WeightUnit) {
			return 0, false
		}
		return quantity * units.ToStandard(unit) / (food.WeightAmount * units.ToStandard(food.WeightUnit)), true

	default:
		if food.OtherAmount == 0 || !units.Equivalent(unit, food.OtherUnit) {
			return 0, false
		}
		return quantity / food.OtherAmount, true
	}
}
