package config

import "github.com/vk/plategen/internal/nutrition"

// Site is the unified, format-agnostic representation of all loaded site
// data: the food reference table and every recipe definition.
type Site struct {
	Foods   map[string]*Food
	Recipes map[string]*Recipe
}

// Food is a purchasable ingredient with intrinsic cost and nutrition. Cost
// and Nutrition describe one package; the measure fields describe how much
// one package contains, in up to four ways: by volume, by weight, by a
// discrete count, or by a free-form unit.
type Food struct {
	ID        string
	Name      string
	Cost      float64
	Nutrition nutrition.Facts

	VolumeAmount   float64
	VolumeUnit     string
	WeightAmount   float64
	WeightUnit     string
	OtherAmount    float64
	OtherUnit      string
	DiscreteAmount float64
}

// RefKind distinguishes the two things an ingredient can point at.
type RefKind int

const (
	// FoodRef marks an ingredient backed by a Food record.
	FoodRef RefKind = iota
	// RecipeRef marks an ingredient backed by another Recipe.
	RecipeRef
)

// Ingredient is one line of a recipe: an amount, a unit, and a reference to
// either a food or another recipe. Explicit cost or nutrition, when set,
// replaces whatever the reference would have contributed.
type Ingredient struct {
	Item     string
	Quantity float64
	Unit     string
	Kind     RefKind
	Ref      string

	ExplicitCost      *float64
	ExplicitNutrition *nutrition.Facts
}

// Yield is one way of measuring how much a recipe produces. A yield whose
// unit is "servings" defines the recipe's serving count.
type Yield struct {
	Number          float64
	Unit            string
	ShowYield       bool
	ShowServingSize bool
}

// Recipe is a dish: ordered ingredients, one or more yields, and the scale
// multipliers its pages should be generated for. Ingredient order is both
// display order and the resolver's tie-break order.
type Recipe struct {
	Slug        string
	Title       string
	Yields      []Yield
	Scales      []float64
	Ingredients []*Ingredient

	ExplicitCost      *float64
	ExplicitNutrition *nutrition.Facts
}

// Servings returns the recipe's serving count, taken from the first yield
// measured in servings. The second result is false when no such yield
// exists.
func (r *Recipe) Servings() (float64, bool) {
	for _, y := range r.Yields {
		if y.Unit == "serving" || y.Unit == "servings" {
			return y.Number, true
		}
	}
	return 0, false
}

// Multipliers returns every scale the recipe's pages are generated for:
// the 1x base scale followed by the declared extra multipliers.
func (r *Recipe) Multipliers() []float64 {
	out := make([]float64, 0, len(r.Scales)+1)
	out = append(out, 1)
	for _, s := range r.Scales {
		if s == 1 {
			continue
		}
		out = append(out, s)
	}
	return out
}

// RecipeRefs returns the slugs of every recipe-backed ingredient, in
// declaration order, duplicates included.
func (r *Recipe) RecipeRefs() []string {
	var refs []string
	for _, ing := range r.Ingredients {
		if ing.Kind == RecipeRef {
			refs = append(refs, ing.Ref)
		}
	}
	return refs
}
