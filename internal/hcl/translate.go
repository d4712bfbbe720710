// This file contains the logic for translating HCL schema structs into the
// format-agnostic site model defined in the config package. Numeric fields
// arrive as HCL expressions and are evaluated here, so site data can say
// `quantity = 1/2` or `calories = 3 * 70`.

package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/plategen/internal/config"
	"github.com/vk/plategen/internal/nutrition"
	"github.com/vk/plategen/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// evalNumber evaluates an expression to a float64. A nil expression and a
// null value both yield zero.
func evalNumber(expr hcl.Expression, what string) (float64, error) {
	if expr == nil {
		return 0, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, fmt.Errorf("invalid %s: %w", what, diags)
	}
	if val.IsNull() {
		return 0, nil
	}
	converted, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", what, err)
	}
	var out float64
	if err := gocty.FromCtyValue(converted, &out); err != nil {
		return 0, fmt.Errorf("invalid %s: %w", what, err)
	}
	return out, nil
}

// evalNumberList evaluates an expression to a list of float64, for the
// `scales` attribute.
func evalNumberList(expr hcl.Expression, what string) ([]float64, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid %s: %w", what, diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	converted, err := convert.Convert(val, cty.List(cty.Number))
	if err != nil {
		return nil, fmt.Errorf("%s must be a list of numbers: %w", what, err)
	}
	var out []float64
	if err := gocty.FromCtyValue(converted, &out); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", what, err)
	}
	return out, nil
}

// evalOptionalNumber is evalNumber for attributes where absence and zero
// mean different things. It returns nil when the expression is absent.
func evalOptionalNumber(expr hcl.Expression, what string) (*float64, error) {
	if expr == nil {
		return nil, nil
	}
	v, err := evalNumber(expr, what)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// translateNutrition converts a nutrition block into facts. A nil block
// yields nil.
func translateNutrition(n *schema.Nutrition, owner string) (*nutrition.Facts, error) {
	if n == nil {
		return nil, nil
	}
	var facts nutrition.Facts
	var err error
	if facts.Calories, err = evalNumber(n.Calories, "calories of "+owner); err != nil {
		return nil, err
	}
	if facts.Fat, err = evalNumber(n.Fat, "fat of "+owner); err != nil {
		return nil, err
	}
	if facts.Carbohydrates, err = evalNumber(n.Carbohydrates, "carbohydrates of "+owner); err != nil {
		return nil, err
	}
	if facts.Protein, err = evalNumber(n.Protein, "protein of "+owner); err != nil {
		return nil, err
	}
	return &facts, nil
}

// translateFood converts the HCL-specific food schema into the agnostic
// model.
func (l *Loader) translateFood(f *schema.Food) (*config.Food, error) {
	owner := fmt.Sprintf("food %q", f.ID)

	food := &config.Food{
		ID:   f.ID,
		Name: f.Name,
	}
	if food.Name == "" {
		food.Name = f.ID
	}

	var err error
	if food.Cost, err = evalNumber(f.Cost, "cost of "+owner); err != nil {
		return nil, err
	}
	if food.DiscreteAmount, err = evalNumber(f.Discrete, "discrete amount of "+owner); err != nil {
		return nil, err
	}
	if f.Volume != nil {
		if food.VolumeAmount, err = evalNumber(f.Volume.Amount, "volume amount of "+owner); err != nil {
			return nil, err
		}
		food.VolumeUnit = f.Volume.Unit
	}
	if f.Weight != nil {
		if food.WeightAmount, err = evalNumber(f.Weight.Amount, "weight amount of "+owner); err != nil {
			return nil, err
		}
		food.WeightUnit = f.Weight.Unit
	}
	if f.Other != nil {
		if food.OtherAmount, err = evalNumber(f.Other.Amount, "other amount of "+owner); err != nil {
			return nil, err
		}
		food.OtherUnit = f.Other.Unit
	}

	facts, err := translateNutrition(f.Nutrition, owner)
	if err != nil {
		return nil, err
	}
	if facts != nil {
		food.Nutrition = *facts
	}
	return food, nil
}

// translateIngredient converts one ingredient block, enforcing that exactly
// one backing reference is named.
func translateIngredient(ing *schema.Ingredient, recipeSlug string) (*config.Ingredient, error) {
	owner := fmt.Sprintf("ingredient %q in recipe %q", ing.Item, recipeSlug)

	if ing.Food != "" && ing.Recipe != "" {
		return nil, fmt.Errorf("%s names both a food and a recipe", owner)
	}
	if ing.Food == "" && ing.Recipe == "" {
		return nil, fmt.Errorf("%s must name a food or a recipe", owner)
	}

	out := &config.Ingredient{
		Item: ing.Item,
		Unit: ing.Unit,
	}
	if ing.Recipe != "" {
		out.Kind = config.RecipeRef
		out.Ref = ing.Recipe
	} else {
		out.Kind = config.FoodRef
		out.Ref = ing.Food
	}

	var err error
	if out.Quantity, err = evalNumber(ing.Quantity, "quantity of "+owner); err != nil {
		return nil, err
	}
	if out.Quantity <= 0 {
		return nil, fmt.Errorf("%s has non-positive quantity %v", owner, out.Quantity)
	}

	if out.ExplicitCost, err = evalOptionalNumber(ing.Cost, "cost of "+owner); err != nil {
		return nil, err
	}
	if out.ExplicitNutrition, err = translateNutrition(ing.Nutrition, owner); err != nil {
		return nil, err
	}
	return out, nil
}

// translateRecipe converts the HCL-specific recipe schema into the agnostic
// model.
func (l *Loader) translateRecipe(r *schema.Recipe) (*config.Recipe, error) {
	owner := fmt.Sprintf("recipe %q", r.Slug)

	recipe := &config.Recipe{
		Slug:  r.Slug,
		Title: r.Title,
	}

	var err error
	if recipe.Scales, err = evalNumberList(r.Scales, "scales of "+owner); err != nil {
		return nil, err
	}
	if recipe.ExplicitCost, err = evalOptionalNumber(r.Cost, "cost of "+owner); err != nil {
		return nil, err
	}
	if recipe.ExplicitNutrition, err = translateNutrition(r.Nutrition, owner); err != nil {
		return nil, err
	}

	for _, y := range r.Yields {
		yield := config.Yield{
			Unit:      y.Unit,
			ShowYield: true,
		}
		if yield.Unit == "" {
			yield.Unit = "servings"
		}
		if y.ShowYield != nil {
			yield.ShowYield = *y.ShowYield
		}
		if y.ShowServingSize != nil {
			yield.ShowServingSize = *y.ShowServingSize
		}
		if yield.Number, err = evalNumber(y.Number, "yield of "+owner); err != nil {
			return nil, err
		}
		recipe.Yields = append(recipe.Yields, yield)
	}

	for _, ing := range r.Ingredients {
		translated, err := translateIngredient(ing, r.Slug)
		if err != nil {
			return nil, err
		}
		recipe.Ingredients = append(recipe.Ingredients, translated)
	}

	return recipe, nil
}
