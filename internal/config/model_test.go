package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeServings(t *testing.T) {
	t.Run("first servings yield wins", func(t *testing.T) {
		r := &Recipe{Yields: []Yield{
			{Number: 12, Unit: "muffins"},
			{Number: 6, Unit: "servings"},
			{Number: 4, Unit: "servings"},
		}}

		n, ok := r.Servings()
		require.True(t, ok)
		assert.Equal(t, 6.0, n)
	})

	t.Run("singular spelling counts", func(t *testing.T) {
		r := &Recipe{Yields: []Yield{{Number: 1, Unit: "serving"}}}

		n, ok := r.Servings()
		require.True(t, ok)
		assert.Equal(t, 1.0, n)
	})

	t.Run("no servings yield", func(t *testing.T) {
		r := &Recipe{Yields: []Yield{{Number: 2, Unit: "loaves"}}}

		_, ok := r.Servings()
		assert.False(t, ok)
	})
}

func TestRecipeMultipliers(t *testing.T) {
	t.Run("base scale always comes first", func(t *testing.T) {
		r := &Recipe{Scales: []float64{2, 3}}
		assert.Equal(t, []float64{1, 2, 3}, r.Multipliers())
	})

	t.Run("declared base scale is not repeated", func(t *testing.T) {
		r := &Recipe{Scales: []float64{1, 2}}
		assert.Equal(t, []float64{1, 2}, r.Multipliers())
	})

	t.Run("no declared scales", func(t *testing.T) {
		r := &Recipe{}
		assert.Equal(t, []float64{1}, r.Multipliers())
	})
}

func TestRecipeRefs(t *testing.T) {
	r := &Recipe{Ingredients: []*Ingredient{
		{Item: "salsa", Kind: RecipeRef, Ref: "salsa"},
		{Item: "avocado", Kind: FoodRef, Ref: "avocado"},
		{Item: "more salsa", Kind: RecipeRef, Ref: "salsa"},
		{Item: "guacamole", Kind: RecipeRef, Ref: "guacamole"},
	}}

	// Declaration order, duplicates included.
	assert.Equal(t, []string{"salsa", "salsa", "guacamole"}, r.RecipeRefs())
}
