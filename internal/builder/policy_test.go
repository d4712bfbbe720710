package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/plategen/internal/config"
)

func TestYieldBatchPolicy(t *testing.T) {
	policy := YieldBatchPolicy{}

	t.Run("servings divide by serving yield", func(t *testing.T) {
		guacamole := &config.Recipe{
			Slug:   "guacamole",
			Yields: []config.Yield{{Number: 4, Unit: "servings"}},
		}

		batches, ok := policy.Batches(2, "servings", guacamole)
		require.True(t, ok)
		assert.Equal(t, 0.5, batches)

		batches, ok = policy.Batches(1, "serving", guacamole)
		require.True(t, ok)
		assert.Equal(t, 0.25, batches)
	})

	t.Run("volume converts through standard base", func(t *testing.T) {
		sauce := &config.Recipe{
			Slug:   "tomato-sauce",
			Yields: []config.Yield{{Number: 2, Unit: "cups"}},
		}

		// 16 tablespoons make one cup.
		batches, ok := policy.Batches(32, "tablespoons", sauce)
		require.True(t, ok)
		assert.InDelta(t, 1.0, batches, 1e-4)
	})

	t.Run("weight converts through standard base", func(t *testing.T) {
		dough := &config.Recipe{
			Slug:   "pizza-dough",
			Yields: []config.Yield{{Number: 1, Unit: "pound"}},
		}

		batches, ok := policy.Batches(8, "ounces", dough)
		require.True(t, ok)
		assert.InDelta(t, 0.5, batches, 1e-4)
	})

	t.Run("free-form units match by name", func(t *testing.T) {
		loaf := &config.Recipe{
			Slug:   "bread",
			Yields: []config.Yield{{Number: 2, Unit: "loaves"}},
		}

		batches, ok := policy.Batches(1, "loaves", loaf)
		require.True(t, ok)
		assert.Equal(t, 0.5, batches)
	})

	t.Run("batch and unitless fall through to whole batches", func(t *testing.T) {
		loaf := &config.Recipe{
			Slug:   "bread",
			Yields: []config.Yield{{Number: 2, Unit: "loaves"}},
		}

		batches, ok := policy.Batches(3, "batches", loaf)
		require.True(t, ok)
		assert.Equal(t, 3.0, batches)

		batches, ok = policy.Batches(0.5, "", loaf)
		require.True(t, ok)
		assert.Equal(t, 0.5, batches)
	})

	t.Run("recipe without yields counts batches", func(t *testing.T) {
		stock := &config.Recipe{Slug: "stock"}

		batches, ok := policy.Batches(2, "", stock)
		require.True(t, ok)
		assert.Equal(t, 2.0, batches)

		batches, ok = policy.Batches(1, "batch", stock)
		require.True(t, ok)
		assert.Equal(t, 1.0, batches)

		_, ok = policy.Batches(2, "cups", stock)
		assert.False(t, ok)
	})

	t.Run("incompatible unit is rejected", func(t *testing.T) {
		guacamole := &config.Recipe{
			Slug:   "guacamole",
			Yields: []config.Yield{{Number: 4, Unit: "servings"}},
		}

		_, ok := policy.Batches(2, "cups", guacamole)
		assert.False(t, ok)
	})

	t.Run("first compatible yield wins", func(t *testing.T) {
		sauce := &config.Recipe{
			Slug: "tomato-sauce",
			Yields: []config.Yield{
				{Number: 4, Unit: "cups"},
				{Number: 1000, Unit: "grams"},
			},
		}

		batches, ok := policy.Batches(2, "cups", sauce)
		require.True(t, ok)
		assert.Equal(t, 0.5, batches)

		batches, ok = policy.Batches(500, "grams", sauce)
		require.True(t, ok)
		assert.Equal(t, 0.5, batches)
	})
}
