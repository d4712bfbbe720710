package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g := New()
	require.NotNil(t, g)
	assert.Zero(t, g.Len())
}

func TestAddNode(t *testing.T) {
	g := New()

	g.AddNode("a")
	assert.Equal(t, 1, g.Len())

	g.AddNode("a") // idempotent
	assert.Equal(t, 1, g.Len())

	g.AddNode("b")
	assert.Equal(t, 2, g.Len())
}

func TestAddDependency(t *testing.T) {
	t.Run("success case", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")

		require.NoError(t, g.AddDependency("a", "b"))

		deps, err := g.Dependencies("a")
		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, deps)
	})

	t.Run("duplicate dependencies collapse", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")

		require.NoError(t, g.AddDependency("a", "b"))
		require.NoError(t, g.AddDependency("a", "b"))

		deps, err := g.Dependencies("a")
		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, deps)
	})

	t.Run("error cases", func(t *testing.T) {
		g := New()
		g.AddNode("a")

		err := g.AddDependency("dne", "a")
		assert.ErrorContains(t, err, "node not found")

		err = g.AddDependency("a", "dne")
		assert.ErrorContains(t, err, "dependency node not found")
	})
}

func TestTopoSort(t *testing.T) {
	t.Run("empty graph", func(t *testing.T) {
		g := New()
		order, err := g.TopoSort()
		require.NoError(t, err)
		assert.Empty(t, order)
	})

	t.Run("nodes without edges keep insertion order", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")
		g.AddNode("c")

		order, err := g.TopoSort()
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, order)
	})

	t.Run("dependencies come first", func(t *testing.T) {
		g := New()
		for _, id := range []string{"a", "b", "c", "d"} {
			g.AddNode(id)
		}
		require.NoError(t, g.AddDependency("a", "b"))
		require.NoError(t, g.AddDependency("b", "c"))
		require.NoError(t, g.AddDependency("a", "c")) // transitive edge
		require.NoError(t, g.AddDependency("d", "a"))

		order, err := g.TopoSort()
		require.NoError(t, err)
		assertTopological(t, g, order)
		assert.Len(t, order, 4)
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		build := func() *Graph {
			g := New()
			for _, id := range []string{"x", "y", "z"} {
				g.AddNode(id)
			}
			require.NoError(t, g.AddDependency("x", "z"))
			require.NoError(t, g.AddDependency("x", "y"))
			return g
		}

		first, err := build().TopoSort()
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			again, err := build().TopoSort()
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})

	t.Run("self reference is a cycle", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		require.NoError(t, g.AddDependency("a", "a"))

		_, err := g.TopoSort()
		var cycleErr *CycleError
		require.ErrorAs(t, err, &cycleErr)
		assert.Equal(t, []string{"a"}, cycleErr.Cycle)
	})

	t.Run("direct cycle is detected", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")
		require.NoError(t, g.AddDependency("a", "b"))
		require.NoError(t, g.AddDependency("b", "a"))

		_, err := g.TopoSort()
		var cycleErr *CycleError
		require.ErrorAs(t, err, &cycleErr)
		assert.ElementsMatch(t, []string{"a", "b"}, cycleErr.Cycle)
	})

	t.Run("longer cycle reports every member", func(t *testing.T) {
		g := New()
		for _, id := range []string{"a", "b", "c", "d"} {
			g.AddNode(id)
		}
		require.NoError(t, g.AddDependency("a", "b"))
		require.NoError(t, g.AddDependency("b", "c"))
		require.NoError(t, g.AddDependency("c", "d"))
		require.NoError(t, g.AddDependency("d", "a"))

		_, err := g.TopoSort()
		var cycleErr *CycleError
		require.ErrorAs(t, err, &cycleErr)
		assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, cycleErr.Cycle)
		assert.ErrorContains(t, err, "cycle detected")
	})

	t.Run("cycle in a disjoint component is detected", func(t *testing.T) {
		g := New()
		for _, id := range []string{"a", "b", "x", "y", "z"} {
			g.AddNode(id)
		}
		require.NoError(t, g.AddDependency("a", "b"))

		require.NoError(t, g.AddDependency("x", "y"))
		require.NoError(t, g.AddDependency("y", "z"))
		require.NoError(t, g.AddDependency("z", "y"))

		_, err := g.TopoSort()
		var cycleErr *CycleError
		require.ErrorAs(t, err, &cycleErr)
		assert.ElementsMatch(t, []string{"y", "z"}, cycleErr.Cycle)
	})
}

// assertTopological checks that every node appears after all of its
// dependencies.
func assertTopological(t *testing.T, g *Graph, order []string) {
	t.Helper()
	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	for _, id := range order {
		deps, err := g.Dependencies(id)
		require.NoError(t, err)
		for _, dep := range deps {
			assert.Less(t, pos[dep], pos[id], "%s must come after %s", id, dep)
		}
	}
}
