// Package dag resolves the recipe reference graph: recipes used as
// ingredients of other recipes form directed edges, and the builder needs a
// leaves-first evaluation order over them. The package validates every
// ingredient reference, detects reference cycles, and produces a
// deterministic topological ordering.
package dag
