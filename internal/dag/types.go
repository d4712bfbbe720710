package dag

// Graph is a collection of nodes and their dependencies, representing the
// recipe reference graph. Nodes and edges keep insertion order so identical
// input always produces identical traversals.
type Graph struct {
	// nodes stores all nodes in the graph, keyed by their unique ID.
	nodes map[string]*node
	// order records node insertion order for deterministic iteration.
	order []string
}

// node represents a single vertex in the graph. It is un-exported to
// enforce interaction with the graph via the public API (using string IDs),
// not by direct struct manipulation.
type node struct {
	// id is the unique identifier for the node.
	id string
	// deps holds the IDs this node depends on, in declaration order.
	deps []string
	// depSet mirrors deps for duplicate suppression.
	depSet map[string]struct{}
}
