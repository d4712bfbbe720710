package dag

import "fmt"

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*node),
	}
}

// AddNode adds a new node with the given ID to the graph. If a node with
// the same ID already exists, the function does nothing.
func (g *Graph) AddNode(id string) {
	if _, ok := g.nodes[id]; ok {
		return
	}

	g.nodes[id] = &node{
		id:     id,
		depSet: make(map[string]struct{}),
	}
	g.order = append(g.order, id)
}

// AddDependency records that node `id` depends on node `depID`. An error is
// returned if either node does not exist. Repeated dependencies are
// recorded once; a self-dependency is accepted and later reported as a
// cycle by TopoSort.
func (g *Graph) AddDependency(id, depID string) error {
	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("node not found: %s", id)
	}
	if _, ok := g.nodes[depID]; !ok {
		return fmt.Errorf("dependency node not found: %s", depID)
	}

	if _, ok := n.depSet[depID]; ok {
		return nil
	}
	n.deps = append(n.deps, depID)
	n.depSet[depID] = struct{}{}
	return nil
}

// Dependencies returns the IDs the given node depends on, in declaration
// order.
func (g *Graph) Dependencies(id string) ([]string, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}
	out := make([]string, len(n.deps))
	copy(out, n.deps)
	return out, nil
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// TopoSort returns every node ID ordered so each node appears after all of
// its dependencies (leaves first). It uses classic depth-first search with
// three node states:
//
//	permanent: fully visited, known not to be on a cycle.
//	temporary: on the recursion stack of the current traversal.
//	unvisited: everything else.
//
// Hitting a temporary node again means a back-edge, and the recursion stack
// from that node onward is exactly the cycle; it is reported in full via
// CycleError. Traversal follows insertion order for roots and declaration
// order for dependencies, so the result is deterministic.
func (g *Graph) TopoSort() ([]string, error) {
	permanent := make(map[string]bool)
	temporary := make(map[string]bool)
	var stack []string
	sorted := make([]string, 0, len(g.nodes))

	var visit func(id string) error
	visit = func(id string) error {
		if permanent[id] {
			return nil
		}
		if temporary[id] {
			return &CycleError{Cycle: cycleFrom(stack, id)}
		}

		temporary[id] = true
		stack = append(stack, id)

		for _, dep := range g.nodes[id].deps {
			if err := visit(dep); err != nil {
				return err
			}
		}

		stack = stack[:len(stack)-1]
		delete(temporary, id)
		permanent[id] = true
		sorted = append(sorted, id)
		return nil
	}

	for _, id := range g.order {
		if !permanent[id] {
			if err := visit(id); err != nil {
				return nil, err
			}
		}
	}

	return sorted, nil
}

// cycleFrom slices the recursion stack from the first occurrence of id,
// yielding each member of the detected cycle exactly once, in path order.
func cycleFrom(stack []string, id string) []string {
	for i, s := range stack {
		if s == id {
			cycle := make([]string, len(stack)-i)
			copy(cycle, stack[i:])
			return cycle
		}
	}
	// id not on the stack means visit bookkeeping is broken.
	panic("dag: cycle member missing from traversal stack")
}
