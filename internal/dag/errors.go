package dag

import (
	"fmt"
	"strings"
)

// CycleError reports that the recipe graph contains a reference cycle. The
// Cycle field lists every recipe on the cycle exactly once, in reference
// order.
type CycleError struct {
	Cycle []string
}

func (e *CycleError) Error() string {
	if len(e.Cycle) == 0 {
		return "cycle detected in recipe graph"
	}
	path := append(append([]string{}, e.Cycle...), e.Cycle[0])
	return fmt.Sprintf("cycle detected in recipe graph: %s", strings.Join(path, " -> "))
}

// UnresolvedRefError reports an ingredient whose food or recipe reference
// names an identifier absent from the loaded site data.
type UnresolvedRefError struct {
	// Recipe is the slug of the recipe that owns the ingredient.
	Recipe string
	// Ref is the missing identifier.
	Ref string
}

func (e *UnresolvedRefError) Error() string {
	return fmt.Sprintf("recipe %q references %q, which does not exist", e.Recipe, e.Ref)
}
