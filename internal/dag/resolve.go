package dag

import (
	"context"
	"sort"

	"github.com/vk/plategen/internal/config"
	"github.com/vk/plategen/internal/ctxlog"
)

// Resolve validates every ingredient reference in the site and computes the
// evaluation order of its recipes: each recipe appears after every recipe
// it uses as an ingredient. It is a pure function of the site data.
//
// Recipes are seeded in sorted slug order and their dependencies followed
// in ingredient declaration order, so the result is deterministic for
// identical input. Resolution fails with UnresolvedRefError for a dangling
// food or recipe reference and with CycleError when a recipe transitively
// includes itself.
func Resolve(ctx context.Context, site *config.Site) ([]string, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Resolve: starting recipe graph resolution.", "recipes", len(site.Recipes))

	slugs := make([]string, 0, len(site.Recipes))
	for slug := range site.Recipes {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	// First pass: every reference must point at loaded data.
	for _, slug := range slugs {
		for _, ing := range site.Recipes[slug].Ingredients {
			switch ing.Kind {
			case config.FoodRef:
				if _, ok := site.Foods[ing.Ref]; !ok {
					return nil, &UnresolvedRefError{Recipe: slug, Ref: ing.Ref}
				}
			case config.RecipeRef:
				if _, ok := site.Recipes[ing.Ref]; !ok {
					return nil, &UnresolvedRefError{Recipe: slug, Ref: ing.Ref}
				}
			}
		}
	}
	logger.Debug("Resolve: reference validation passed.")

	// Second pass: build the dependency graph and order it.
	graph := New()
	for _, slug := range slugs {
		graph.AddNode(slug)
	}
	for _, slug := range slugs {
		for _, ref := range site.Recipes[slug].RecipeRefs() {
			if err := graph.AddDependency(slug, ref); err != nil {
				return nil, err
			}
		}
	}

	order, err := graph.TopoSort()
	if err != nil {
		return nil, err
	}
	logger.Debug("Resolve: recipe graph resolution successful.", "order_len", len(order))
	return order, nil
}
