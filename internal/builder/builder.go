package builder

import (
	"context"

	"github.com/vk/plategen/internal/config"
	"github.com/vk/plategen/internal/ctxlog"
	"github.com/vk/plategen/internal/dag"
)

// Options configures a site build.
type Options struct {
	// Policy converts recipe-backed ingredient amounts into child batches.
	// Nil selects YieldBatchPolicy.
	Policy BatchPolicy
	// Workers above one computes independent recipes concurrently,
	// respecting topological order as the barrier between graph depths.
	Workers int
}

// Build computes the multi-scale model of every recipe in the site. It
// resolves the recipe graph once, walks recipes leaves-first so every
// child's base-scale profile is cached before any recipe that uses it, and
// for each recipe computes one profile per declared scale. The first error
// from any phase aborts the whole build; no partial result is returned.
func Build(ctx context.Context, site *config.Site, opts Options) (*Site, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: starting site computation.", "recipes", len(site.Recipes))

	if opts.Policy == nil {
		opts.Policy = YieldBatchPolicy{}
	}

	order, err := dag.Resolve(ctx, site)
	if err != nil {
		return nil, err
	}

	for _, slug := range order {
		if err := validateScales(site.Recipes[slug]); err != nil {
			return nil, err
		}
	}
	logger.Debug("Build: scale validation passed.")

	var models map[string]*Model
	if opts.Workers > 1 {
		models, err = buildConcurrent(ctx, site, order, opts)
	} else {
		models, err = buildSequential(ctx, site, order, opts)
	}
	if err != nil {
		return nil, err
	}

	result := &Site{Order: order, Models: models}
	attachUsedIn(site, result)
	logger.Debug("Build: site computation successful.", "models", len(models))
	return result, nil
}

// buildSequential walks the topological order with a single worker,
// threading the base-profile cache through each step.
func buildSequential(ctx context.Context, site *config.Site, order []string, opts Options) (map[string]*Model, error) {
	models := make(map[string]*Model, len(order))
	base := make(map[string]*Profile, len(order))

	for _, slug := range order {
		model, err := buildModel(ctx, site.Recipes[slug], site, base, opts.Policy)
		if err != nil {
			return nil, err
		}
		models[slug] = model
		base[slug] = model.Base()
	}
	return models, nil
}

// buildModel computes every declared scale of one recipe. The base map
// must already contain the base-scale profile of every recipe this one
// references; linked rows re-scale those cached profiles instead of
// re-resolving the child's own graph.
func buildModel(ctx context.Context, r *config.Recipe, site *config.Site, base map[string]*Profile, policy BatchPolicy) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: computing recipe model.", "slug", r.Slug)

	agg := &aggregator{
		foods:   site.Foods,
		recipes: site.Recipes,
		base:    base,
		policy:  policy,
	}

	model := &Model{Slug: r.Slug, Title: r.Title}
	for _, m := range r.Multipliers() {
		profile, err := agg.aggregate(r, m, scaleRows(r, m))
		if err != nil {
			return nil, err
		}
		model.Scales = append(model.Scales, profile)
	}
	return model, nil
}

// ProfileAt computes a single profile of one recipe at an arbitrary target
// serving count, outside its declared scales. The base map must hold the
// base-scale profiles of every recipe it references, as during a site
// build.
func ProfileAt(ctx context.Context, r *config.Recipe, targetServings float64, site *config.Site, base map[string]*Profile, policy BatchPolicy) (*Profile, error) {
	if policy == nil {
		policy = YieldBatchPolicy{}
	}
	factor, err := FactorFor(r, targetServings)
	if err != nil {
		return nil, err
	}
	agg := &aggregator{foods: site.Foods, recipes: site.Recipes, base: base, policy: policy}
	return agg.aggregate(r, factor, scaleRows(r, factor))
}

// attachUsedIn records on each child model which recipes consume it,
// walking parents in topological order and deduplicating repeated uses.
func attachUsedIn(site *config.Site, result *Site) {
	seen := make(map[string]map[string]bool)

	for _, parent := range result.Order {
		for _, ref := range site.Recipes[parent].RecipeRefs() {
			if seen[ref] == nil {
				seen[ref] = make(map[string]bool)
			}
			if seen[ref][parent] {
				continue
			}
			seen[ref][parent] = true
			child := result.Models[ref]
			child.UsedIn = append(child.UsedIn, UsedInRef{
				Slug:  parent,
				Title: site.Recipes[parent].Title,
			})
		}
	}
}
