// Package export serializes a computed site to JSON artifacts: one summary
// document for the whole site and one detailed document per recipe model.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vk/plategen/internal/builder"
	"github.com/vk/plategen/internal/ctxlog"
	"github.com/vk/plategen/internal/nutrition"
)

// Summary is the compact site-wide document: the deterministic recipe
// ordering plus per-scale totals for every recipe. Nutrition values are
// rounded for display the way recipe pages show them.
type Summary struct {
	Order   []string        `json:"order"`
	Recipes []RecipeSummary `json:"recipes"`
}

// RecipeSummary is one recipe's entry in the site summary.
type RecipeSummary struct {
	Slug   string         `json:"slug"`
	Title  string         `json:"title"`
	Scales []ScaleSummary `json:"scales"`
}

// ScaleSummary is the totals of one (recipe, scale) pair.
type ScaleSummary struct {
	Label          string          `json:"label"`
	Multiplier     float64         `json:"multiplier"`
	Servings       float64         `json:"servings,omitempty"`
	Cost           float64         `json:"cost"`
	CostPerServing float64         `json:"cost_per_serving"`
	Nutrition      nutrition.Facts `json:"nutrition"`
}

// Summarize reduces a computed site to its summary document, walking
// recipes in topological order.
func Summarize(site *builder.Site) *Summary {
	summary := &Summary{Order: site.Order}
	for _, slug := range site.Order {
		model := site.Models[slug]
		rs := RecipeSummary{Slug: model.Slug, Title: model.Title}
		for _, p := range model.Scales {
			rs.Scales = append(rs.Scales, ScaleSummary{
				Label:          p.Label(),
				Multiplier:     p.Multiplier,
				Servings:       p.Servings,
				Cost:           p.Cost,
				CostPerServing: p.CostPerServing,
				Nutrition:      p.Nutrition.Rounded(),
			})
		}
		summary.Recipes = append(summary.Recipes, rs)
	}
	return summary
}

// WriteSummary writes the site summary as indented JSON to w.
func WriteSummary(w io.Writer, site *builder.Site) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Summarize(site)); err != nil {
		return fmt.Errorf("failed to encode site summary: %w", err)
	}
	return nil
}

// WriteSite writes the full set of artifacts to dir: site.json with the
// summary, and <slug>.json with the complete model of every recipe.
func WriteSite(ctx context.Context, site *builder.Site, dir string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Export: writing site artifacts.", "dir", dir, "models", len(site.Models))

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := writeJSON(filepath.Join(dir, "site.json"), Summarize(site)); err != nil {
		return err
	}

	for _, slug := range site.Order {
		path := filepath.Join(dir, slug+".json")
		if err := writeJSON(path, site.Models[slug]); err != nil {
			return err
		}
		logger.Debug("Export: wrote recipe model.", "path", path)
	}
	return nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
