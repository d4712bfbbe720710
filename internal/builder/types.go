package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vk/plategen/internal/config"
	"github.com/vk/plategen/internal/nutrition"
	"github.com/vk/plategen/internal/units"
)

// Row is one scaled ingredient line of a computed profile: the scaled
// amount plus the cost and nutrition it contributes at that scale.
type Row struct {
	Item      string          `json:"item"`
	Quantity  float64         `json:"quantity"`
	Unit      string          `json:"unit,omitempty"`
	Kind      config.RefKind  `json:"-"`
	Ref       string          `json:"ref"`
	Cost      float64         `json:"cost"`
	Nutrition nutrition.Facts `json:"nutrition"`

	// Batches is set on recipe-backed rows: how many base-scale batches of
	// the child recipe this row consumes. The renderer links such rows to
	// the child's own page via Ref.
	Batches float64 `json:"batches,omitempty"`
}

// IsRecipe reports whether the row is backed by another recipe.
func (r Row) IsRecipe() bool {
	return r.Kind == config.RecipeRef
}

// String renders the row the way an ingredient list displays it:
// amount, unit, item.
func (r Row) String() string {
	parts := make([]string, 0, 3)
	if r.Quantity != 0 {
		parts = append(parts, strconv.FormatFloat(r.Quantity, 'f', -1, 64))
	}
	if r.Unit != "" {
		parts = append(parts, units.Numberize(r.Unit, r.Quantity))
	}
	if r.Item != "" {
		parts = append(parts, r.Item)
	}
	return strings.Join(parts, " ")
}

// Yield is a recipe yield scaled to one profile's multiplier, with the unit
// already adjusted to singular or plural.
type Yield struct {
	Number          float64 `json:"number"`
	Unit            string  `json:"unit"`
	ShowYield       bool    `json:"-"`
	ShowServingSize bool    `json:"-"`
}

// Profile is the computed result for one (recipe, scale) pair: scaled
// rows, scaled yields, and the aggregated cost and nutrition totals.
type Profile struct {
	Slug       string  `json:"slug"`
	Multiplier float64 `json:"multiplier"`

	Servings    float64 `json:"servings,omitempty"`
	HasServings bool    `json:"-"`

	Yields []Yield `json:"yields,omitempty"`
	Rows   []Row   `json:"rows"`

	Cost           float64         `json:"cost"`
	CostPerServing float64         `json:"cost_per_serving"`
	Nutrition      nutrition.Facts `json:"nutrition"`
	PerServing     nutrition.Facts `json:"nutrition_per_serving"`
}

// Label returns the scale's display label, e.g. "1x" or "2x".
func (p *Profile) Label() string {
	return strconv.FormatFloat(p.Multiplier, 'f', -1, 64) + "x"
}

// UsedInRef points from a child recipe back at a recipe that uses it as an
// ingredient.
type UsedInRef struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// Model is the finalized multi-scale computed model for one recipe,
// consumed by the rendering pipeline.
type Model struct {
	Slug   string      `json:"slug"`
	Title  string      `json:"title"`
	Scales []*Profile  `json:"scales"`
	UsedIn []UsedInRef `json:"used_in,omitempty"`
}

// Base returns the recipe's 1x profile, always the first scale.
func (m *Model) Base() *Profile {
	return m.Scales[0]
}

// At returns the profile for the given multiplier, or false when no such
// scale was generated.
func (m *Model) At(multiplier float64) (*Profile, bool) {
	for _, p := range m.Scales {
		if p.Multiplier == multiplier {
			return p, true
		}
	}
	return nil, false
}

// Site is the full build output: every recipe's computed model plus the
// deterministic topological ordering the renderer and search-index builder
// enumerate with.
type Site struct {
	Order  []string          `json:"order"`
	Models map[string]*Model `json:"models"`
}

// Model returns the computed model for a slug, or an error naming the
// missing recipe.
func (s *Site) Model(slug string) (*Model, error) {
	m, ok := s.Models[slug]
	if !ok {
		return nil, fmt.Errorf("no computed model for recipe %q", slug)
	}
	return m, nil
}
