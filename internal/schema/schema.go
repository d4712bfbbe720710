package schema

import "github.com/hashicorp/hcl/v2"

// --- Site Data Structures ---

// Measure describes how much of something one package of a food contains,
// in a single unit of measurement.
type Measure struct {
	Amount hcl.Expression `hcl:"amount"`
	Unit   string         `hcl:"unit"`
}

// Nutrition represents a `nutrition` block. Every field is an expression so
// site data can use arithmetic (e.g. `calories = 3 * 70`).
type Nutrition struct {
	Calories      hcl.Expression `hcl:"calories,optional"`
	Fat           hcl.Expression `hcl:"fat,optional"`
	Carbohydrates hcl.Expression `hcl:"carbohydrates,optional"`
	Protein       hcl.Expression `hcl:"protein,optional"`
}

// Food represents a `food` block: one purchasable grocery item with its
// per-package cost, nutrition, and package measures.
type Food struct {
	ID        string         `hcl:"id,label"`
	Name      string         `hcl:"name,optional"`
	Cost      hcl.Expression `hcl:"cost,optional"`
	Discrete  hcl.Expression `hcl:"discrete,optional"`
	Volume    *Measure       `hcl:"volume,block"`
	Weight    *Measure       `hcl:"weight,block"`
	Other     *Measure       `hcl:"other,block"`
	Nutrition *Nutrition     `hcl:"nutrition,block"`
}

// Yield represents a `yield` block inside a recipe.
type Yield struct {
	Number          hcl.Expression `hcl:"number"`
	Unit            string         `hcl:"unit,optional"`
	ShowYield       *bool          `hcl:"show_yield,optional"`
	ShowServingSize *bool          `hcl:"show_serving_size,optional"`
}

// Ingredient represents an `ingredient` block. The label is the display
// item text; exactly one of `food` or `recipe` names the backing reference.
// Quantity is an expression so fractional amounts read naturally
// (`quantity = 1/2`).
type Ingredient struct {
	Item      string         `hcl:"item,label"`
	Quantity  hcl.Expression `hcl:"quantity"`
	Unit      string         `hcl:"unit,optional"`
	Food      string         `hcl:"food,optional"`
	Recipe    string         `hcl:"recipe,optional"`
	Cost      hcl.Expression `hcl:"cost,optional"`
	Nutrition *Nutrition     `hcl:"nutrition,block"`
}

// Recipe represents a `recipe` block from a site data file.
type Recipe struct {
	Slug        string         `hcl:"slug,label"`
	Title       string         `hcl:"title"`
	Scales      hcl.Expression `hcl:"scales,optional"`
	Cost        hcl.Expression `hcl:"cost,optional"`
	Yields      []*Yield       `hcl:"yield,block"`
	Ingredients []*Ingredient  `hcl:"ingredient,block"`
	Nutrition   *Nutrition     `hcl:"nutrition,block"`
}

// SiteRoot represents the top-level structure of a site data file. Foods
// and recipes may be mixed freely across any number of files.
type SiteRoot struct {
	Foods   []*Food   `hcl:"food,block"`
	Recipes []*Recipe `hcl:"recipe,block"`
	Remain  hcl.Body  `hcl:",remain"`
}
