// Package nutrition defines the per-serving nutrient facts tracked by the
// site and the arithmetic the builder performs on them.
package nutrition

import "math"

// Facts holds the tracked nutrients for a food, an ingredient contribution,
// or a whole recipe scale. Calories are kcal; the rest are grams.
type Facts struct {
	Calories      float64 `json:"calories"`
	Fat           float64 `json:"fat"`
	Carbohydrates float64 `json:"carbohydrates"`
	Protein       float64 `json:"protein"`
}

// Add returns the nutrient-wise sum of f and other.
func (f Facts) Add(other Facts) Facts {
	return Facts{
		Calories:      f.Calories + other.Calories,
		Fat:           f.Fat + other.Fat,
		Carbohydrates: f.Carbohydrates + other.Carbohydrates,
		Protein:       f.Protein + other.Protein,
	}
}

// Scale returns f with every nutrient multiplied by factor.
func (f Facts) Scale(factor float64) Facts {
	return Facts{
		Calories:      f.Calories * factor,
		Fat:           f.Fat * factor,
		Carbohydrates: f.Carbohydrates * factor,
		Protein:       f.Protein * factor,
	}
}

// Rounded returns f with every nutrient rounded to the nearest whole
// number, the form shown on rendered pages.
func (f Facts) Rounded() Facts {
	return Facts{
		Calories:      math.Round(f.Calories),
		Fat:           math.Round(f.Fat),
		Carbohydrates: math.Round(f.Carbohydrates),
		Protein:       math.Round(f.Protein),
	}
}

// IsZero reports whether every nutrient is zero.
func (f Facts) IsZero() bool {
	return f.Calories == 0 && f.Fat == 0 && f.Carbohydrates == 0 && f.Protein == 0
}
