package types

// SeedResult reports a reseed run. A refused run has Success false and an
// ErrorMessage, and nothing was written.
type SeedResult struct {
	Success      bool           `json:"success"`
	ItemsSeeded  int            `json:"itemsSeeded"`
	Details      map[string]int `json:"details,omitempty"`
	ErrorMessage string         `json:"errorMessage,omitempty"`
}

// DatabaseStatus holds row counts per table.
type DatabaseStatus struct {
	UnitsOfMeasurement int64 `json:"unitsOfMeasurement"`
	Ingredients        int64 `json:"ingredients"`
	Tags               int64 `json:"tags"`
	Recipes            int64 `json:"recipes"`
	RecipeIngredients  int64 `json:"recipeIngredients"`
	RecipeTags         int64 `json:"recipeTags"`
	RecipeTimesMade    int64 `json:"recipeTimesMade"`
}
