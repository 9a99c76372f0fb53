// Package model defines the records mealbook stores: meals, recipes, the
// ingredient library, meal plan snapshots and shopping list items. The JSON
// tags are the persisted and exported shapes; every other package works on
// these types and model imports nothing internal.
package model

import (
	"slices"
	"strings"
)

// Meal categories offered by the CLI. Category is free text; these are the
// conventional values.
const (
	CategoryBreakfast = "breakfast"
	CategoryLunch     = "lunch"
	CategoryDinner    = "dinner"
	CategorySnack     = "snack"
	CategoryDessert   = "dessert"
)

// Recipe difficulties. An empty difficulty reads as DifficultyEasy.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// MaxRating is the highest star rating a meal can carry.
const MaxRating = 5

// Nutrition holds optional per-serving nutrition facts. A nil field means the
// value was never entered.
type Nutrition struct {
	Calories *float64 `json:"calories,omitempty" toml:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty" toml:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty" toml:"carbs,omitempty"`
	Fat      *float64 `json:"fat,omitempty" toml:"fat,omitempty"`
}

// IsZero reports whether no nutrition fact is set.
func (n Nutrition) IsZero() bool {
	return n.Calories == nil && n.Protein == nil && n.Carbs == nil && n.Fat == nil
}

// Clone returns a copy that shares no pointers with n.
func (n Nutrition) Clone() Nutrition {
	return Nutrition{
		Calories: cloneFloat(n.Calories),
		Protein:  cloneFloat(n.Protein),
		Carbs:    cloneFloat(n.Carbs),
		Fat:      cloneFloat(n.Fat),
	}
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

// Meal is a simple food entry with a rating, category and notes but no
// structured steps.
type Meal struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Category    string           `json:"category"`
	Rating      int              `json:"rating"`
	Ingredients []MealIngredient `json:"ingredients"`
	Photo       string           `json:"photo,omitempty"`
	Tags        []string         `json:"tags"`
	Nutrition   Nutrition        `json:"nutrition"`
	Notes       string           `json:"notes"`
	Favorite    bool             `json:"favorite"`
	LastMade    string           `json:"lastMade,omitempty"`
	TimesMade   int              `json:"timesMade,omitempty"`
}

// Clone returns a deep copy of m.
func (m Meal) Clone() Meal {
	c := m
	c.Ingredients = slices.Clone(m.Ingredients)
	c.Tags = slices.Clone(m.Tags)
	c.Nutrition = m.Nutrition.Clone()
	return c
}

// IngredientNames returns the ingredient names in order, including blanks.
func (m Meal) IngredientNames() []string {
	names := make([]string, 0, len(m.Ingredients))
	for _, ing := range m.Ingredients {
		names = append(names, ing.Name)
	}
	return names
}

// RecipeIngredient is one ingredient line of a recipe. Quantity is free-form
// text such as "2 cups" or "1/2 tsp".
type RecipeIngredient struct {
	Name     string `json:"name" toml:"name"`
	Quantity string `json:"quantity" toml:"quantity"`
}

// Recipe is a structured, scalable set of ingredients plus instructions and
// timing.
type Recipe struct {
	ID           int64              `json:"id"`
	Name         string             `json:"name"`
	Servings     int                `json:"servings"`
	PrepTime     int                `json:"prepTime"`
	CookTime     int                `json:"cookTime"`
	Difficulty   string             `json:"difficulty"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	Instructions string             `json:"instructions"`
	Photo        string             `json:"photo,omitempty"`
	Tags         []string           `json:"tags"`
	Nutrition    Nutrition          `json:"nutrition"`
	Favorite     bool               `json:"favorite"`
}

// Clone returns a deep copy of r.
func (r Recipe) Clone() Recipe {
	c := r
	c.Ingredients = slices.Clone(r.Ingredients)
	c.Tags = slices.Clone(r.Tags)
	c.Nutrition = r.Nutrition.Clone()
	return c
}

// EffectiveDifficulty returns the difficulty, defaulting to easy.
func (r Recipe) EffectiveDifficulty() string {
	if r.Difficulty == "" {
		return DifficultyEasy
	}
	return r.Difficulty
}

// TotalTime is prep plus cook time in minutes.
func (r Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// IngredientNames returns the ingredient names in order, including blanks.
func (r Recipe) IngredientNames() []string {
	names := make([]string, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		names = append(names, ing.Name)
	}
	return names
}

// Ingredient is an entry in the ingredient library.
type Ingredient struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// ShoppingItem is one deduplicated line of the shopping list. Count is the
// number of plan occurrences the name was aggregated from.
type ShoppingItem struct {
	Name    string `json:"name"`
	Count   int    `json:"count"`
	Checked bool   `json:"checked"`
}

// Blank reports whether name is empty or whitespace only.
func Blank(name string) bool {
	return strings.TrimSpace(name) == ""
}

// ParseTags splits comma-separated tag input, trimming each tag and dropping
// empty ones.
func ParseTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
