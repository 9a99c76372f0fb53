package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/papapumpkin/mealbook/internal/model"
)

// Snapshot is the export document: every collection plus the time it was
// taken. The dark-mode preference is not part of it.
type Snapshot struct {
	Meals        []model.Meal         `json:"meals"`
	Recipes      []model.Recipe       `json:"recipes"`
	Ingredients  []model.Ingredient   `json:"ingredients"`
	MealPlan     *model.MealPlan      `json:"mealPlan"`
	ShoppingList []model.ShoppingItem `json:"shoppingList"`
	ExportDate   string               `json:"exportDate,omitempty"`
}

// Export returns the full snapshot as two-space indented JSON.
func (s *Store) Export() ([]byte, error) {
	s.mu.Lock()
	snap := Snapshot{
		Meals:        s.meals.all(),
		Recipes:      s.recipes.all(),
		Ingredients:  s.ingredients.all(),
		MealPlan:     s.plan.Clone(),
		ShoppingList: append([]model.ShoppingItem{}, s.shopping...),
		ExportDate:   model.FormatTimestamp(s.now()),
	}
	s.mu.Unlock()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("store: export: %w", err)
	}
	return data, nil
}

// ParseSnapshot decodes an export document. Anything that is not a JSON
// object of the export shape yields an error wrapping ErrInvalidSnapshot.
func ParseSnapshot(data []byte) (Snapshot, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Snapshot{}, fmt.Errorf("store: import: %w: expected a JSON object", ErrInvalidSnapshot)
	}
	var snap Snapshot
	if err := json.Unmarshal(trimmed, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("store: import: %w: %v", ErrInvalidSnapshot, err)
	}
	return snap, nil
}

// Import replaces every collection with the contents of an export
// document and persists each one. A malformed document leaves the store and
// its backing untouched. Absent or null fields reset to empty.
func (s *Store) Import(ctx context.Context, data []byte) error {
	snap, err := ParseSnapshot(data)
	if err != nil {
		s.log.Warn().Err(err).Int("bytes", len(data)).Msg("import rejected")
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceAll(snap.Meals, snap.Recipes, snap.Ingredients, snap.MealPlan, snap.ShoppingList)

	errs := []error{
		s.persist(ctx, KeyMeals, s.meals.items),
		s.persist(ctx, KeyRecipes, s.recipes.items),
		s.persist(ctx, KeyIngredients, s.ingredients.items),
		s.persist(ctx, KeyMealPlan, s.plan),
		s.persist(ctx, KeyShoppingList, s.shopping),
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	s.log.Info().
		Int("meals", len(s.meals.items)).
		Int("recipes", len(s.recipes.items)).
		Int("plan_slots", s.plan.Len()).
		Str("export_date", snap.ExportDate).
		Msg("snapshot imported")
	return nil
}
