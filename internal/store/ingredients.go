package store

import (
	"context"
	"strings"

	"github.com/papapumpkin/mealbook/internal/model"
)

// IngredientPatch is a shallow-merge update for a library ingredient.
type IngredientPatch struct {
	Name     *string
	Category *string
}

// AddIngredient stores ing under a fresh id and returns the id.
func (s *Store) AddIngredient(ctx context.Context, ing model.Ingredient) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.ingredients.add(ing, s.now())
	return id, s.persist(ctx, KeyIngredients, s.ingredients.items)
}

// UpdateIngredient shallow-merges patch into the ingredient with id.
func (s *Store) UpdateIngredient(ctx context.Context, id int64, patch IngredientPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.ingredients.index(id)
	if i < 0 {
		return nil
	}
	ing := &s.ingredients.items[i]
	if patch.Name != nil {
		ing.Name = *patch.Name
	}
	if patch.Category != nil {
		ing.Category = *patch.Category
	}
	return s.persist(ctx, KeyIngredients, s.ingredients.items)
}

// DeleteIngredient removes the ingredient with id.
func (s *Store) DeleteIngredient(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ingredients.remove(id) {
		return nil
	}
	return s.persist(ctx, KeyIngredients, s.ingredients.items)
}

// Ingredient returns the library ingredient with id.
func (s *Store) Ingredient(id int64) (model.Ingredient, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ingredients.get(id)
}

// Ingredients returns the ingredient library in insertion order.
func (s *Store) Ingredients() []model.Ingredient {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ingredients.all()
}

// SearchIngredients returns library entries whose name contains term,
// ignoring case. An empty term returns the whole library.
func (s *Store) SearchIngredients(term string) []model.Ingredient {
	term = strings.ToLower(term)
	var out []model.Ingredient
	for _, ing := range s.Ingredients() {
		if strings.Contains(strings.ToLower(ing.Name), term) {
			out = append(out, ing)
		}
	}
	return out
}
