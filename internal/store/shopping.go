package store

import (
	"context"

	"github.com/papapumpkin/mealbook/internal/model"
)

// ShoppingList returns a copy of the stored shopping list.
func (s *Store) ShoppingList() []model.ShoppingItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.ShoppingItem{}, s.shopping...)
}

// ReplaceShoppingList stores items as the whole shopping list.
func (s *Store) ReplaceShoppingList(ctx context.Context, items []model.ShoppingItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shopping = append([]model.ShoppingItem{}, items...)
	return s.persist(ctx, KeyShoppingList, s.shopping)
}

// ToggleShoppingItem flips the checked mark of the item at index. An index
// out of range is a no-op.
func (s *Store) ToggleShoppingItem(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.shopping) {
		return nil
	}
	s.shopping[index].Checked = !s.shopping[index].Checked
	return s.persist(ctx, KeyShoppingList, s.shopping)
}

// ClearShoppingList empties the shopping list.
func (s *Store) ClearShoppingList(ctx context.Context) error {
	return s.ReplaceShoppingList(ctx, nil)
}
