// Package shopping derives the shopping list from the meal plan. Every
// ingredient name across every planned slot becomes one line, counted by
// how many times it appears.
package shopping

import (
	"context"
	"fmt"

	"github.com/papapumpkin/mealbook/internal/model"
)

// Repository is the slice of the store regeneration needs.
type Repository interface {
	Plan() *model.MealPlan
	ReplaceShoppingList(ctx context.Context, items []model.ShoppingItem) error
}

// Aggregate walks the plan in order and counts ingredient names, keyed by
// their exact text. Blank names are skipped. Lines come out in the order
// each name was first seen, all unchecked.
func Aggregate(plan *model.MealPlan) []model.ShoppingItem {
	items := []model.ShoppingItem{}
	if plan == nil {
		return items
	}
	index := make(map[string]int)
	for _, entry := range plan.Entries() {
		for _, name := range entry.Item.IngredientNames() {
			if model.Blank(name) {
				continue
			}
			if i, ok := index[name]; ok {
				items[i].Count++
				continue
			}
			index[name] = len(items)
			items = append(items, model.ShoppingItem{Name: name, Count: 1})
		}
	}
	return items
}

// Regenerate rebuilds the shopping list from repo's plan and stores it,
// discarding the previous list and its checked marks.
func Regenerate(ctx context.Context, repo Repository) ([]model.ShoppingItem, error) {
	items := Aggregate(repo.Plan())
	if err := repo.ReplaceShoppingList(ctx, items); err != nil {
		return nil, fmt.Errorf("shopping: regenerate: %w", err)
	}
	return items, nil
}
