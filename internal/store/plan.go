package store

import (
	"context"

	"github.com/papapumpkin/mealbook/internal/model"
)

// SetSlot stores a deep copy of item in the (date, slot) position,
// replacing whatever was there.
func (s *Store) SetSlot(ctx context.Context, date string, slot model.Slot, item model.PlanItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan.Set(model.PlanKey(date, slot), item.Clone())
	return s.persist(ctx, KeyMealPlan, s.plan)
}

// ClearSlot empties the (date, slot) position.
func (s *Store) ClearSlot(ctx context.Context, date string, slot model.Slot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan.Delete(model.PlanKey(date, slot))
	return s.persist(ctx, KeyMealPlan, s.plan)
}

// DaySlots returns the planned items for date keyed by slot. Only the three
// daily slots are looked up and empty slots are omitted.
func (s *Store) DaySlots(date string) map[model.Slot]model.PlanItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[model.Slot]model.PlanItem)
	for _, slot := range model.Slots() {
		item, ok := s.plan.Get(model.PlanKey(date, slot))
		if !ok || item.IsZero() {
			continue
		}
		out[slot] = item.Clone()
	}
	return out
}

// Plan returns a deep copy of the whole meal plan in insertion order.
func (s *Store) Plan() *model.MealPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan.Clone()
}

// PlanMeal snapshots the stored meal with id into (date, slot). It reports
// whether the meal existed.
func (s *Store) PlanMeal(ctx context.Context, date string, slot model.Slot, id int64) (bool, error) {
	m, ok := s.Meal(id)
	if !ok {
		return false, nil
	}
	return true, s.SetSlot(ctx, date, slot, model.MealItem(m))
}

// PlanRecipe snapshots the stored recipe with id into (date, slot). It
// reports whether the recipe existed.
func (s *Store) PlanRecipe(ctx context.Context, date string, slot model.Slot, id int64) (bool, error) {
	r, ok := s.Recipe(id)
	if !ok {
		return false, nil
	}
	return true, s.SetSlot(ctx, date, slot, model.RecipeItem(r))
}
