package store

import (
	"context"
	"time"

	"github.com/papapumpkin/mealbook/internal/model"
)

// copySuffix is appended to the name of a duplicated meal or recipe.
const copySuffix = " (Copy)"

// MealPatch is a shallow-merge update for a meal. Non-nil fields overwrite
// the stored value; nil fields leave it unchanged.
type MealPatch struct {
	Name        *string
	Category    *string
	Rating      *int
	Ingredients *[]model.MealIngredient
	Photo       *string
	Tags        *[]string
	Nutrition   *model.Nutrition
	Notes       *string
	Favorite    *bool
	LastMade    *string
	TimesMade   *int
}

func (p MealPatch) apply(m *model.Meal) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Category != nil {
		m.Category = *p.Category
	}
	if p.Rating != nil {
		m.Rating = *p.Rating
	}
	if p.Ingredients != nil {
		m.Ingredients = model.StripBlankMealIngredients(*p.Ingredients)
	}
	if p.Photo != nil {
		m.Photo = *p.Photo
	}
	if p.Tags != nil {
		m.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.Nutrition != nil {
		m.Nutrition = p.Nutrition.Clone()
	}
	if p.Notes != nil {
		m.Notes = *p.Notes
	}
	if p.Favorite != nil {
		m.Favorite = *p.Favorite
	}
	if p.LastMade != nil {
		m.LastMade = *p.LastMade
	}
	if p.TimesMade != nil {
		m.TimesMade = *p.TimesMade
	}
}

// AddMeal stores m under a fresh id and returns the id. Blank ingredient
// lines are dropped; nothing else is validated.
func (s *Store) AddMeal(ctx context.Context, m model.Meal) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addMeal(ctx, m)
}

func (s *Store) addMeal(ctx context.Context, m model.Meal) (int64, error) {
	m = m.Clone()
	m.Ingredients = model.StripBlankMealIngredients(m.Ingredients)
	id := s.meals.add(m, s.now())
	return id, s.persist(ctx, KeyMeals, s.meals.items)
}

// UpdateMeal shallow-merges patch into the meal with id. An unknown id is a
// no-op.
func (s *Store) UpdateMeal(ctx context.Context, id int64, patch MealPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateMeal(ctx, id, patch.apply)
}

func (s *Store) updateMeal(ctx context.Context, id int64, fn func(*model.Meal)) error {
	i := s.meals.index(id)
	if i < 0 {
		return nil
	}
	fn(&s.meals.items[i])
	return s.persist(ctx, KeyMeals, s.meals.items)
}

// DeleteMeal removes the meal with id. Plan snapshots of it are kept.
func (s *Store) DeleteMeal(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.meals.remove(id) {
		return nil
	}
	return s.persist(ctx, KeyMeals, s.meals.items)
}

// Meal returns a copy of the meal with id.
func (s *Store) Meal(id int64) (model.Meal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meals.get(id)
}

// Meals returns copies of all meals in insertion order.
func (s *Store) Meals() []model.Meal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meals.all()
}

// MarkMealMade records that the meal was cooked at the given time: LastMade
// becomes at and TimesMade is incremented.
func (s *Store) MarkMealMade(ctx context.Context, id int64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateMeal(ctx, id, func(m *model.Meal) {
		m.LastMade = model.FormatTimestamp(at)
		m.TimesMade++
	})
}

// ToggleMealFavorite flips the meal's favorite flag.
func (s *Store) ToggleMealFavorite(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateMeal(ctx, id, func(m *model.Meal) {
		m.Favorite = !m.Favorite
	})
}

// DuplicateMeal adds a copy of the meal with id, named with a " (Copy)"
// suffix. It reports the new id and whether the source meal existed.
func (s *Store) DuplicateMeal(ctx context.Context, id int64) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	src, ok := s.meals.get(id)
	if !ok {
		return 0, false, nil
	}
	src.Name += copySuffix
	newID, err := s.addMeal(ctx, src)
	return newID, true, err
}
