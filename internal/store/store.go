// Package store is the mealbook repository. It owns the five collections
// (meals, recipes, ingredient library, meal plan, shopping list) plus the
// dark-mode preference, and it is the only writer of the kv backing.
//
// Every mutating call changes the in-memory collection and then overwrites
// the collection's backing key with its full JSON document before returning.
// Update and delete of an unknown id are silent no-ops; the only errors CRUD
// calls return are backing-store write failures.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/papapumpkin/mealbook/internal/kv"
	"github.com/papapumpkin/mealbook/internal/model"
)

// Backing keys, one JSON document each.
const (
	KeyMeals        = "meals"
	KeyRecipes      = "recipes"
	KeyIngredients  = "ingredients"
	KeyMealPlan     = "mealPlan"
	KeyShoppingList = "shoppingList"
	KeyDarkMode     = "darkMode"
)

// Sentinel errors.
var (
	// ErrInvalidSnapshot is returned by Import when the document is not a
	// JSON object of the export shape.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
	// ErrCorruptCollection is returned by Open when a stored collection is
	// not valid JSON for its shape.
	ErrCorruptCollection = errors.New("corrupt stored collection")
)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load, persist and import events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithClock replaces time.Now for id generation, mark-made timestamps and
// export dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Store is the in-process repository. It is safe for concurrent use; every
// call runs to completion, including its persist, under one lock.
type Store struct {
	mu      sync.Mutex
	backing kv.Backing
	log     zerolog.Logger
	now     func() time.Time

	meals       *collection[model.Meal]
	recipes     *collection[model.Recipe]
	ingredients *collection[model.Ingredient]
	plan        *model.MealPlan
	shopping    []model.ShoppingItem
	darkMode    bool
}

// Open loads every collection from backing. Keys that were never written
// load as empty collections.
func Open(ctx context.Context, backing kv.Backing, opts ...Option) (*Store, error) {
	s := &Store{
		backing:     backing,
		log:         zerolog.Nop(),
		now:         time.Now,
		meals:       newCollection(KeyMeals, func(m *model.Meal) *int64 { return &m.ID }, model.Meal.Clone),
		recipes:     newCollection(KeyRecipes, func(r *model.Recipe) *int64 { return &r.ID }, model.Recipe.Clone),
		ingredients: newCollection(KeyIngredients, func(i *model.Ingredient) *int64 { return &i.ID }, func(i model.Ingredient) model.Ingredient { return i }),
		plan:        model.NewMealPlan(),
		shopping:    []model.ShoppingItem{},
	}
	for _, opt := range opts {
		opt(s)
	}

	var meals []model.Meal
	if err := s.load(ctx, KeyMeals, &meals); err != nil {
		return nil, err
	}
	var recipes []model.Recipe
	if err := s.load(ctx, KeyRecipes, &recipes); err != nil {
		return nil, err
	}
	var ingredients []model.Ingredient
	if err := s.load(ctx, KeyIngredients, &ingredients); err != nil {
		return nil, err
	}
	var plan *model.MealPlan
	if err := s.load(ctx, KeyMealPlan, &plan); err != nil {
		return nil, err
	}
	var shopping []model.ShoppingItem
	if err := s.load(ctx, KeyShoppingList, &shopping); err != nil {
		return nil, err
	}
	dark, _, err := backing.Get(ctx, KeyDarkMode)
	if err != nil {
		return nil, fmt.Errorf("store: load %s: %w", KeyDarkMode, err)
	}

	s.replaceAll(meals, recipes, ingredients, plan, shopping)
	s.darkMode = dark == "true"

	s.log.Debug().
		Int("meals", len(meals)).
		Int("recipes", len(recipes)).
		Int("ingredients", len(ingredients)).
		Int("plan_slots", s.plan.Len()).
		Int("shopping_items", len(s.shopping)).
		Msg("store loaded")
	return s, nil
}

// load decodes the document stored under key into dst. A missing key leaves
// dst untouched.
func (s *Store) load(ctx context.Context, key string, dst any) error {
	raw, ok, err := s.backing.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("store: load %s: %w", key, err)
	}
	if !ok || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("store: load %s: %w: %v", key, ErrCorruptCollection, err)
	}
	return nil
}

// persist overwrites key with the JSON encoding of v.
func (s *Store) persist(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := s.backing.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("store: persist %s: %w", key, err)
	}
	s.log.Debug().Str("key", key).Int("bytes", len(data)).Msg("persisted")
	return nil
}

// replaceAll swaps in whole collections. Nil inputs become empty
// collections.
func (s *Store) replaceAll(meals []model.Meal, recipes []model.Recipe, ingredients []model.Ingredient, plan *model.MealPlan, shopping []model.ShoppingItem) {
	s.meals.replace(meals)
	s.recipes.replace(recipes)
	s.ingredients.replace(ingredients)
	if plan == nil {
		plan = model.NewMealPlan()
	}
	s.plan = plan
	if shopping == nil {
		shopping = []model.ShoppingItem{}
	}
	s.shopping = shopping
}
