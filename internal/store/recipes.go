package store

import (
	"context"

	"github.com/papapumpkin/mealbook/internal/model"
)

// RecipePatch is a shallow-merge update for a recipe. Non-nil fields
// overwrite the stored value.
type RecipePatch struct {
	Name         *string
	Servings     *int
	PrepTime     *int
	CookTime     *int
	Difficulty   *string
	Ingredients  *[]model.RecipeIngredient
	Instructions *string
	Photo        *string
	Tags         *[]string
	Nutrition    *model.Nutrition
	Favorite     *bool
}

func (p RecipePatch) apply(r *model.Recipe) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Servings != nil {
		r.Servings = *p.Servings
	}
	if p.PrepTime != nil {
		r.PrepTime = *p.PrepTime
	}
	if p.CookTime != nil {
		r.CookTime = *p.CookTime
	}
	if p.Difficulty != nil {
		r.Difficulty = *p.Difficulty
	}
	if p.Ingredients != nil {
		r.Ingredients = model.StripBlankRecipeIngredients(*p.Ingredients)
	}
	if p.Instructions != nil {
		r.Instructions = *p.Instructions
	}
	if p.Photo != nil {
		r.Photo = *p.Photo
	}
	if p.Tags != nil {
		r.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.Nutrition != nil {
		r.Nutrition = p.Nutrition.Clone()
	}
	if p.Favorite != nil {
		r.Favorite = *p.Favorite
	}
}

// AddRecipe stores r under a fresh id and returns the id.
func (s *Store) AddRecipe(ctx context.Context, r model.Recipe) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addRecipe(ctx, r)
}

func (s *Store) addRecipe(ctx context.Context, r model.Recipe) (int64, error) {
	r = r.Clone()
	r.Ingredients = model.StripBlankRecipeIngredients(r.Ingredients)
	id := s.recipes.add(r, s.now())
	return id, s.persist(ctx, KeyRecipes, s.recipes.items)
}

// UpdateRecipe shallow-merges patch into the recipe with id. An unknown id
// is a no-op.
func (s *Store) UpdateRecipe(ctx context.Context, id int64, patch RecipePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateRecipe(ctx, id, patch.apply)
}

func (s *Store) updateRecipe(ctx context.Context, id int64, fn func(*model.Recipe)) error {
	i := s.recipes.index(id)
	if i < 0 {
		return nil
	}
	fn(&s.recipes.items[i])
	return s.persist(ctx, KeyRecipes, s.recipes.items)
}

// DeleteRecipe removes the recipe with id.
func (s *Store) DeleteRecipe(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.recipes.remove(id) {
		return nil
	}
	return s.persist(ctx, KeyRecipes, s.recipes.items)
}

// Recipe returns a copy of the recipe with id.
func (s *Store) Recipe(id int64) (model.Recipe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recipes.get(id)
}

// Recipes returns copies of all recipes in insertion order.
func (s *Store) Recipes() []model.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recipes.all()
}

// ToggleRecipeFavorite flips the recipe's favorite flag.
func (s *Store) ToggleRecipeFavorite(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateRecipe(ctx, id, func(r *model.Recipe) {
		r.Favorite = !r.Favorite
	})
}

// DuplicateRecipe adds a copy of the recipe with id, named with a " (Copy)"
// suffix. It reports the new id and whether the source recipe existed.
func (s *Store) DuplicateRecipe(ctx context.Context, id int64) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	src, ok := s.recipes.get(id)
	if !ok {
		return 0, false, nil
	}
	src.Name += copySuffix
	newID, err := s.addRecipe(ctx, src)
	return newID, true, err
}
