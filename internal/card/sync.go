package card

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/papapumpkin/mealbook/internal/model"
	"github.com/papapumpkin/mealbook/internal/store"
)

// Repository is the slice of the store that card syncing writes through.
type Repository interface {
	Recipes() []model.Recipe
	AddRecipe(ctx context.Context, r model.Recipe) (int64, error)
	UpdateRecipe(ctx context.Context, id int64, patch store.RecipePatch) error
}

// Upsert stores c as a recipe. A stored recipe with exactly the card's name
// is overwritten field by field, keeping its id and photo; otherwise a new
// recipe is added. It returns the recipe id and whether it was created.
func Upsert(ctx context.Context, repo Repository, c Card) (int64, bool, error) {
	r := c.Recipe()
	for _, existing := range repo.Recipes() {
		if existing.Name != r.Name {
			continue
		}
		patch := store.RecipePatch{
			Servings:     &r.Servings,
			PrepTime:     &r.PrepTime,
			CookTime:     &r.CookTime,
			Difficulty:   &r.Difficulty,
			Ingredients:  &r.Ingredients,
			Instructions: &r.Instructions,
			Tags:         &r.Tags,
			Nutrition:    &r.Nutrition,
			Favorite:     &r.Favorite,
		}
		if err := repo.UpdateRecipe(ctx, existing.ID, patch); err != nil {
			return 0, false, fmt.Errorf("card: update %q: %w", r.Name, err)
		}
		return existing.ID, false, nil
	}
	id, err := repo.AddRecipe(ctx, r)
	if err != nil {
		return 0, false, fmt.Errorf("card: add %q: %w", r.Name, err)
	}
	return id, true, nil
}

// ImportDir upserts every card in dir, in file name order. Cards that fail
// to parse are skipped and reported together in the returned error; the
// rest are still stored.
func ImportDir(ctx context.Context, repo Repository, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("card: read directory %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && IsCard(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)

	var (
		imported int
		errs     []error
	)
	for _, f := range files {
		c, err := Load(f)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, _, err := Upsert(ctx, repo, c); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, errors.Join(errs...)
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
