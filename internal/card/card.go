// Package card reads and writes recipe cards: one recipe per TOML file, in a
// layout meant to be edited by hand. A directory of cards can be watched and
// synced into the store as files change.
package card

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/mealbook/internal/model"
)

// Ext is the file extension of a recipe card.
const Ext = ".toml"

// ErrMissingName is returned when a card has no recipe name.
var ErrMissingName = errors.New("recipe card has no name")

// Card is the on-disk shape of a recipe.
type Card struct {
	Name         string                   `toml:"name"`
	Servings     int                      `toml:"servings"`
	PrepTime     int                      `toml:"prep_time,omitempty"`
	CookTime     int                      `toml:"cook_time,omitempty"`
	Difficulty   string                   `toml:"difficulty,omitempty"`
	Tags         []string                 `toml:"tags,omitempty"`
	Favorite     bool                     `toml:"favorite,omitempty"`
	Instructions string                   `toml:"instructions,multiline,omitempty"`
	Nutrition    *model.Nutrition         `toml:"nutrition,omitempty"`
	Ingredients  []model.RecipeIngredient `toml:"ingredients"`
}

// FromRecipe builds the card for r. Ids and photos stay in the store.
func FromRecipe(r model.Recipe) Card {
	c := Card{
		Name:         r.Name,
		Servings:     r.Servings,
		PrepTime:     r.PrepTime,
		CookTime:     r.CookTime,
		Difficulty:   r.Difficulty,
		Tags:         append([]string(nil), r.Tags...),
		Favorite:     r.Favorite,
		Instructions: r.Instructions,
		Ingredients:  append([]model.RecipeIngredient(nil), r.Ingredients...),
	}
	if !r.Nutrition.IsZero() {
		n := r.Clone().Nutrition
		c.Nutrition = &n
	}
	return c
}

// Recipe converts the card to a recipe without an id.
func (c Card) Recipe() model.Recipe {
	r := model.Recipe{
		Name:         c.Name,
		Servings:     c.Servings,
		PrepTime:     c.PrepTime,
		CookTime:     c.CookTime,
		Difficulty:   c.Difficulty,
		Ingredients:  model.StripBlankRecipeIngredients(c.Ingredients),
		Instructions: c.Instructions,
		Tags:         append([]string(nil), c.Tags...),
		Favorite:     c.Favorite,
	}
	if c.Nutrition != nil {
		r.Nutrition = *c.Nutrition
	}
	return r.Clone()
}

// Parse decodes a card. A card without servings serves one.
func Parse(data []byte) (Card, error) {
	var c Card
	if err := toml.Unmarshal(data, &c); err != nil {
		return Card{}, fmt.Errorf("card: parse: %w", err)
	}
	if model.Blank(c.Name) {
		return Card{}, fmt.Errorf("card: parse: %w", ErrMissingName)
	}
	if c.Servings <= 0 {
		c.Servings = 1
	}
	return c, nil
}

// Load reads and parses the card at path.
func Load(path string) (Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Card{}, fmt.Errorf("card: read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return Card{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Save writes c to path, creating parent directories as needed.
func Save(path string, c Card) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("card: create directory %s: %w", dir, err)
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("card: encode %s: %w", c.Name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("card: write %s: %w", path, err)
	}
	return nil
}

// FileName turns a recipe name into a card file name: lower case, runs of
// anything but letters and digits collapsed to a dash.
func FileName(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		slug = "recipe"
	}
	return slug + Ext
}

// IsCard reports whether path names a recipe card file. Editor backups and
// hidden files are skipped.
func IsCard(path string) bool {
	base := filepath.Base(path)
	return strings.HasSuffix(base, Ext) && !strings.HasPrefix(base, ".")
}
