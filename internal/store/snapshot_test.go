package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/mealbook/internal/model"
)

func seed(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()
	mealID, err := s.AddMeal(ctx, model.Meal{
		Name:        "Omelette",
		Category:    model.CategoryBreakfast,
		Rating:      4,
		Ingredients: []model.MealIngredient{model.PlainIngredient("eggs"), {Name: "chives", Required: model.Optional}},
		Tags:        []string{"quick"},
		Nutrition:   model.Nutrition{Calories: ptr(320.0)},
	})
	if err != nil {
		t.Fatal(err)
	}
	recipeID, err := s.AddRecipe(ctx, model.Recipe{
		Name:        "Bolognese",
		Servings:    4,
		PrepTime:    15,
		CookTime:    60,
		Difficulty:  model.DifficultyMedium,
		Ingredients: []model.RecipeIngredient{{Name: "beef", Quantity: "500 g"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddIngredient(ctx, model.Ingredient{Name: "eggs", Category: "dairy"}); err != nil {
		t.Fatal(err)
	}
	// Dinner first so the plan's insertion order differs from key order.
	if _, err := s.PlanRecipe(ctx, "2024-03-10", model.SlotDinner, recipeID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.PlanMeal(ctx, "2024-03-10", model.SlotBreakfast, mealID); err != nil {
		t.Fatal(err)
	}
	if err := s.ReplaceShoppingList(ctx, []model.ShoppingItem{{Name: "eggs", Count: 1, Checked: true}}); err != nil {
		t.Fatal(err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	src, _ := testStore(t)
	seed(t, src)

	data, err := src.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(string(data), "\n  \"meals\": [") {
		t.Errorf("export is not two-space indented:\n%s", data)
	}
	if !strings.Contains(string(data), `"exportDate": "2024-03-09T18:30:00.000Z"`) {
		t.Errorf("export date missing:\n%s", data)
	}

	dst, mem := testStore(t)
	if err := dst.Import(ctx, data); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if diff := cmp.Diff(src.Meals(), dst.Meals()); diff != "" {
		t.Errorf("meals mismatch (-src +dst):\n%s", diff)
	}
	if diff := cmp.Diff(src.Recipes(), dst.Recipes()); diff != "" {
		t.Errorf("recipes mismatch (-src +dst):\n%s", diff)
	}
	var keys []string
	for _, e := range dst.Plan().Entries() {
		keys = append(keys, e.Key)
	}
	if diff := cmp.Diff([]string{"2024-03-10-dinner", "2024-03-10-breakfast"}, keys); diff != "" {
		t.Errorf("plan order mismatch (-want +got):\n%s", diff)
	}
	again, err := dst.Export()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(data), string(again)); diff != "" {
		t.Errorf("re-export differs (-first +second):\n%s", diff)
	}
	if mem.Writes() != 5 {
		t.Errorf("import wrote %d keys, want 5", mem.Writes())
	}

	// New ids continue past the imported ones.
	id, _ := dst.AddMeal(ctx, model.Meal{Name: "Next"})
	for _, m := range src.Meals() {
		if id <= m.ID {
			t.Errorf("new id %d not greater than imported id %d", id, m.ID)
		}
	}
}

func TestImportAbsentFieldsReset(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, _ := testStore(t)
	seed(t, s)

	if err := s.Import(ctx, []byte(`{"recipes":[{"id":1,"name":"Only","servings":2}],"mealPlan":null}`)); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if n := len(s.Meals()); n != 0 {
		t.Errorf("meals len = %d, want 0", n)
	}
	if n := len(s.Recipes()); n != 1 {
		t.Errorf("recipes len = %d, want 1", n)
	}
	if n := s.Plan().Len(); n != 0 {
		t.Errorf("plan len = %d, want 0", n)
	}
	if n := len(s.ShoppingList()); n != 0 {
		t.Errorf("shopping len = %d, want 0", n)
	}
}

func TestImportRejectsMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "hello"},
		{name: "empty", data: ""},
		{name: "null", data: "null"},
		{name: "array", data: "[]"},
		{name: "meals is a number", data: `{"meals": 5}`},
		{name: "plan is an array", data: `{"mealPlan": []}`},
		{name: "truncated", data: `{"meals": [`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			s, mem := testStore(t)
			seed(t, s)
			before, _ := s.Export()
			writes := mem.Writes()

			err := s.Import(ctx, []byte(tt.data))
			if !errors.Is(err, ErrInvalidSnapshot) {
				t.Fatalf("Import error = %v, want ErrInvalidSnapshot", err)
			}
			after, _ := s.Export()
			if diff := cmp.Diff(string(before), string(after)); diff != "" {
				t.Errorf("state changed (-before +after):\n%s", diff)
			}
			if mem.Writes() != writes {
				t.Errorf("backing written %d times", mem.Writes()-writes)
			}
		})
	}
}
