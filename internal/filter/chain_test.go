package filter

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/mealbook/internal/model"
)

func sampleMeals() []model.Meal {
	return []model.Meal{
		{ID: 100, Name: "Tacos", Category: model.CategoryDinner, Rating: 4, Tags: []string{"Mexican", "quick"}, Favorite: true, TimesMade: 3, LastMade: "2024-02-01T12:00:00.000Z"},
		{ID: 200, Name: "Salad", Category: model.CategoryLunch, Rating: 2, Tags: []string{"healthy"}},
		{ID: 300, Name: "apple pie", Category: model.CategoryDessert, Rating: 5, TimesMade: 1, LastMade: "2024-03-01T08:00:00.000Z"},
		{ID: 400, Name: "Burrito", Category: model.CategoryDinner, Rating: 4, Tags: []string{"mexican"}, TimesMade: 3},
	}
}

func names(meals []model.Meal) []string {
	out := make([]string, 0, len(meals))
	for _, m := range meals {
		out = append(out, m.Name)
	}
	return out
}

func TestApplyFilters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{name: "empty matches all", criteria: Criteria{}, want: []string{"Tacos", "Salad", "apple pie", "Burrito"}},
		{name: "min rating", criteria: Criteria{MinRating: 3}, want: []string{"Tacos", "apple pie", "Burrito"}},
		{name: "search name ignores case", criteria: Criteria{Search: "TAC"}, want: []string{"Tacos"}},
		{name: "search matches tags", criteria: Criteria{Search: "mexican"}, want: []string{"Tacos", "Burrito"}},
		{name: "category is exact", criteria: Criteria{Category: "dinner"}, want: []string{"Tacos", "Burrito"}},
		{name: "category does not fold case", criteria: Criteria{Category: "Dinner"}, want: []string{}},
		{name: "favorites", criteria: Criteria{FavoriteOnly: true}, want: []string{"Tacos"}},
		{name: "combined", criteria: Criteria{Search: "mex", MinRating: 4, Category: "dinner"}, want: []string{"Tacos", "Burrito"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := names(Apply(sampleMeals(), tt.criteria, SortNone))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Apply mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplySorts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  SortKey
		want []string
	}{
		{key: SortNameAsc, want: []string{"apple pie", "Burrito", "Salad", "Tacos"}},
		{key: SortNameDesc, want: []string{"Tacos", "Salad", "Burrito", "apple pie"}},
		{key: SortRatingDesc, want: []string{"apple pie", "Tacos", "Burrito", "Salad"}},
		{key: SortRatingAsc, want: []string{"Salad", "Tacos", "Burrito", "apple pie"}},
		{key: SortNewest, want: []string{"Burrito", "apple pie", "Salad", "Tacos"}},
		{key: SortOldest, want: []string{"Tacos", "Salad", "apple pie", "Burrito"}},
		{key: SortRecentlyMade, want: []string{"apple pie", "Tacos", "Salad", "Burrito"}},
		{key: SortMostMade, want: []string{"Tacos", "Burrito", "apple pie", "Salad"}},
		{key: "bogus", want: []string{"Tacos", "Salad", "apple pie", "Burrito"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			t.Parallel()
			got := names(Apply(sampleMeals(), Criteria{}, tt.key))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("sort %q mismatch (-want +got):\n%s", tt.key, diff)
			}
		})
	}
}

func TestApplyNewestTwoMeals(t *testing.T) {
	t.Parallel()
	meals := []model.Meal{{ID: 100, Name: "A"}, {ID: 200, Name: "B"}}
	got := names(Apply(meals, Criteria{}, SortNewest))
	if diff := cmp.Diff([]string{"B", "A"}, got); diff != "" {
		t.Errorf("newest mismatch (-want +got):\n%s", diff)
	}
	if meals[0].Name != "A" {
		t.Error("Apply reordered its input")
	}
}

func TestChainRun(t *testing.T) {
	t.Parallel()

	chain := NewChain(Criteria{Search: "mex", MinRating: 5})
	res := chain.Run(sampleMeals()[0])
	if res.Passed {
		t.Fatal("expected Tacos to fail the rating check")
	}
	if diff := cmp.Diff([]CheckResult{{Name: "search", Passed: true}, {Name: "rating", Passed: false}}, res.Checks); diff != "" {
		t.Errorf("checks mismatch (-want +got):\n%s", diff)
	}
	if f := res.FirstFailure(); f == nil || f.Name != "rating" {
		t.Errorf("FirstFailure = %+v, want rating", f)
	}

	pass := NewChain(Criteria{}).Run(sampleMeals()[1])
	if !pass.Passed || pass.FirstFailure() != nil {
		t.Errorf("empty chain result = %+v", pass)
	}
}

func TestParseSortKey(t *testing.T) {
	t.Parallel()

	for _, k := range SortKeys() {
		got, err := ParseSortKey(string(k))
		if err != nil || got != k {
			t.Errorf("ParseSortKey(%q) = %q, %v", k, got, err)
		}
	}
	if k, err := ParseSortKey(""); err != nil || k != SortNone {
		t.Errorf("ParseSortKey(\"\") = %q, %v", k, err)
	}
	if _, err := ParseSortKey("alphabetical"); !errors.Is(err, ErrUnknownSortKey) {
		t.Errorf("ParseSortKey(alphabetical) error = %v, want ErrUnknownSortKey", err)
	}
}
