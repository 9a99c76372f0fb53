package planner

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/mealbook/internal/model"
)

func TestWeek(t *testing.T) {
	t.Parallel()

	// Wednesday, 13 March 2024.
	anchor := time.Date(2024, 3, 13, 21, 45, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Weekday
		want  []string
	}{
		{
			name:  "sunday start",
			start: time.Sunday,
			want:  []string{"2024-03-10", "2024-03-11", "2024-03-12", "2024-03-13", "2024-03-14", "2024-03-15", "2024-03-16"},
		},
		{
			name:  "monday start",
			start: time.Monday,
			want:  []string{"2024-03-11", "2024-03-12", "2024-03-13", "2024-03-14", "2024-03-15", "2024-03-16", "2024-03-17"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, Week(anchor, tt.start)); diff != "" {
				t.Errorf("Week mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWeekAnchorOnStartDay(t *testing.T) {
	t.Parallel()
	sunday := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	got := Week(sunday, time.Sunday)
	if got[0] != "2024-03-10" {
		t.Errorf("first day = %s, want the anchor itself", got[0])
	}
}

func TestWeekCrossesMonth(t *testing.T) {
	t.Parallel()
	anchor := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) // Friday
	got := Week(anchor, time.Sunday)
	if got[0] != "2024-02-25" || got[6] != "2024-03-02" {
		t.Errorf("Week = %v", got)
	}
}

func TestShift(t *testing.T) {
	t.Parallel()
	anchor := time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)
	if got := Week(Shift(anchor, -1), time.Sunday)[0]; got != "2024-03-03" {
		t.Errorf("previous week starts %s, want 2024-03-03", got)
	}
	if got := Week(Shift(anchor, 1), time.Sunday)[0]; got != "2024-03-17" {
		t.Errorf("next week starts %s, want 2024-03-17", got)
	}
}

func TestParseWeekStart(t *testing.T) {
	t.Parallel()
	for in, want := range map[string]time.Weekday{"sunday": time.Sunday, "Monday": time.Monday, "": time.Sunday} {
		got, err := ParseWeekStart(in)
		if err != nil || got != want {
			t.Errorf("ParseWeekStart(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseWeekStart("friday"); err == nil {
		t.Error("ParseWeekStart(friday) succeeded")
	}
}

type fakeDays map[string]map[model.Slot]model.PlanItem

func (f fakeDays) DaySlots(date string) map[model.Slot]model.PlanItem {
	return f[date]
}

func TestWeekView(t *testing.T) {
	t.Parallel()
	repo := fakeDays{
		"2024-03-11": {model.SlotDinner: model.MealItem(model.Meal{Name: "Curry"})},
	}
	days := WeekView(repo, Week(time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), time.Sunday))
	if len(days) != DaysPerWeek {
		t.Fatalf("len = %d", len(days))
	}
	if days[0].Weekday != time.Sunday || days[1].Weekday != time.Monday {
		t.Errorf("weekdays = %v, %v", days[0].Weekday, days[1].Weekday)
	}
	item, ok := days[1].Item(model.SlotDinner)
	if !ok || item.Name() != "Curry" {
		t.Errorf("monday dinner = %q, %v", item.Name(), ok)
	}
	if _, ok := days[1].Item(model.SlotLunch); ok {
		t.Error("monday lunch should be empty")
	}
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	if _, ok := Suggest(nil, nil, rand.New(rand.NewPCG(1, 2))); ok {
		t.Error("Suggest on empty collections reported ok")
	}

	meals := []model.Meal{{ID: 1, Name: "Tacos"}}
	recipes := []model.Recipe{{ID: 2, Name: "Bread", Servings: 2}}
	rng := rand.New(rand.NewPCG(7, 11))
	seen := map[model.ItemKind]bool{}
	for range 200 {
		item, ok := Suggest(meals, recipes, rng)
		if !ok {
			t.Fatal("Suggest reported no item")
		}
		switch item.Kind {
		case model.KindMeal:
			if item.Name() != "Tacos" {
				t.Errorf("meal suggestion = %q", item.Name())
			}
		case model.KindRecipe:
			if item.Name() != "Bread" {
				t.Errorf("recipe suggestion = %q", item.Name())
			}
		}
		seen[item.Kind] = true
	}
	if !seen[model.KindMeal] || !seen[model.KindRecipe] {
		t.Errorf("200 draws did not cover both collections: %v", seen)
	}
}
