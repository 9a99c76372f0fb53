package scale

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/mealbook/internal/model"
)

func TestQuantity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		text       string
		multiplier float64
		want       string
	}{
		{name: "doubles whole number", text: "2 cups", multiplier: 2, want: "4 cups"},
		{name: "fraction to whole", text: "1/2 tsp", multiplier: 2, want: "1 tsp"},
		{name: "whole to half", text: "1 cup", multiplier: 0.5, want: "1/2 cup"},
		{name: "no numeric prefix", text: "a pinch", multiplier: 2, want: "a pinch"},
		{name: "empty text", text: "", multiplier: 2, want: ""},
		{name: "identity", text: "3 cloves", multiplier: 1, want: "3 cloves"},
		{name: "no unit", text: "2", multiplier: 3, want: "6"},
		{name: "unit without space", text: "200g", multiplier: 0.5, want: "100 g"},
		{name: "decimal above one", text: "1.5 cups", multiplier: 1.5, want: "2.25 cups"},
		{name: "third", text: "1 cup", multiplier: 1.0 / 3, want: "1/3 cup"},
		{name: "two thirds", text: "2 cups", multiplier: 1.0 / 3, want: "2/3 cups"},
		{name: "quarter", text: "1 tbsp", multiplier: 0.25, want: "1/4 tbsp"},
		{name: "three quarters", text: "3 tbsp", multiplier: 0.25, want: "3/4 tbsp"},
		{name: "no close fraction", text: "1 tsp", multiplier: 0.1, want: "0.10 tsp"},
		{name: "tie rounds up", text: "1 tsp", multiplier: 0.125, want: "0.13 tsp"},
		{name: "first fraction in list wins", text: "3 tsp", multiplier: 0.1, want: "1/4 tsp"},
		{name: "three part fraction uses first two", text: "1/2/3 cup", multiplier: 1, want: "1/2 cup"},
		{name: "leading dot", text: ".5 cup", multiplier: 4, want: "2 cup"},
		{name: "zero denominator", text: "1/0 cup", multiplier: 2, want: "Infinity cup"},
		{name: "zero over zero", text: "0/0 cup", multiplier: 2, want: "NaN cup"},
		{name: "slash only", text: "/ cup", multiplier: 2, want: "NaN cup"},
		{name: "zero multiplier", text: "2 cups", multiplier: 0, want: "0 cups"},
		{name: "no-break space", text: "2\u00a0cups", multiplier: 2, want: "4 cups"},
		{name: "thin space and tab", text: "1/2\u2009\ttsp", multiplier: 2, want: "1 tsp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Quantity(tt.text, tt.multiplier); got != tt.want {
				t.Errorf("Quantity(%q, %v) = %q, want %q", tt.text, tt.multiplier, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{in: 4, want: "4"},
		{in: 1.5, want: "1.50"},
		{in: 2.375, want: "2.38"},
		{in: 0.9, want: "0.90"},
		{in: 0.5, want: "1/2"},
		{in: 0.3, want: "1/4"},
		{in: math.Inf(1), want: "Infinity"},
		{in: math.NaN(), want: "NaN"},
		{in: math.Copysign(0, -1), want: "0"},
	}
	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	amount, unit, ok := Parse("3/4 cup flour")
	if !ok || amount != 0.75 || unit != "cup flour" {
		t.Errorf("Parse = %v, %q, %v", amount, unit, ok)
	}
	if _, _, ok := Parse("some salt"); ok {
		t.Error("Parse(some salt) reported ok")
	}
}

func TestRecipe(t *testing.T) {
	t.Parallel()

	r := model.Recipe{
		Name:     "Pancakes",
		Servings: 4,
		Ingredients: []model.RecipeIngredient{
			{Name: "flour", Quantity: "2 cups"},
			{Name: "salt", Quantity: "a pinch"},
			{Name: "milk", Quantity: "1 cup"},
		},
	}
	got := Recipe(r, 2)
	want := []model.RecipeIngredient{
		{Name: "flour", Quantity: "1 cups"},
		{Name: "salt", Quantity: "a pinch"},
		{Name: "milk", Quantity: "1/2 cup"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Recipe mismatch (-want +got):\n%s", diff)
	}
	if r.Ingredients[0].Quantity != "2 cups" {
		t.Error("Recipe mutated its input")
	}
}

func TestStep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current int
		action  StepAction
		want    int
	}{
		{name: "increase", current: 4, action: StepIncrease, want: 5},
		{name: "decrease", current: 4, action: StepDecrease, want: 3},
		{name: "decrease stops at one", current: 1, action: StepDecrease, want: 1},
		{name: "reset", current: 9, action: StepReset, want: 4},
		{name: "unknown action", current: 6, action: "sideways", want: 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Step(tt.current, 4, tt.action); got != tt.want {
				t.Errorf("Step(%d, 4, %s) = %d, want %d", tt.current, tt.action, got, tt.want)
			}
		})
	}

	if _, err := ParseStepAction("sideways"); err == nil {
		t.Error("ParseStepAction accepted an unknown action")
	}
}
