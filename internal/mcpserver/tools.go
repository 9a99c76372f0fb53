package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/papapumpkin/mealbook/internal/filter"
	"github.com/papapumpkin/mealbook/internal/model"
	"github.com/papapumpkin/mealbook/internal/scale"
	"github.com/papapumpkin/mealbook/internal/shopping"
	"github.com/papapumpkin/mealbook/internal/store"
)

type tools struct {
	store *store.Store
	log   zerolog.Logger
	now   func() time.Time
}

// --- Input types ---

type ListMealsInput struct {
	Search    string `json:"search,omitempty" jsonschema:"Case-insensitive text matched against meal names and tags"`
	Category  string `json:"category,omitempty" jsonschema:"Exact category, e.g. dinner"`
	MinRating int    `json:"min_rating,omitempty" jsonschema:"Lowest rating to include (0-5)"`
	Favorites bool   `json:"favorites,omitempty" jsonschema:"Only include favorite meals"`
	Sort      string `json:"sort,omitempty" jsonschema:"Sort key; empty keeps insertion order"`
}

type AddMealInput struct {
	Name        string   `json:"name" jsonschema:"Meal name"`
	Category    string   `json:"category,omitempty" jsonschema:"Category such as breakfast, lunch, dinner, snack or dessert"`
	Rating      int      `json:"rating,omitempty" jsonschema:"Star rating from 0 to 5"`
	Ingredients []string `json:"ingredients,omitempty" jsonschema:"Ingredient names, all required"`
	Tags        []string `json:"tags,omitempty" jsonschema:"Free-form tags"`
	Notes       string   `json:"notes,omitempty" jsonschema:"Notes"`
}

type MealIDInput struct {
	ID int64 `json:"id" jsonschema:"Meal id"`
}

type ScaleRecipeInput struct {
	ID       int64 `json:"id" jsonschema:"Recipe id"`
	Servings int   `json:"servings" jsonschema:"Target number of servings, at least 1"`
}

type ScaleQuantityInput struct {
	Quantity   string  `json:"quantity" jsonschema:"Quantity text such as 2 cups or 1/2 tsp"`
	Multiplier float64 `json:"multiplier" jsonschema:"Factor to scale the leading number by"`
}

type PlanSlotInput struct {
	Date     string `json:"date" jsonschema:"Date as YYYY-MM-DD"`
	Slot     string `json:"slot" jsonschema:"breakfast, lunch or dinner"`
	MealID   int64  `json:"meal_id,omitempty" jsonschema:"Id of the meal to plan; set this or recipe_id"`
	RecipeID int64  `json:"recipe_id,omitempty" jsonschema:"Id of the recipe to plan; set this or meal_id"`
}

type SlotInput struct {
	Date string `json:"date" jsonschema:"Date as YYYY-MM-DD"`
	Slot string `json:"slot" jsonschema:"breakfast, lunch or dinner"`
}

type DateInput struct {
	Date string `json:"date" jsonschema:"Date as YYYY-MM-DD"`
}

// scaledRecipe is the scale_recipe answer.
type scaledRecipe struct {
	ID          int64                    `json:"id"`
	Name        string                   `json:"name"`
	Servings    int                      `json:"servings"`
	Original    int                      `json:"originalServings"`
	Ingredients []model.RecipeIngredient `json:"ingredients"`
}

// --- Handlers ---

func (t *tools) ListMeals(_ context.Context, _ *mcp.CallToolRequest, input ListMealsInput) (*mcp.CallToolResult, any, error) {
	key, err := filter.ParseSortKey(input.Sort)
	if err != nil {
		return toolError("%v (want one of: %s)", err, sortKeyList()), nil, nil
	}
	meals := filter.Apply(t.store.Meals(), filter.Criteria{
		Search:       input.Search,
		Category:     input.Category,
		MinRating:    input.MinRating,
		FavoriteOnly: input.Favorites,
	}, key)
	return toolJSON(meals)
}

func (t *tools) AddMeal(ctx context.Context, _ *mcp.CallToolRequest, input AddMealInput) (*mcp.CallToolResult, any, error) {
	if model.Blank(input.Name) {
		return toolError("Meal name is required"), nil, nil
	}
	if input.Rating < 0 || input.Rating > model.MaxRating {
		return toolError("Rating must be between 0 and %d", model.MaxRating), nil, nil
	}
	m := model.Meal{
		Name:     strings.TrimSpace(input.Name),
		Category: input.Category,
		Rating:   input.Rating,
		Tags:     input.Tags,
		Notes:    input.Notes,
	}
	for _, name := range input.Ingredients {
		m.Ingredients = append(m.Ingredients, model.PlainIngredient(name))
	}
	id, err := t.store.AddMeal(ctx, m)
	if err != nil {
		return t.failed("add_meal", err), nil, nil
	}
	stored, _ := t.store.Meal(id)
	return toolJSON(stored)
}

func (t *tools) MarkMealMade(ctx context.Context, _ *mcp.CallToolRequest, input MealIDInput) (*mcp.CallToolResult, any, error) {
	if _, ok := t.store.Meal(input.ID); !ok {
		return toolError("Meal %d not found", input.ID), nil, nil
	}
	if err := t.store.MarkMealMade(ctx, input.ID, t.now()); err != nil {
		return t.failed("mark_meal_made", err), nil, nil
	}
	m, _ := t.store.Meal(input.ID)
	return toolJSON(m)
}

func (t *tools) ListRecipes(_ context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
	return toolJSON(t.store.Recipes())
}

func (t *tools) ScaleRecipe(_ context.Context, _ *mcp.CallToolRequest, input ScaleRecipeInput) (*mcp.CallToolResult, any, error) {
	if input.Servings < 1 {
		return toolError("Servings must be at least 1"), nil, nil
	}
	r, ok := t.store.Recipe(input.ID)
	if !ok {
		return toolError("Recipe %d not found", input.ID), nil, nil
	}
	return toolJSON(scaledRecipe{
		ID:          r.ID,
		Name:        r.Name,
		Servings:    input.Servings,
		Original:    r.Servings,
		Ingredients: scale.Recipe(r, input.Servings),
	})
}

func (t *tools) ScaleQuantity(_ context.Context, _ *mcp.CallToolRequest, input ScaleQuantityInput) (*mcp.CallToolResult, any, error) {
	return toolText(scale.Quantity(input.Quantity, input.Multiplier)), nil, nil
}

func (t *tools) PlanSlot(ctx context.Context, _ *mcp.CallToolRequest, input PlanSlotInput) (*mcp.CallToolResult, any, error) {
	slot, res := parseSlot(input.Date, input.Slot)
	if res != nil {
		return res, nil, nil
	}
	var (
		found bool
		err   error
	)
	switch {
	case input.MealID != 0 && input.RecipeID != 0:
		return toolError("Set only one of meal_id and recipe_id"), nil, nil
	case input.MealID != 0:
		found, err = t.store.PlanMeal(ctx, input.Date, slot, input.MealID)
	case input.RecipeID != 0:
		found, err = t.store.PlanRecipe(ctx, input.Date, slot, input.RecipeID)
	default:
		return toolError("Set meal_id or recipe_id"), nil, nil
	}
	if err != nil {
		return t.failed("plan_slot", err), nil, nil
	}
	if !found {
		return toolError("Nothing to plan: no meal or recipe with that id"), nil, nil
	}
	return toolJSON(t.store.DaySlots(input.Date))
}

func (t *tools) ClearSlot(ctx context.Context, _ *mcp.CallToolRequest, input SlotInput) (*mcp.CallToolResult, any, error) {
	slot, res := parseSlot(input.Date, input.Slot)
	if res != nil {
		return res, nil, nil
	}
	if err := t.store.ClearSlot(ctx, input.Date, slot); err != nil {
		return t.failed("clear_slot", err), nil, nil
	}
	return toolJSON(t.store.DaySlots(input.Date))
}

func (t *tools) DayPlan(_ context.Context, _ *mcp.CallToolRequest, input DateInput) (*mcp.CallToolResult, any, error) {
	if _, err := time.Parse(model.DateLayout, input.Date); err != nil {
		return toolError("Invalid date %q, want YYYY-MM-DD", input.Date), nil, nil
	}
	return toolJSON(t.store.DaySlots(input.Date))
}

func (t *tools) GenerateShoppingList(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
	items, err := shopping.Regenerate(ctx, t.store)
	if err != nil {
		return t.failed("generate_shopping_list", err), nil, nil
	}
	return toolJSON(items)
}

func (t *tools) ShoppingList(_ context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
	return toolJSON(t.store.ShoppingList())
}

// --- Helpers ---

func parseSlot(date, name string) (model.Slot, *mcp.CallToolResult) {
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return "", toolError("Invalid date %q, want YYYY-MM-DD", date)
	}
	slot, err := model.ParseSlot(name)
	if err != nil {
		return "", toolError("%v", err)
	}
	return slot, nil
}

func sortKeyList() string {
	keys := filter.SortKeys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// failed logs a store error and turns it into a tool error.
func (t *tools) failed(tool string, err error) *mcp.CallToolResult {
	t.log.Error().Stack().Err(err).Str("tool", tool).Msg("tool failed")
	return toolError("Failed to save: %v", err)
}

func toolText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func toolError(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}

func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError("Failed to marshal result: %v", err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}
