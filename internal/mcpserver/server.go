// Package mcpserver exposes the mealbook store to MCP clients over the
// official go-sdk. Each tool is a thin adapter: it validates its input,
// calls the store or one of the core helpers, and answers with JSON text.
// Failures come back as IsError results rather than protocol errors.
package mcpserver

import (
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/papapumpkin/mealbook/internal/store"
)

// Version is reported in the server's implementation info.
const Version = "0.1.0"

// New creates an MCP server with every mealbook tool registered.
func New(s *store.Store, log zerolog.Logger) *mcp.Server {
	t := &tools{store: s, log: log.With().Str("component", "mcp").Logger(), now: time.Now}

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "mealbook",
		Version: Version,
	}, nil)

	// Meals and recipes
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "list_meals",
		Description: "List meals, optionally filtered by search text, category, minimum rating or favorites, and sorted by one of: " + sortKeyList(),
	}, t.ListMeals)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "add_meal",
		Description: "Add a meal with a name, category, 0-5 rating, ingredient names, tags and notes",
	}, t.AddMeal)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "mark_meal_made",
		Description: "Record that a meal was made now: sets its last-made time and increments its made count",
	}, t.MarkMealMade)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "list_recipes",
		Description: "List all recipes with servings, timing and ingredients",
	}, t.ListRecipes)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "scale_recipe",
		Description: "Show a recipe's ingredient quantities scaled to a number of servings",
	}, t.ScaleRecipe)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "scale_quantity",
		Description: "Scale a free-text quantity such as \"1/2 cup\" by a multiplier",
	}, t.ScaleQuantity)

	// Meal plan
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "plan_slot",
		Description: "Put a copy of a meal or recipe into a day's breakfast, lunch or dinner slot",
	}, t.PlanSlot)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "clear_slot",
		Description: "Empty a day's breakfast, lunch or dinner slot",
	}, t.ClearSlot)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "day_plan",
		Description: "Get the planned items of one date (YYYY-MM-DD), keyed by slot",
	}, t.DayPlan)

	// Shopping
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "generate_shopping_list",
		Description: "Rebuild the shopping list from every planned ingredient, discarding checked marks",
	}, t.GenerateShoppingList)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "shopping_list",
		Description: "Get the current shopping list",
	}, t.ShoppingList)

	return srv
}
