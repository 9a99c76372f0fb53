package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/mealbook/internal/model"
	"github.com/papapumpkin/mealbook/internal/scale"
	"github.com/papapumpkin/mealbook/internal/store"
)

var recipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Manage recipes",
	Long: `Recipes carry servings, prep and cook times, a difficulty, quantified
ingredients and instructions. Ingredients are given as NAME=QUANTITY, for
example --ingredient "Flour=2 cups".`,
}

func init() {
	addCmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a recipe",
		Args:  cobra.ExactArgs(1),
		RunE:  withSession(runRecipeAdd),
	}
	addRecipeFlags(addCmd)

	updateCmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change fields of a recipe",
		Long:  "Only the flags given are changed; everything else is kept.",
		Args:  cobra.ExactArgs(1),
		RunE:  withSession(runRecipeUpdate),
	}
	addRecipeFlags(updateCmd)
	updateCmd.Flags().String("name", "", "new name")
	updateCmd.Flags().Bool("favorite", false, "favorite flag")

	scaleCmd := &cobra.Command{
		Use:   "scale ID",
		Short: "Show a recipe scaled to a number of servings",
		Long: `Shows the recipe with every quantity scaled to --servings (default: the
recipe's own servings). --step then nudges that count: increase, decrease
(never below one) or reset to the recipe's servings.`,
		Args: cobra.ExactArgs(1),
		RunE: withSession(runRecipeScale),
	}
	scaleCmd.Flags().Int("servings", 0, "target servings (default: the recipe's servings)")
	scaleCmd.Flags().String("step", "", "servings stepper: increase, decrease or reset")

	recipeCmd.AddCommand(
		addCmd,
		updateCmd,
		scaleCmd,
		&cobra.Command{Use: "list", Short: "List recipes", Args: cobra.NoArgs, RunE: withSession(runRecipeList)},
		&cobra.Command{Use: "show ID", Short: "Show a recipe", Args: cobra.ExactArgs(1), RunE: withSession(runRecipeShow)},
		&cobra.Command{Use: "delete ID", Short: "Delete a recipe", Args: cobra.ExactArgs(1), RunE: withSession(runRecipeDelete)},
		&cobra.Command{Use: "fav ID", Short: "Toggle a recipe's favorite flag", Args: cobra.ExactArgs(1), RunE: withSession(runRecipeFav)},
		&cobra.Command{Use: "dup ID", Short: "Duplicate a recipe", Args: cobra.ExactArgs(1), RunE: withSession(runRecipeDup)},
	)
	rootCmd.AddCommand(recipeCmd)
}

func addRecipeFlags(cmd *cobra.Command) {
	cmd.Flags().Int("servings", 4, "servings the quantities are written for")
	cmd.Flags().Int("prep", 0, "prep time in minutes")
	cmd.Flags().Int("cook", 0, "cook time in minutes")
	cmd.Flags().String("difficulty", model.DifficultyEasy, "easy, medium or hard")
	cmd.Flags().StringArray("ingredient", nil, "ingredient as NAME=QUANTITY (repeatable)")
	cmd.Flags().String("instructions", "", "instructions text")
	cmd.Flags().String("tags", "", "comma-separated tags")
	cmd.Flags().String("photo", "", "photo reference")
	addNutritionFlags(cmd)
}

// parseRecipeIngredient splits "Flour=2 cups". A value without "=" is a name
// with no quantity.
func parseRecipeIngredient(s string) model.RecipeIngredient {
	name, qty, _ := strings.Cut(s, "=")
	return model.RecipeIngredient{Name: strings.TrimSpace(name), Quantity: strings.TrimSpace(qty)}
}

func recipeIngredients(cmd *cobra.Command) []model.RecipeIngredient {
	values, _ := cmd.Flags().GetStringArray("ingredient")
	list := make([]model.RecipeIngredient, 0, len(values))
	for _, v := range values {
		list = append(list, parseRecipeIngredient(v))
	}
	return list
}

func validDifficulty(d string) error {
	switch d {
	case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard:
		return nil
	}
	return fmt.Errorf("difficulty must be easy, medium or hard, got %q", d)
}

func lookupRecipe(s *session, arg string) (model.Recipe, error) {
	id, err := parseID(arg)
	if err != nil {
		return model.Recipe{}, err
	}
	r, ok := s.store.Recipe(id)
	if !ok {
		return model.Recipe{}, fmt.Errorf("recipe %d not found", id)
	}
	return r, nil
}

func runRecipeAdd(cmd *cobra.Command, s *session, args []string) error {
	if model.Blank(args[0]) {
		return fmt.Errorf("recipe add: name is required")
	}
	var r model.Recipe
	r.Name = strings.TrimSpace(args[0])
	r.Servings, _ = cmd.Flags().GetInt("servings")
	r.PrepTime, _ = cmd.Flags().GetInt("prep")
	r.CookTime, _ = cmd.Flags().GetInt("cook")
	r.Difficulty, _ = cmd.Flags().GetString("difficulty")
	r.Instructions, _ = cmd.Flags().GetString("instructions")
	r.Photo, _ = cmd.Flags().GetString("photo")
	tags, _ := cmd.Flags().GetString("tags")
	r.Tags = model.ParseTags(tags)
	r.Ingredients = recipeIngredients(cmd)
	r.Nutrition, _ = nutritionFromFlags(cmd, model.Nutrition{})

	if r.Servings < 1 {
		return fmt.Errorf("recipe add: servings must be at least 1")
	}
	if err := validDifficulty(r.Difficulty); err != nil {
		return fmt.Errorf("recipe add: %w", err)
	}

	id, err := s.store.AddRecipe(cmd.Context(), r)
	if err != nil {
		return fmt.Errorf("recipe add: %w", err)
	}
	s.out.Success("added recipe %d: %s", id, r.Name)
	return nil
}

func runRecipeList(_ *cobra.Command, s *session, _ []string) error {
	s.out.Recipes(s.store.Recipes())
	return nil
}

func runRecipeShow(_ *cobra.Command, s *session, args []string) error {
	r, err := lookupRecipe(s, args[0])
	if err != nil {
		return err
	}
	s.out.Recipe(r, r.Ingredients, r.Servings)
	return nil
}

func runRecipeUpdate(cmd *cobra.Command, s *session, args []string) error {
	r, err := lookupRecipe(s, args[0])
	if err != nil {
		return err
	}
	patch := store.RecipePatch{
		Name:         changedString(cmd, "name"),
		Servings:     changedInt(cmd, "servings"),
		PrepTime:     changedInt(cmd, "prep"),
		CookTime:     changedInt(cmd, "cook"),
		Difficulty:   changedString(cmd, "difficulty"),
		Instructions: changedString(cmd, "instructions"),
		Photo:        changedString(cmd, "photo"),
		Tags:         changedTags(cmd),
	}
	if patch.Name != nil && model.Blank(*patch.Name) {
		return fmt.Errorf("recipe update: name cannot be blank")
	}
	if patch.Servings != nil && *patch.Servings < 1 {
		return fmt.Errorf("recipe update: servings must be at least 1")
	}
	if patch.Difficulty != nil {
		if err := validDifficulty(*patch.Difficulty); err != nil {
			return fmt.Errorf("recipe update: %w", err)
		}
	}
	if cmd.Flags().Changed("ingredient") {
		list := recipeIngredients(cmd)
		patch.Ingredients = &list
	}
	if n, ok := nutritionFromFlags(cmd, r.Nutrition); ok {
		patch.Nutrition = &n
	}
	if cmd.Flags().Changed("favorite") {
		fav, _ := cmd.Flags().GetBool("favorite")
		patch.Favorite = &fav
	}

	if err := s.store.UpdateRecipe(cmd.Context(), r.ID, patch); err != nil {
		return fmt.Errorf("recipe update: %w", err)
	}
	s.out.Success("updated recipe %d", r.ID)
	return nil
}

func runRecipeDelete(cmd *cobra.Command, s *session, args []string) error {
	r, err := lookupRecipe(s, args[0])
	if err != nil {
		return err
	}
	if err := s.store.DeleteRecipe(cmd.Context(), r.ID); err != nil {
		return fmt.Errorf("recipe delete: %w", err)
	}
	s.out.Success("deleted recipe %d: %s", r.ID, r.Name)
	return nil
}

func runRecipeFav(cmd *cobra.Command, s *session, args []string) error {
	r, err := lookupRecipe(s, args[0])
	if err != nil {
		return err
	}
	if err := s.store.ToggleRecipeFavorite(cmd.Context(), r.ID); err != nil {
		return fmt.Errorf("recipe fav: %w", err)
	}
	if r.Favorite {
		s.out.Success("%s removed from favorites", r.Name)
	} else {
		s.out.Success("%s added to favorites", r.Name)
	}
	return nil
}

func runRecipeDup(cmd *cobra.Command, s *session, args []string) error {
	r, err := lookupRecipe(s, args[0])
	if err != nil {
		return err
	}
	id, _, err := s.store.DuplicateRecipe(cmd.Context(), r.ID)
	if err != nil {
		return fmt.Errorf("recipe dup: %w", err)
	}
	s.out.Success("duplicated recipe %d as %d", r.ID, id)
	return nil
}

func runRecipeScale(cmd *cobra.Command, s *session, args []string) error {
	r, err := lookupRecipe(s, args[0])
	if err != nil {
		return err
	}
	servings := r.Servings
	if cmd.Flags().Changed("servings") {
		servings, _ = cmd.Flags().GetInt("servings")
	}
	if name, _ := cmd.Flags().GetString("step"); name != "" {
		action, err := scale.ParseStepAction(name)
		if err != nil {
			return fmt.Errorf("recipe scale: %w", err)
		}
		servings = scale.Step(servings, r.Servings, action)
	}
	if servings < 1 {
		return fmt.Errorf("recipe scale: servings must be at least 1")
	}
	s.out.Recipe(r, scale.Recipe(r, servings), servings)
	return nil
}
