package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/mealbook/internal/filter"
	"github.com/papapumpkin/mealbook/internal/model"
	"github.com/papapumpkin/mealbook/internal/store"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Manage meals",
	Long: `Meals are simple entries: a name, a category, a 0-5 rating, ingredient
names (required or optional), tags and notes.`,
}

func init() {
	addCmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a meal",
		Args:  cobra.ExactArgs(1),
		RunE:  withSession(runMealAdd),
	}
	addMealFlags(addCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List meals",
		Args:  cobra.NoArgs,
		RunE:  withSession(runMealList),
	}
	listCmd.Flags().String("search", "", "match name or tags (case-insensitive)")
	listCmd.Flags().String("category", "", "exact category")
	listCmd.Flags().Int("min-rating", 0, "lowest rating to show")
	listCmd.Flags().Bool("favorites", false, "favorites only")
	listCmd.Flags().String("sort", "", "sort key: "+sortKeyNames())

	updateCmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change fields of a meal",
		Long:  "Only the flags given are changed; everything else is kept.",
		Args:  cobra.ExactArgs(1),
		RunE:  withSession(runMealUpdate),
	}
	addMealFlags(updateCmd)
	updateCmd.Flags().String("name", "", "new name")
	updateCmd.Flags().Bool("favorite", false, "favorite flag")

	mealCmd.AddCommand(
		addCmd,
		listCmd,
		updateCmd,
		&cobra.Command{Use: "show ID", Short: "Show a meal", Args: cobra.ExactArgs(1), RunE: withSession(runMealShow)},
		&cobra.Command{Use: "delete ID", Short: "Delete a meal", Args: cobra.ExactArgs(1), RunE: withSession(runMealDelete)},
		&cobra.Command{Use: "made ID", Short: "Record that a meal was made today", Args: cobra.ExactArgs(1), RunE: withSession(runMealMade)},
		&cobra.Command{Use: "fav ID", Short: "Toggle a meal's favorite flag", Args: cobra.ExactArgs(1), RunE: withSession(runMealFav)},
		&cobra.Command{Use: "dup ID", Short: "Duplicate a meal", Args: cobra.ExactArgs(1), RunE: withSession(runMealDup)},
	)
	rootCmd.AddCommand(mealCmd)
}

func addMealFlags(cmd *cobra.Command) {
	cmd.Flags().String("category", "", "category (breakfast, lunch, dinner, snack, dessert)")
	cmd.Flags().Int("rating", 0, "rating from 0 to 5")
	cmd.Flags().StringArray("ingredient", nil, "required ingredient (repeatable)")
	cmd.Flags().StringArray("optional", nil, "optional ingredient (repeatable)")
	cmd.Flags().String("tags", "", "comma-separated tags")
	cmd.Flags().String("notes", "", "notes")
	cmd.Flags().String("photo", "", "photo reference")
	addNutritionFlags(cmd)
}

func sortKeyNames() string {
	keys := filter.SortKeys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// mealIngredients collects --ingredient and --optional values in that order.
// ok is false when neither flag was given.
func mealIngredients(cmd *cobra.Command) (list []model.MealIngredient, ok bool) {
	required, _ := cmd.Flags().GetStringArray("ingredient")
	optional, _ := cmd.Flags().GetStringArray("optional")
	for _, name := range required {
		list = append(list, model.MealIngredient{Name: name, Required: model.Required})
	}
	for _, name := range optional {
		list = append(list, model.MealIngredient{Name: name, Required: model.Optional})
	}
	return list, cmd.Flags().Changed("ingredient") || cmd.Flags().Changed("optional")
}

// lookupMeal resolves an id argument to a stored meal.
func lookupMeal(s *session, arg string) (model.Meal, error) {
	id, err := parseID(arg)
	if err != nil {
		return model.Meal{}, err
	}
	m, ok := s.store.Meal(id)
	if !ok {
		return model.Meal{}, fmt.Errorf("meal %d not found", id)
	}
	return m, nil
}

func runMealAdd(cmd *cobra.Command, s *session, args []string) error {
	if model.Blank(args[0]) {
		return fmt.Errorf("meal add: name is required")
	}
	rating, _ := cmd.Flags().GetInt("rating")
	if err := validRating(rating); err != nil {
		return fmt.Errorf("meal add: %w", err)
	}
	category, _ := cmd.Flags().GetString("category")
	notes, _ := cmd.Flags().GetString("notes")
	photo, _ := cmd.Flags().GetString("photo")
	tags, _ := cmd.Flags().GetString("tags")
	ingredients, _ := mealIngredients(cmd)
	nutrition, _ := nutritionFromFlags(cmd, model.Nutrition{})

	id, err := s.store.AddMeal(cmd.Context(), model.Meal{
		Name:        strings.TrimSpace(args[0]),
		Category:    category,
		Rating:      rating,
		Ingredients: ingredients,
		Photo:       photo,
		Tags:        model.ParseTags(tags),
		Nutrition:   nutrition,
		Notes:       notes,
	})
	if err != nil {
		return fmt.Errorf("meal add: %w", err)
	}
	s.out.Success("added meal %d: %s", id, strings.TrimSpace(args[0]))
	return nil
}

func runMealList(cmd *cobra.Command, s *session, _ []string) error {
	sortName, _ := cmd.Flags().GetString("sort")
	key, err := filter.ParseSortKey(sortName)
	if err != nil {
		return fmt.Errorf("meal list: %w (want one of: %s)", err, sortKeyNames())
	}
	var c filter.Criteria
	c.Search, _ = cmd.Flags().GetString("search")
	c.Category, _ = cmd.Flags().GetString("category")
	c.MinRating, _ = cmd.Flags().GetInt("min-rating")
	c.FavoriteOnly, _ = cmd.Flags().GetBool("favorites")

	meals := s.store.Meals()
	chain := filter.NewChain(c)
	for _, m := range meals {
		if f := chain.Run(m).FirstFailure(); f != nil {
			s.log.Debug().Int64("id", m.ID).Str("check", f.Name).Msg("meal filtered out")
		}
	}
	s.out.Meals(filter.Apply(meals, c, key))
	return nil
}

func runMealShow(_ *cobra.Command, s *session, args []string) error {
	m, err := lookupMeal(s, args[0])
	if err != nil {
		return err
	}
	s.out.Meal(m)
	return nil
}

func runMealUpdate(cmd *cobra.Command, s *session, args []string) error {
	m, err := lookupMeal(s, args[0])
	if err != nil {
		return err
	}
	patch := store.MealPatch{
		Name:     changedString(cmd, "name"),
		Category: changedString(cmd, "category"),
		Rating:   changedInt(cmd, "rating"),
		Notes:    changedString(cmd, "notes"),
		Photo:    changedString(cmd, "photo"),
		Tags:     changedTags(cmd),
	}
	if patch.Name != nil && model.Blank(*patch.Name) {
		return fmt.Errorf("meal update: name cannot be blank")
	}
	if patch.Rating != nil {
		if err := validRating(*patch.Rating); err != nil {
			return fmt.Errorf("meal update: %w", err)
		}
	}
	if list, ok := mealIngredients(cmd); ok {
		patch.Ingredients = &list
	}
	if n, ok := nutritionFromFlags(cmd, m.Nutrition); ok {
		patch.Nutrition = &n
	}
	if cmd.Flags().Changed("favorite") {
		fav, _ := cmd.Flags().GetBool("favorite")
		patch.Favorite = &fav
	}

	if err := s.store.UpdateMeal(cmd.Context(), m.ID, patch); err != nil {
		return fmt.Errorf("meal update: %w", err)
	}
	s.out.Success("updated meal %d", m.ID)
	return nil
}

func runMealDelete(cmd *cobra.Command, s *session, args []string) error {
	m, err := lookupMeal(s, args[0])
	if err != nil {
		return err
	}
	if err := s.store.DeleteMeal(cmd.Context(), m.ID); err != nil {
		return fmt.Errorf("meal delete: %w", err)
	}
	s.out.Success("deleted meal %d: %s", m.ID, m.Name)
	return nil
}

func runMealMade(cmd *cobra.Command, s *session, args []string) error {
	m, err := lookupMeal(s, args[0])
	if err != nil {
		return err
	}
	if err := s.store.MarkMealMade(cmd.Context(), m.ID, time.Now()); err != nil {
		return fmt.Errorf("meal made: %w", err)
	}
	s.out.Success("%s made %d times", m.Name, m.TimesMade+1)
	return nil
}

func runMealFav(cmd *cobra.Command, s *session, args []string) error {
	m, err := lookupMeal(s, args[0])
	if err != nil {
		return err
	}
	if err := s.store.ToggleMealFavorite(cmd.Context(), m.ID); err != nil {
		return fmt.Errorf("meal fav: %w", err)
	}
	if m.Favorite {
		s.out.Success("%s removed from favorites", m.Name)
	} else {
		s.out.Success("%s added to favorites", m.Name)
	}
	return nil
}

func runMealDup(cmd *cobra.Command, s *session, args []string) error {
	m, err := lookupMeal(s, args[0])
	if err != nil {
		return err
	}
	id, _, err := s.store.DuplicateMeal(cmd.Context(), m.ID)
	if err != nil {
		return fmt.Errorf("meal dup: %w", err)
	}
	s.out.Success("duplicated meal %d as %d", m.ID, id)
	return nil
}
