package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/mealbook/internal/model"
	"github.com/papapumpkin/mealbook/internal/store"
)

var ingredientCmd = &cobra.Command{
	Use:   "ingredient",
	Short: "Manage the ingredient library",
}

func init() {
	addCmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add an ingredient to the library",
		Args:  cobra.ExactArgs(1),
		RunE:  withSession(runIngredientAdd),
	}
	addCmd.Flags().String("category", "", "aisle or category, e.g. produce")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the ingredient library",
		Args:  cobra.NoArgs,
		RunE:  withSession(runIngredientList),
	}
	listCmd.Flags().String("search", "", "case-insensitive name filter")

	updateCmd := &cobra.Command{
		Use:   "update ID",
		Short: "Rename or recategorize an ingredient",
		Args:  cobra.ExactArgs(1),
		RunE:  withSession(runIngredientUpdate),
	}
	updateCmd.Flags().String("name", "", "new name")
	updateCmd.Flags().String("category", "", "new category")

	ingredientCmd.AddCommand(
		addCmd,
		listCmd,
		updateCmd,
		&cobra.Command{Use: "delete ID", Short: "Delete an ingredient", Args: cobra.ExactArgs(1), RunE: withSession(runIngredientDelete)},
	)
	rootCmd.AddCommand(ingredientCmd)
}

func lookupIngredient(s *session, arg string) (model.Ingredient, error) {
	id, err := parseID(arg)
	if err != nil {
		return model.Ingredient{}, err
	}
	ing, ok := s.store.Ingredient(id)
	if !ok {
		return model.Ingredient{}, fmt.Errorf("ingredient %d not found", id)
	}
	return ing, nil
}

func runIngredientAdd(cmd *cobra.Command, s *session, args []string) error {
	if model.Blank(args[0]) {
		return fmt.Errorf("ingredient add: name is required")
	}
	category, _ := cmd.Flags().GetString("category")
	name := strings.TrimSpace(args[0])
	id, err := s.store.AddIngredient(cmd.Context(), model.Ingredient{Name: name, Category: category})
	if err != nil {
		return fmt.Errorf("ingredient add: %w", err)
	}
	s.out.Success("added ingredient %d: %s", id, name)
	return nil
}

func runIngredientList(cmd *cobra.Command, s *session, _ []string) error {
	term, _ := cmd.Flags().GetString("search")
	if term == "" {
		s.out.Ingredients(s.store.Ingredients())
		return nil
	}
	s.out.Ingredients(s.store.SearchIngredients(term))
	return nil
}

func runIngredientUpdate(cmd *cobra.Command, s *session, args []string) error {
	ing, err := lookupIngredient(s, args[0])
	if err != nil {
		return err
	}
	patch := store.IngredientPatch{
		Name:     changedString(cmd, "name"),
		Category: changedString(cmd, "category"),
	}
	if patch.Name != nil && model.Blank(*patch.Name) {
		return fmt.Errorf("ingredient update: name cannot be blank")
	}
	if err := s.store.UpdateIngredient(cmd.Context(), ing.ID, patch); err != nil {
		return fmt.Errorf("ingredient update: %w", err)
	}
	s.out.Success("updated ingredient %d", ing.ID)
	return nil
}

func runIngredientDelete(cmd *cobra.Command, s *session, args []string) error {
	ing, err := lookupIngredient(s, args[0])
	if err != nil {
		return err
	}
	if err := s.store.DeleteIngredient(cmd.Context(), ing.ID); err != nil {
		return fmt.Errorf("ingredient delete: %w", err)
	}
	s.out.Success("deleted ingredient %d: %s", ing.ID, ing.Name)
	return nil
}
