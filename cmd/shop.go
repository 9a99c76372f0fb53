package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/mealbook/internal/shopping"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Build and check off the shopping list",
}

func init() {
	shopCmd.AddCommand(
		&cobra.Command{
			Use:   "generate",
			Short: "Rebuild the list from every planned ingredient",
			Long:  "Rebuilding replaces the current list; checked marks are lost.",
			Args:  cobra.NoArgs,
			RunE:  withSession(runShopGenerate),
		},
		&cobra.Command{Use: "list", Short: "Show the shopping list", Args: cobra.NoArgs, RunE: withSession(runShopList)},
		&cobra.Command{Use: "toggle INDEX", Short: "Check or uncheck an item", Args: cobra.ExactArgs(1), RunE: withSession(runShopToggle)},
		&cobra.Command{Use: "clear", Short: "Empty the shopping list", Args: cobra.NoArgs, RunE: withSession(runShopClear)},
	)
	rootCmd.AddCommand(shopCmd)
}

func runShopGenerate(cmd *cobra.Command, s *session, _ []string) error {
	items, err := shopping.Regenerate(cmd.Context(), s.store)
	if err != nil {
		return err
	}
	s.out.ShoppingList(items)
	if len(items) > 0 {
		s.out.Success("%d items from the meal plan", len(items))
	}
	return nil
}

func runShopList(_ *cobra.Command, s *session, _ []string) error {
	s.out.ShoppingList(s.store.ShoppingList())
	return nil
}

func runShopToggle(cmd *cobra.Command, s *session, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q", args[0])
	}
	if n := len(s.store.ShoppingList()); index < 0 || index >= n {
		return fmt.Errorf("shop toggle: index %d out of range (list has %d items)", index, n)
	}
	if err := s.store.ToggleShoppingItem(cmd.Context(), index); err != nil {
		return fmt.Errorf("shop toggle: %w", err)
	}
	s.out.ShoppingList(s.store.ShoppingList())
	return nil
}

func runShopClear(cmd *cobra.Command, s *session, _ []string) error {
	if err := s.store.ClearShoppingList(cmd.Context()); err != nil {
		return fmt.Errorf("shop clear: %w", err)
	}
	s.out.Success("shopping list cleared")
	return nil
}
