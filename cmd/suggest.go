package cmd

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/mealbook/internal/planner"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Pick a random meal or recipe",
	Long: `Picks uniformly across all meals and recipes. With --plan DATE,SLOT the
pick is also put into that slot.`,
	Args: cobra.NoArgs,
	RunE: withSession(runSuggest),
}

func init() {
	suggestCmd.Flags().StringSlice("plan", nil, "plan the pick into DATE,SLOT")
	suggestCmd.Flags().Uint64("seed", 0, "random seed (0 picks one from the clock)")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, s *session, _ []string) error {
	seed, _ := cmd.Flags().GetUint64("seed")
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))

	item, ok := planner.Suggest(s.store.Meals(), s.store.Recipes(), rng)
	if !ok {
		s.out.Info("no meals or recipes to suggest yet")
		return nil
	}
	s.out.Suggestion(item)

	target, _ := cmd.Flags().GetStringSlice("plan")
	if len(target) == 0 {
		return nil
	}
	if len(target) != 2 {
		return fmt.Errorf("suggest: --plan wants DATE,SLOT")
	}
	date, slot, err := parseDateSlot(target[0], target[1])
	if err != nil {
		return err
	}
	if err := s.store.SetSlot(cmd.Context(), date, slot, item); err != nil {
		return fmt.Errorf("suggest: %w", err)
	}
	s.out.Success("planned %s for %s %s", item.Name(), date, slot)
	return nil
}
