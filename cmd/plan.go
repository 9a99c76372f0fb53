package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/mealbook/internal/model"
	"github.com/papapumpkin/mealbook/internal/planner"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan meals and recipes into daily slots",
	Long: `Each date has breakfast, lunch and dinner slots. Planning copies the
meal or recipe into the slot, so later edits to the original do not change
what is planned.`,
}

func init() {
	setCmd := &cobra.Command{
		Use:   "set DATE SLOT",
		Short: "Put a meal or recipe into a slot",
		Args:  cobra.ExactArgs(2),
		RunE:  withSession(runPlanSet),
	}
	setCmd.Flags().Int64("meal", 0, "meal id")
	setCmd.Flags().Int64("recipe", 0, "recipe id")
	setCmd.MarkFlagsMutuallyExclusive("meal", "recipe")
	setCmd.MarkFlagsOneRequired("meal", "recipe")

	weekCmd := &cobra.Command{
		Use:   "week [DATE]",
		Short: "Show the week containing DATE (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  withSession(runPlanWeek),
	}
	weekCmd.Flags().Int("offset", 0, "weeks to move from DATE, e.g. 1 for next week")

	planCmd.AddCommand(
		setCmd,
		weekCmd,
		&cobra.Command{Use: "clear DATE SLOT", Short: "Empty a slot", Args: cobra.ExactArgs(2), RunE: withSession(runPlanClear)},
		&cobra.Command{Use: "day DATE", Short: "Show one day's slots", Args: cobra.ExactArgs(1), RunE: withSession(runPlanDay)},
	)
	rootCmd.AddCommand(planCmd)
}

func parseDateSlot(dateArg, slotArg string) (string, model.Slot, error) {
	if _, err := parseDate(dateArg); err != nil {
		return "", "", err
	}
	slot, err := model.ParseSlot(slotArg)
	if err != nil {
		return "", "", err
	}
	return dateArg, slot, nil
}

func runPlanSet(cmd *cobra.Command, s *session, args []string) error {
	date, slot, err := parseDateSlot(args[0], args[1])
	if err != nil {
		return err
	}
	mealID, _ := cmd.Flags().GetInt64("meal")
	recipeID, _ := cmd.Flags().GetInt64("recipe")

	var found bool
	if cmd.Flags().Changed("meal") {
		found, err = s.store.PlanMeal(cmd.Context(), date, slot, mealID)
	} else {
		found, err = s.store.PlanRecipe(cmd.Context(), date, slot, recipeID)
	}
	if err != nil {
		return fmt.Errorf("plan set: %w", err)
	}
	if !found {
		return fmt.Errorf("plan set: nothing with that id to plan")
	}
	item := s.store.DaySlots(date)[slot]
	s.out.Success("planned %s for %s %s", item.Name(), date, slot)
	return nil
}

func runPlanClear(cmd *cobra.Command, s *session, args []string) error {
	date, slot, err := parseDateSlot(args[0], args[1])
	if err != nil {
		return err
	}
	if err := s.store.ClearSlot(cmd.Context(), date, slot); err != nil {
		return fmt.Errorf("plan clear: %w", err)
	}
	s.out.Success("cleared %s %s", date, slot)
	return nil
}

func runPlanDay(_ *cobra.Command, s *session, args []string) error {
	if _, err := parseDate(args[0]); err != nil {
		return err
	}
	s.out.Day(args[0], s.store.DaySlots(args[0]))
	return nil
}

func runPlanWeek(cmd *cobra.Command, s *session, args []string) error {
	anchor := time.Now()
	if len(args) == 1 {
		t, err := parseDate(args[0])
		if err != nil {
			return err
		}
		anchor = t
	}
	offset, _ := cmd.Flags().GetInt("offset")
	start, err := planner.ParseWeekStart(s.cfg.Planner.WeekStart)
	if err != nil {
		return err
	}
	dates := planner.Week(planner.Shift(anchor, offset), start)
	s.out.Week(planner.WeekView(s.store, dates))
	return nil
}
