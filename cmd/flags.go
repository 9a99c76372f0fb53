package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/mealbook/internal/model"
)

// parseID reads a record id argument.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// parseDate validates a YYYY-MM-DD argument.
func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(model.DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

func validRating(r int) error {
	if r < 0 || r > model.MaxRating {
		return fmt.Errorf("rating must be between 0 and %d", model.MaxRating)
	}
	return nil
}

// addNutritionFlags registers the per-serving nutrition flags.
func addNutritionFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("calories", 0, "calories per serving")
	cmd.Flags().Float64("protein", 0, "protein grams per serving")
	cmd.Flags().Float64("carbs", 0, "carbohydrate grams per serving")
	cmd.Flags().Float64("fat", 0, "fat grams per serving")
}

// nutritionFromFlags builds a Nutrition from the flags that were set. ok is
// false when none of them were.
func nutritionFromFlags(cmd *cobra.Command, base model.Nutrition) (n model.Nutrition, ok bool) {
	n = base
	fields := []struct {
		flag string
		dst  **float64
	}{
		{"calories", &n.Calories},
		{"protein", &n.Protein},
		{"carbs", &n.Carbs},
		{"fat", &n.Fat},
	}
	for _, f := range fields {
		if !cmd.Flags().Changed(f.flag) {
			continue
		}
		v, _ := cmd.Flags().GetFloat64(f.flag)
		*f.dst = &v
		ok = true
	}
	return n, ok
}

// changedString returns a pointer to the flag's value when it was set.
func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

// changedInt returns a pointer to the flag's value when it was set.
func changedInt(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

// changedTags parses the comma-separated --tags flag when it was set.
func changedTags(cmd *cobra.Command) *[]string {
	s := changedString(cmd, "tags")
	if s == nil {
		return nil
	}
	tags := model.ParseTags(*s)
	return &tags
}
