// Package planner builds the weekly view of the meal plan and picks random
// suggestions across the meal and recipe collections.
package planner

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/papapumpkin/mealbook/internal/model"
)

// DaysPerWeek is the length of a planner week.
const DaysPerWeek = 7

// ParseWeekStart reads "sunday" or "monday", ignoring case.
func ParseWeekStart(s string) (time.Weekday, error) {
	switch strings.ToLower(s) {
	case "sunday", "":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	}
	return time.Sunday, fmt.Errorf("planner: unknown week start %q (want sunday or monday)", s)
}

// StartOfWeek returns midnight of the first day of the week containing
// anchor, in anchor's location.
func StartOfWeek(anchor time.Time, start time.Weekday) time.Time {
	y, m, d := anchor.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, anchor.Location())
	back := (int(day.Weekday()) - int(start) + DaysPerWeek) % DaysPerWeek
	return day.AddDate(0, 0, -back)
}

// Week returns the seven calendar dates of the week containing anchor as
// plan-key dates (YYYY-MM-DD), starting on start.
func Week(anchor time.Time, start time.Weekday) []string {
	first := StartOfWeek(anchor, start)
	dates := make([]string, 0, DaysPerWeek)
	for i := range DaysPerWeek {
		dates = append(dates, first.AddDate(0, 0, i).Format(model.DateLayout))
	}
	return dates
}

// Shift moves anchor by whole weeks, backwards for negative n.
func Shift(anchor time.Time, weeks int) time.Time {
	return anchor.AddDate(0, 0, weeks*DaysPerWeek)
}

// DayReader looks up the planned slots of one date.
type DayReader interface {
	DaySlots(date string) map[model.Slot]model.PlanItem
}

// Day is one row of the week view.
type Day struct {
	Date    string
	Weekday time.Weekday
	Slots   map[model.Slot]model.PlanItem
}

// Item returns the snapshot in slot, if any.
func (d Day) Item(slot model.Slot) (model.PlanItem, bool) {
	item, ok := d.Slots[slot]
	return item, ok
}

// WeekView reads the slots of each date from repo. Dates that do not parse
// keep a zero Weekday.
func WeekView(repo DayReader, dates []string) []Day {
	days := make([]Day, 0, len(dates))
	for _, date := range dates {
		day := Day{Date: date, Slots: repo.DaySlots(date)}
		if t, err := time.Parse(model.DateLayout, date); err == nil {
			day.Weekday = t.Weekday()
		}
		days = append(days, day)
	}
	return days
}

// Suggest picks one item uniformly from meals followed by recipes. It
// reports false when both are empty.
func Suggest(meals []model.Meal, recipes []model.Recipe, rng *rand.Rand) (model.PlanItem, bool) {
	total := len(meals) + len(recipes)
	if total == 0 {
		return model.PlanItem{}, false
	}
	i := rng.IntN(total)
	if i < len(meals) {
		return model.MealItem(meals[i]), true
	}
	return model.RecipeItem(recipes[i-len(meals)]), true
}
