package filter

import (
	"strings"

	"github.com/papapumpkin/mealbook/internal/model"
)

// Check is a single named predicate in the filter chain.
type Check struct {
	Name string
	Fn   func(m model.Meal) bool
}

// Chain runs checks in order, stopping on the first one a meal fails.
type Chain struct {
	Checks []Check
}

// Result is the outcome of running a chain over one meal.
type Result struct {
	Passed bool          // true if every check passed
	Checks []CheckResult // checks run, up to and including the first failure
}

// CheckResult is the outcome of a single check.
type CheckResult struct {
	Name   string // "search", "category", "rating", "favorite"
	Passed bool
}

// FirstFailure returns the check that rejected the meal, or nil if all
// passed.
func (r Result) FirstFailure() *CheckResult {
	for i := range r.Checks {
		if !r.Checks[i].Passed {
			return &r.Checks[i]
		}
	}
	return nil
}

// Run evaluates each check against m in sequence.
func (c *Chain) Run(m model.Meal) Result {
	result := Result{Passed: true}
	for _, check := range c.Checks {
		ok := check.Fn(m)
		result.Checks = append(result.Checks, CheckResult{Name: check.Name, Passed: ok})
		if !ok {
			result.Passed = false
			return result
		}
	}
	return result
}

// Match reports whether m passes every check.
func (c *Chain) Match(m model.Meal) bool {
	for _, check := range c.Checks {
		if !check.Fn(m) {
			return false
		}
	}
	return true
}

// NewChain compiles criteria into checks. Criteria left at their zero value
// add no check, so an empty Criteria yields a chain that matches all.
func NewChain(c Criteria) *Chain {
	var checks []Check
	if c.Search != "" {
		checks = append(checks, Check{Name: "search", Fn: searchCheck(c.Search)})
	}
	if c.Category != "" {
		checks = append(checks, Check{Name: "category", Fn: func(m model.Meal) bool {
			return m.Category == c.Category
		}})
	}
	if c.MinRating != 0 {
		checks = append(checks, Check{Name: "rating", Fn: func(m model.Meal) bool {
			return m.Rating >= c.MinRating
		}})
	}
	if c.FavoriteOnly {
		checks = append(checks, Check{Name: "favorite", Fn: func(m model.Meal) bool {
			return m.Favorite
		}})
	}
	return &Chain{Checks: checks}
}

func searchCheck(term string) func(model.Meal) bool {
	term = strings.ToLower(term)
	return func(m model.Meal) bool {
		if strings.Contains(strings.ToLower(m.Name), term) {
			return true
		}
		for _, tag := range m.Tags {
			if strings.Contains(strings.ToLower(tag), term) {
				return true
			}
		}
		return false
	}
}
