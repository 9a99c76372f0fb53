// Package filter narrows and orders the meal collection for listing. Search,
// category, rating and favorite criteria compile into a Chain of named
// checks; a SortKey picks one of the fixed orderings. Nothing here mutates
// its input.
package filter

import (
	"errors"
	"fmt"

	"github.com/papapumpkin/mealbook/internal/model"
)

// ErrUnknownSortKey is returned by ParseSortKey for names outside the fixed
// set.
var ErrUnknownSortKey = errors.New("unknown sort key")

// Criteria selects meals. Zero fields match everything.
type Criteria struct {
	Search       string // case-insensitive substring of the name or any tag
	Category     string // exact category
	MinRating    int    // lowest rating kept
	FavoriteOnly bool   // keep favorites only
}

// SortKey names an ordering of the meal list.
type SortKey string

// Sort keys. The empty key keeps collection order.
const (
	SortNone         SortKey = ""
	SortNameAsc      SortKey = "name-asc"
	SortNameDesc     SortKey = "name-desc"
	SortRatingDesc   SortKey = "rating-desc"
	SortRatingAsc    SortKey = "rating-asc"
	SortNewest       SortKey = "newest"
	SortOldest       SortKey = "oldest"
	SortRecentlyMade SortKey = "recently-made"
	SortMostMade     SortKey = "most-made"
)

// SortKeys lists every non-empty sort key.
func SortKeys() []SortKey {
	return []SortKey{
		SortNameAsc, SortNameDesc, SortRatingDesc, SortRatingAsc,
		SortNewest, SortOldest, SortRecentlyMade, SortMostMade,
	}
}

// ParseSortKey validates a sort key name. The empty string is SortNone.
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortNone, nil
	}
	for _, k := range SortKeys() {
		if string(k) == s {
			return k, nil
		}
	}
	return SortNone, fmt.Errorf("filter: %w: %q", ErrUnknownSortKey, s)
}

// Apply returns the meals matching c, ordered by key. The result is a new
// slice; meals is left as it was.
func Apply(meals []model.Meal, c Criteria, key SortKey) []model.Meal {
	chain := NewChain(c)
	out := make([]model.Meal, 0, len(meals))
	for _, m := range meals {
		if chain.Match(m) {
			out = append(out, m)
		}
	}
	Sort(out, key)
	return out
}
