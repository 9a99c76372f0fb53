package filter

import (
	"cmp"
	"slices"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/papapumpkin/mealbook/internal/model"
)

// Sort orders meals in place by key. The sort is stable, and SortNone or an
// unknown key leaves the order alone.
func Sort(meals []model.Meal, key SortKey) {
	less := comparator(key)
	if less == nil {
		return
	}
	slices.SortStableFunc(meals, less)
}

func comparator(key SortKey) func(a, b model.Meal) int {
	switch key {
	case SortNameAsc, SortNameDesc:
		// A Collator is not safe for concurrent use.
		col := collate.New(language.Und)
		if key == SortNameDesc {
			return func(a, b model.Meal) int { return col.CompareString(b.Name, a.Name) }
		}
		return func(a, b model.Meal) int { return col.CompareString(a.Name, b.Name) }
	case SortRatingDesc:
		return func(a, b model.Meal) int { return cmp.Compare(b.Rating, a.Rating) }
	case SortRatingAsc:
		return func(a, b model.Meal) int { return cmp.Compare(a.Rating, b.Rating) }
	case SortNewest:
		return func(a, b model.Meal) int { return cmp.Compare(b.ID, a.ID) }
	case SortOldest:
		return func(a, b model.Meal) int { return cmp.Compare(a.ID, b.ID) }
	case SortRecentlyMade:
		return func(a, b model.Meal) int { return lastMade(b).Compare(lastMade(a)) }
	case SortMostMade:
		return func(a, b model.Meal) int { return cmp.Compare(b.TimesMade, a.TimesMade) }
	}
	return nil
}

// lastMade parses the meal's LastMade. Missing or unreadable values sort as
// the earliest possible time.
func lastMade(m model.Meal) time.Time {
	if t, ok := model.ParseTimestamp(m.LastMade); ok {
		return t
	}
	return time.Time{}
}
