// Package ui renders mealbook records for the terminal. Listings and
// details go to the output writer; status lines (done, info, errors) go to
// the status writer, normally stderr, so output stays pipeable.
package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/papapumpkin/mealbook/internal/model"
	"github.com/papapumpkin/mealbook/internal/planner"
)

// Printer writes styled output.
type Printer struct {
	out    io.Writer
	status io.Writer
	st     styles
	now    func() time.Time
}

// New returns a printer writing records to out and status lines to status.
// dark selects the dark-background palette.
func New(out, status io.Writer, dark bool) *Printer {
	r := lipgloss.NewRenderer(out)
	r.SetHasDarkBackground(dark)
	return &Printer{out: out, status: status, st: newStyles(r), now: time.Now}
}

// Success prints a confirmation line.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.status, p.st.success.Render(iconDone)+" "+fmt.Sprintf(format, args...))
}

// Info prints a de-emphasized status line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintln(p.status, p.st.dim.Render(iconInfo+" "+fmt.Sprintf(format, args...)))
}

// Warn prints a warning line.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintln(p.status, p.st.warn.Render(iconWarn)+" "+fmt.Sprintf(format, args...))
}

// Error prints an error line.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.status, p.st.danger.Render(iconFailed+" error:")+" "+msg)
}

// Stars renders a 0-5 rating as filled and empty stars. Out-of-range
// ratings are clamped.
func Stars(rating int) string {
	rating = max(0, min(rating, model.MaxRating))
	return strings.Repeat("★", rating) + strings.Repeat("☆", model.MaxRating-rating)
}

// TimeAgo describes when a meal was last made relative to now: "Today",
// "Yesterday", then go-humanize's relative form ("3 days ago").
func TimeAgo(then, now time.Time) string {
	days := int(now.Sub(then).Abs().Hours() / 24)
	switch days {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	}
	return humanize.RelTime(then, now, "ago", "from now")
}

func (p *Printer) favorite(on bool) string {
	if on {
		return p.st.star.Render(iconFavorite)
	}
	return p.st.dim.Render(iconPlain)
}

func (p *Printer) tags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return p.st.dim.Render("#" + strings.Join(tags, " #"))
}

func (p *Printer) nutrition(n model.Nutrition) string {
	var parts []string
	add := func(v *float64, unit string) {
		if v != nil && *v != 0 {
			parts = append(parts, humanize.Ftoa(*v)+unit)
		}
	}
	add(n.Calories, " cal")
	add(n.Protein, "g protein")
	add(n.Carbs, "g carbs")
	add(n.Fat, "g fat")
	return strings.Join(parts, ", ")
}

// Meals prints one line per meal.
func (p *Printer) Meals(meals []model.Meal) {
	if len(meals) == 0 {
		p.Info("no meals")
		return
	}
	for _, m := range meals {
		line := fmt.Sprintf("%s %d  %s  %s  %s",
			p.favorite(m.Favorite), m.ID, p.st.star.Render(Stars(m.Rating)),
			p.st.text.Bold(true).Render(m.Name), p.st.badge.Render(m.Category))
		if made := p.lastMade(m); made != "" {
			line += "  " + p.st.dim.Render(made)
		}
		if tags := p.tags(m.Tags); tags != "" {
			line += "  " + tags
		}
		fmt.Fprintln(p.out, line)
	}
}

func (p *Printer) lastMade(m model.Meal) string {
	t, ok := model.ParseTimestamp(m.LastMade)
	if !ok {
		return ""
	}
	s := "made " + TimeAgo(t, p.now())
	if m.TimesMade > 0 {
		s += fmt.Sprintf(" (%dx total)", m.TimesMade)
	}
	return s
}

// Meal prints a meal's full detail in a bordered panel.
func (p *Printer) Meal(m model.Meal) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s\n", p.st.title.Render(m.Name), p.favorite(m.Favorite), p.st.dim.Render(fmt.Sprintf("#%d", m.ID)))
	fmt.Fprintf(&b, "%s  %s\n", p.st.badge.Render(m.Category), p.st.star.Render(Stars(m.Rating)))
	if made := p.lastMade(m); made != "" {
		fmt.Fprintln(&b, p.st.dim.Render(made))
	}
	if tags := p.tags(m.Tags); tags != "" {
		fmt.Fprintln(&b, tags)
	}
	if n := p.nutrition(m.Nutrition); n != "" {
		fmt.Fprintln(&b, n)
	}
	if len(m.Ingredients) > 0 {
		fmt.Fprintln(&b, p.st.header.Render("Ingredients"))
		for _, ing := range m.Ingredients {
			line := "  • " + ing.Name
			if ing.IsOptional() {
				line += p.st.dim.Render(" (optional)")
			}
			fmt.Fprintln(&b, line)
		}
	}
	if m.Notes != "" {
		fmt.Fprintln(&b, p.st.header.Render("Notes"))
		fmt.Fprintln(&b, m.Notes)
	}
	fmt.Fprintln(p.out, p.st.detail.Render(strings.TrimRight(b.String(), "\n")))
}

// Recipes prints one line per recipe.
func (p *Printer) Recipes(recipes []model.Recipe) {
	if len(recipes) == 0 {
		p.Info("no recipes")
		return
	}
	for _, r := range recipes {
		line := fmt.Sprintf("%s %d  %s  %s",
			p.favorite(r.Favorite), r.ID, p.st.text.Bold(true).Render(r.Name),
			p.st.dim.Render(fmt.Sprintf("%d servings · %d min · %s", r.Servings, r.TotalTime(), r.EffectiveDifficulty())))
		if tags := p.tags(r.Tags); tags != "" {
			line += "  " + tags
		}
		fmt.Fprintln(p.out, line)
	}
}

// Recipe prints a recipe's detail with ingredients shown for servings.
// Pass the recipe's own ingredients and servings for the unscaled view.
func (p *Printer) Recipe(r model.Recipe, ingredients []model.RecipeIngredient, servings int) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s\n", p.st.title.Render(r.Name), p.favorite(r.Favorite), p.st.dim.Render(fmt.Sprintf("#%d", r.ID)))
	meta := fmt.Sprintf("%d servings · prep %d min · cook %d min · %s", servings, r.PrepTime, r.CookTime, r.EffectiveDifficulty())
	if servings != r.Servings {
		meta += fmt.Sprintf(" (scaled from %d)", r.Servings)
	}
	fmt.Fprintln(&b, p.st.dim.Render(meta))
	if tags := p.tags(r.Tags); tags != "" {
		fmt.Fprintln(&b, tags)
	}
	if n := p.nutrition(r.Nutrition); n != "" {
		fmt.Fprintln(&b, n)
	}
	if len(ingredients) > 0 {
		fmt.Fprintln(&b, p.st.header.Render("Ingredients"))
		for _, ing := range ingredients {
			fmt.Fprintf(&b, "  • %s %s\n", p.st.badge.Render(ing.Quantity), ing.Name)
		}
	}
	if r.Instructions != "" {
		fmt.Fprintln(&b, p.st.header.Render("Instructions"))
		fmt.Fprintln(&b, r.Instructions)
	}
	fmt.Fprintln(p.out, p.st.detail.Render(strings.TrimRight(b.String(), "\n")))
}

// Ingredients prints the ingredient library.
func (p *Printer) Ingredients(list []model.Ingredient) {
	if len(list) == 0 {
		p.Info("no ingredients")
		return
	}
	for _, ing := range list {
		fmt.Fprintf(p.out, "%d  %s  %s\n", ing.ID, ing.Name, p.st.badge.Render(ing.Category))
	}
}

func (p *Printer) slots(b *strings.Builder, slots map[model.Slot]model.PlanItem) {
	for _, slot := range model.Slots() {
		name := p.st.dim.Render(iconEmpty)
		if item, ok := slots[slot]; ok {
			name = item.Name() + p.st.dim.Render(" ("+string(item.Kind)+")")
		}
		fmt.Fprintf(b, "  %s %s\n", p.st.slotName.Render(string(slot)), name)
	}
}

// Day prints the three slots of one date.
func (p *Printer) Day(date string, slots map[model.Slot]model.PlanItem) {
	var b strings.Builder
	fmt.Fprintln(&b, p.st.title.Render(date))
	p.slots(&b, slots)
	fmt.Fprint(p.out, b.String())
}

// Week prints a week view, one block per day.
func (p *Printer) Week(days []planner.Day) {
	if len(days) > 0 {
		fmt.Fprintln(p.out, p.st.header.Render(days[0].Date+" - "+days[len(days)-1].Date))
	}
	var b strings.Builder
	for _, d := range days {
		fmt.Fprintf(&b, "%s %s\n", p.st.title.Render(d.Weekday.String()), p.st.dim.Render(d.Date))
		p.slots(&b, d.Slots)
	}
	fmt.Fprint(p.out, b.String())
}

// ShoppingList prints the list with its indexes, checked items struck out.
func (p *Printer) ShoppingList(items []model.ShoppingItem) {
	if len(items) == 0 {
		p.Info("shopping list is empty")
		return
	}
	for i, item := range items {
		box := "[ ]"
		name := item.Name
		if item.Checked {
			box = "[x]"
			name = p.st.checked.Render(name)
		}
		line := fmt.Sprintf("%2d %s %s", i, box, name)
		if item.Count > 1 {
			line += p.st.dim.Render(fmt.Sprintf(" ×%d", item.Count))
		}
		fmt.Fprintln(p.out, line)
	}
}

// Suggestion prints a random pick with a short preview of its ingredients.
func (p *Printer) Suggestion(item model.PlanItem) {
	var b strings.Builder
	switch {
	case item.Meal != nil:
		m := item.Meal
		fmt.Fprintf(&b, "%s  %s\n", p.st.title.Render(m.Name), p.st.badge.Render(categoryOr(m.Category, "Meal")))
		if m.Rating > 0 {
			fmt.Fprintln(&b, p.st.star.Render(Stars(m.Rating)))
		}
	case item.Recipe != nil:
		r := item.Recipe
		fmt.Fprintf(&b, "%s  %s\n", p.st.title.Render(r.Name), p.st.badge.Render("Recipe"))
		fmt.Fprintln(&b, p.st.dim.Render(fmt.Sprintf("%d min · %d servings", r.TotalTime(), r.Servings)))
	}
	names := item.IngredientNames()
	const preview = 5
	for i, name := range names {
		if i == preview {
			fmt.Fprintf(&b, "  …and %d more\n", len(names)-preview)
			break
		}
		fmt.Fprintf(&b, "  • %s\n", name)
	}
	fmt.Fprintln(p.out, p.st.detail.Render(strings.TrimRight(b.String(), "\n")))
}

func categoryOr(category, fallback string) string {
	if category == "" {
		return fallback
	}
	return category
}

// Exported reports a written export or card file.
func (p *Printer) Exported(path string, size int) {
	p.Success("wrote %s (%s)", path, humanize.Bytes(uint64(size)))
}
