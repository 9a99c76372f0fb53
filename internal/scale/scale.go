// Package scale rescales free-text recipe quantities such as "2 cups" or
// "1/2 tsp" by a servings multiplier and formats the result the way a cook
// would write it.
//
// Scaling is best effort. Text without a numeric prefix comes back
// unchanged, and malformed fractions or zero denominators are not guarded:
// they surface as "NaN" or "Infinity" in the output.
package scale

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/papapumpkin/mealbook/internal/model"
)

// quantityRe splits a quantity into its numeric token and unit text. The
// separator takes Unicode spaces such as NBSP as well as ASCII whitespace.
var quantityRe = regexp.MustCompile(`^([\d./]+)[\s\x0B\p{Zs}\x{2028}\x{2029}\x{FEFF}]*(.*)$`)

// leadingNumber is the longest decimal number at the start of a token.
var leadingNumber = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)`)

// commonFractions is checked in order; the first within fractionTolerance of
// the rounded value wins.
var commonFractions = []struct {
	value float64
	text  string
}{
	{0.25, "1/4"},
	{0.33, "1/3"},
	{0.5, "1/2"},
	{0.66, "2/3"},
	{0.75, "3/4"},
}

const fractionTolerance = 0.05

// Quantity multiplies the numeric prefix of text by multiplier and reattaches
// the unit. Text that does not start with a number is returned as is.
func Quantity(text string, multiplier float64) string {
	amount, unit, ok := Parse(text)
	if !ok {
		return text
	}
	out := Format(amount * multiplier)
	if unit != "" {
		out += " " + unit
	}
	return out
}

// Parse splits text into its numeric amount and unit. A token with a slash
// is read as numerator/denominator from its first two parts. ok is false
// when text has no numeric prefix at all; a prefix that holds no digits
// parses as NaN.
func Parse(text string) (amount float64, unit string, ok bool) {
	m := quantityRe.FindStringSubmatch(text)
	if m == nil {
		return 0, "", false
	}
	token, unit := m[1], m[2]
	if strings.Contains(token, "/") {
		parts := strings.Split(token, "/")
		return parseNumber(parts[0]) / parseNumber(parts[1]), unit, true
	}
	return parseNumber(token), unit, true
}

func parseNumber(s string) float64 {
	m := leadingNumber.FindString(s)
	if m == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Format renders a scaled amount: whole numbers without a decimal point,
// amounts below one as a common fraction when one is close, and everything
// else with two decimals.
func Format(v float64) string {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return fixed2(v)
	case v == math.Trunc(v):
		if v == 0 {
			return "0"
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case v < 1:
		return fraction(v)
	default:
		return fixed2(v)
	}
}

func fraction(v float64) string {
	rounded := roundHalfUp(v*100) / 100
	for _, f := range commonFractions {
		if math.Abs(f.value-rounded) < fractionTolerance {
			return f.text
		}
	}
	return fixed2(v)
}

// roundHalfUp rounds to the nearest integer with ties toward +Inf.
func roundHalfUp(x float64) float64 {
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return r
}

// fixed2 formats v with two decimals. Exact binary ties round away from
// zero, so 0.125 prints as 0.13.
func fixed2(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	abs := math.Abs(v)
	switch abs - math.Floor(abs) {
	case 0.125, 0.375, 0.625, 0.875:
		cents := int64(math.Floor(abs*100)) + 1
		sign := ""
		if v < 0 {
			sign = "-"
		}
		return sign + strconv.FormatInt(cents/100, 10) + "." + pad2(cents%100)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}

// Recipe returns r's ingredient lines scaled from r.Servings to servings.
// Names are kept; only quantities change.
func Recipe(r model.Recipe, servings int) []model.RecipeIngredient {
	multiplier := float64(servings) / float64(r.Servings)
	out := make([]model.RecipeIngredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		out = append(out, model.RecipeIngredient{
			Name:     ing.Name,
			Quantity: Quantity(ing.Quantity, multiplier),
		})
	}
	return out
}
