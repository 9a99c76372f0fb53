package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Requirement marks a meal ingredient as required or optional.
type Requirement string

// Requirement values.
const (
	Required Requirement = "required"
	Optional Requirement = "optional"
)

// MealIngredient is one ingredient of a meal. Older meal data stored a bare
// string name; such entries decode as a required ingredient of that name and
// are always written back in the detailed object form.
type MealIngredient struct {
	Name     string      `json:"name"`
	Required Requirement `json:"required"`
}

// PlainIngredient returns the detailed form of a legacy bare-name ingredient.
func PlainIngredient(name string) MealIngredient {
	return MealIngredient{Name: name, Required: Required}
}

// IsOptional reports whether the ingredient is marked optional.
func (mi MealIngredient) IsOptional() bool {
	return mi.Required == Optional
}

// UnmarshalJSON accepts either a bare JSON string or a {name, required}
// object. A missing requirement reads as Required.
func (mi *MealIngredient) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return fmt.Errorf("meal ingredient: %w", err)
		}
		*mi = PlainIngredient(name)
		return nil
	}

	// Alias drops the method set so Unmarshal does not recurse.
	type detailed MealIngredient
	var d detailed
	if err := json.Unmarshal(data, &d); err != nil {
		return fmt.Errorf("meal ingredient: %w", err)
	}
	if d.Required == "" {
		d.Required = Required
	}
	*mi = MealIngredient(d)
	return nil
}

// StripBlankMealIngredients drops ingredients whose name is blank.
func StripBlankMealIngredients(in []MealIngredient) []MealIngredient {
	out := make([]MealIngredient, 0, len(in))
	for _, ing := range in {
		if !Blank(ing.Name) {
			out = append(out, ing)
		}
	}
	return out
}

// StripBlankRecipeIngredients drops ingredient lines whose name is blank.
func StripBlankRecipeIngredients(in []RecipeIngredient) []RecipeIngredient {
	out := make([]RecipeIngredient, 0, len(in))
	for _, ing := range in {
		if !Blank(ing.Name) {
			out = append(out, ing)
		}
	}
	return out
}
