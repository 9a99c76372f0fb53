package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Slot is one of the three daily meal plan positions.
type Slot string

// Daily slots in display order.
const (
	SlotBreakfast Slot = "breakfast"
	SlotLunch     Slot = "lunch"
	SlotDinner    Slot = "dinner"
)

// Slots lists the daily slots in display order.
func Slots() []Slot {
	return []Slot{SlotBreakfast, SlotLunch, SlotDinner}
}

// ParseSlot validates a slot name.
func ParseSlot(s string) (Slot, error) {
	switch Slot(s) {
	case SlotBreakfast, SlotLunch, SlotDinner:
		return Slot(s), nil
	}
	return "", fmt.Errorf("unknown slot %q (want breakfast, lunch or dinner)", s)
}

// PlanKey builds the composite "{date}-{slot}" key under which a slot is
// stored.
func PlanKey(date string, slot Slot) string {
	return date + "-" + string(slot)
}

// ItemKind tells whether a plan snapshot came from a meal or a recipe.
type ItemKind string

// Item kinds, also the value of the "type" field in persisted snapshots.
const (
	KindMeal   ItemKind = "meal"
	KindRecipe ItemKind = "recipe"
)

// PlanItem is a snapshot copy of a meal or recipe assigned to a plan slot.
// Exactly one of Meal and Recipe is set, matching Kind. Later edits to the
// original record do not reach the snapshot.
type PlanItem struct {
	Kind   ItemKind
	Meal   *Meal
	Recipe *Recipe
}

// MealItem snapshots m for the plan.
func MealItem(m Meal) PlanItem {
	c := m.Clone()
	return PlanItem{Kind: KindMeal, Meal: &c}
}

// RecipeItem snapshots r for the plan.
func RecipeItem(r Recipe) PlanItem {
	c := r.Clone()
	return PlanItem{Kind: KindRecipe, Recipe: &c}
}

// Name returns the snapshot's name.
func (p PlanItem) Name() string {
	switch {
	case p.Meal != nil:
		return p.Meal.Name
	case p.Recipe != nil:
		return p.Recipe.Name
	}
	return ""
}

// ID returns the id of the record the snapshot was taken from.
func (p PlanItem) ID() int64 {
	switch {
	case p.Meal != nil:
		return p.Meal.ID
	case p.Recipe != nil:
		return p.Recipe.ID
	}
	return 0
}

// IngredientNames returns the snapshot's ingredient names in order,
// whichever record shape it holds.
func (p PlanItem) IngredientNames() []string {
	switch {
	case p.Meal != nil:
		return p.Meal.IngredientNames()
	case p.Recipe != nil:
		return p.Recipe.IngredientNames()
	}
	return nil
}

// IsZero reports whether the item holds no snapshot.
func (p PlanItem) IsZero() bool {
	return p.Meal == nil && p.Recipe == nil
}

// Clone returns a deep copy of p.
func (p PlanItem) Clone() PlanItem {
	c := PlanItem{Kind: p.Kind}
	if p.Meal != nil {
		m := p.Meal.Clone()
		c.Meal = &m
	}
	if p.Recipe != nil {
		r := p.Recipe.Clone()
		c.Recipe = &r
	}
	return c
}

// MarshalJSON writes the record's own fields plus a "type" field.
func (p PlanItem) MarshalJSON() ([]byte, error) {
	var (
		body []byte
		err  error
	)
	switch {
	case p.Meal != nil:
		body, err = json.Marshal(p.Meal)
	case p.Recipe != nil:
		body, err = json.Marshal(p.Recipe)
	default:
		return []byte("null"), nil
	}
	if err != nil {
		return nil, err
	}
	kind := p.Kind
	if kind == "" {
		kind = KindMeal
		if p.Recipe != nil {
			kind = KindRecipe
		}
	}
	typ, _ := json.Marshal(kind)

	var buf bytes.Buffer
	buf.Write(body[:len(body)-1])
	if len(body) > 2 {
		buf.WriteByte(',')
	}
	buf.WriteString(`"type":`)
	buf.Write(typ)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a snapshot. When the "type" field is missing or
// unknown, documents carrying servings or instructions are recipes and
// everything else is a meal.
func (p *PlanItem) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*p = PlanItem{}
		return nil
	}
	var probe struct {
		Type         ItemKind         `json:"type"`
		Servings     *json.RawMessage `json:"servings"`
		Instructions *json.RawMessage `json:"instructions"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("plan item: %w", err)
	}

	kind := probe.Type
	if kind != KindMeal && kind != KindRecipe {
		kind = KindMeal
		if probe.Servings != nil || probe.Instructions != nil {
			kind = KindRecipe
		}
	}

	*p = PlanItem{Kind: kind}
	if kind == KindRecipe {
		var r Recipe
		if err := json.Unmarshal(data, &r); err != nil {
			return fmt.Errorf("plan item: %w", err)
		}
		p.Recipe = &r
		return nil
	}
	var m Meal
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("plan item: %w", err)
	}
	p.Meal = &m
	return nil
}

// PlanEntry is one keyed slot of a MealPlan.
type PlanEntry struct {
	Key  string
	Item PlanItem
}

// MealPlan maps "{date}-{slot}" keys to snapshots and remembers insertion
// order. Overwriting a key keeps its position; deleting and re-adding a key
// moves it to the end. The zero value is an empty plan.
type MealPlan struct {
	keys  []string
	items map[string]PlanItem
}

// NewMealPlan returns an empty plan.
func NewMealPlan() *MealPlan {
	return &MealPlan{items: make(map[string]PlanItem)}
}

// Len returns the number of planned slots.
func (p *MealPlan) Len() int {
	return len(p.keys)
}

// Get returns the snapshot stored under key.
func (p *MealPlan) Get(key string) (PlanItem, bool) {
	item, ok := p.items[key]
	return item, ok
}

// Set stores item under key.
func (p *MealPlan) Set(key string, item PlanItem) {
	if p.items == nil {
		p.items = make(map[string]PlanItem)
	}
	if _, ok := p.items[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.items[key] = item
}

// Delete removes key. Missing keys are ignored.
func (p *MealPlan) Delete(key string) {
	if _, ok := p.items[key]; !ok {
		return
	}
	delete(p.items, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Entries returns the plan's slots in insertion order.
func (p *MealPlan) Entries() []PlanEntry {
	out := make([]PlanEntry, 0, len(p.keys))
	for _, k := range p.keys {
		out = append(out, PlanEntry{Key: k, Item: p.items[k]})
	}
	return out
}

// Clone returns a deep copy of p.
func (p *MealPlan) Clone() *MealPlan {
	c := NewMealPlan()
	for _, k := range p.keys {
		c.Set(k, p.items[k].Clone())
	}
	return c
}

// MarshalJSON writes the plan as a JSON object in insertion order.
func (p *MealPlan) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(p.items[k])
		if err != nil {
			return nil, fmt.Errorf("meal plan %q: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, keeping the document's key order.
func (p *MealPlan) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("meal plan: %w", err)
	}
	*p = MealPlan{items: make(map[string]PlanItem)}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("meal plan: expected a JSON object")
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("meal plan: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("meal plan: unexpected key token %v", tok)
		}
		var item PlanItem
		if err := dec.Decode(&item); err != nil {
			return fmt.Errorf("meal plan %q: %w", key, err)
		}
		p.Set(key, item)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("meal plan: %w", err)
	}
	return nil
}
