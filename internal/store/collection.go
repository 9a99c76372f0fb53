package store

import "time"

// idGen hands out creation-ordered ids derived from the wall clock. Two
// requests in the same millisecond still get distinct, increasing ids.
type idGen struct {
	last int64
}

func (g *idGen) next(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

func (g *idGen) observe(id int64) {
	if id > g.last {
		g.last = id
	}
}

// collection is an insertion-ordered list of records addressed by id.
type collection[T any] struct {
	key   string
	items []T
	ids   idGen
	id    func(*T) *int64
	clone func(T) T
}

func newCollection[T any](key string, id func(*T) *int64, clone func(T) T) *collection[T] {
	return &collection[T]{key: key, items: []T{}, id: id, clone: clone}
}

// replace swaps in items wholesale and reseeds the id generator.
func (c *collection[T]) replace(items []T) {
	if items == nil {
		items = []T{}
	}
	c.items = items
	c.ids = idGen{}
	for i := range c.items {
		c.ids.observe(*c.id(&c.items[i]))
	}
}

// index returns the position of the first record with id, or -1.
func (c *collection[T]) index(id int64) int {
	for i := range c.items {
		if *c.id(&c.items[i]) == id {
			return i
		}
	}
	return -1
}

// add assigns a fresh id to item and appends it.
func (c *collection[T]) add(item T, now time.Time) int64 {
	id := c.ids.next(now)
	*c.id(&item) = id
	c.items = append(c.items, item)
	return id
}

func (c *collection[T]) get(id int64) (T, bool) {
	i := c.index(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	return c.clone(c.items[i]), true
}

// remove drops every record with id and reports whether any matched.
func (c *collection[T]) remove(id int64) bool {
	kept := c.items[:0]
	removed := false
	for _, item := range c.items {
		if *c.id(&item) == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
	return removed
}

// all returns deep copies of every record in order.
func (c *collection[T]) all() []T {
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, c.clone(item))
	}
	return out
}
