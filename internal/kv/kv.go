// Package kv provides the string-keyed backing store mealbook persists its
// collections into. Each key holds one JSON document; the store above it
// always writes whole documents, never deltas.
package kv

import (
	"context"
	"sort"
	"sync"
)

// Backing is opaque string-keyed storage. Get reports ok=false for a key
// that was never set.
type Backing interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Memory is an in-process Backing. It is safe for concurrent use and is
// used for tests and throwaway sessions.
type Memory struct {
	mu   sync.Mutex
	data map[string]string
	sets int
}

// NewMemory returns an empty Memory backing.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get returns the value stored under key.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.sets++
	return nil
}

// Keys returns the stored keys in sorted order.
func (m *Memory) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Writes returns how many Set calls the backing has served.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sets
}

var _ Backing = (*Memory)(nil)
