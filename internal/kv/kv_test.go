package kv

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"
)

// testSQLite creates a temporary SQLite backing and registers cleanup.
func testSQLite(t *testing.T) *SQLite {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "test.db")
	s, err := OpenSQLite(context.Background(), path)
	if err != nil {
		t.Fatalf("OpenSQLite(%q): %v", path, err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func backings(t *testing.T) map[string]Backing {
	t.Helper()
	return map[string]Backing{
		"memory": NewMemory(),
		"sqlite": testSQLite(t),
	}
}

func TestBackingGetSet(t *testing.T) {
	t.Parallel()

	for name, b := range backings(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()

			if _, ok, err := b.Get(ctx, "meals"); err != nil || ok {
				t.Fatalf("Get on empty backing = ok %v, err %v; want absent", ok, err)
			}

			if err := b.Set(ctx, "meals", `[]`); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if err := b.Set(ctx, "meals", `[{"id":1}]`); err != nil {
				t.Fatalf("Set overwrite: %v", err)
			}

			got, ok, err := b.Get(ctx, "meals")
			if err != nil || !ok {
				t.Fatalf("Get = ok %v, err %v", ok, err)
			}
			if got != `[{"id":1}]` {
				t.Errorf("Get = %q, want overwritten value", got)
			}
		})
	}
}

func TestSQLitePersistsAcrossOpen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "persist.db")

	s1, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := s1.Set(ctx, "darkMode", "true"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	s1.Close()

	s2, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer s2.Close()

	got, ok, err := s2.Get(ctx, "darkMode")
	if err != nil || !ok || got != "true" {
		t.Errorf("Get after reopen = %q, %v, %v", got, ok, err)
	}
	if s2.Path() != path {
		t.Errorf("Path = %q, want %q", s2.Path(), path)
	}
}

func TestSQLiteWALMode(t *testing.T) {
	t.Parallel()
	s := testSQLite(t)

	var mode string
	if err := s.db.QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("query journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want %q", mode, "wal")
	}
}

func TestMemoryKeysAndWrites(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := NewMemory()

	for i := 0; i < 3; i++ {
		if err := m.Set(ctx, "k"+strconv.Itoa(2-i), "v"); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	if got := m.Writes(); got != 3 {
		t.Errorf("Writes = %d, want 3", got)
	}
	keys := m.Keys()
	if len(keys) != 3 || keys[0] != "k0" || keys[2] != "k2" {
		t.Errorf("Keys = %v, want sorted k0..k2", keys)
	}
}
