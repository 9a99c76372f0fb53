package store

import (
	"context"
	"fmt"
	"strconv"
)

// DarkMode returns the stored dark-mode preference.
func (s *Store) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.darkMode
}

// SetDarkMode stores the dark-mode preference as "true" or "false".
func (s *Store) SetDarkMode(ctx context.Context, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.darkMode = on
	if err := s.backing.Set(ctx, KeyDarkMode, strconv.FormatBool(on)); err != nil {
		return fmt.Errorf("store: persist %s: %w", KeyDarkMode, err)
	}
	return nil
}
