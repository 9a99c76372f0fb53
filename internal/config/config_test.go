package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Data.Backend", cfg.Data.Backend, BackendSQLite},
		{"Data.Path", cfg.Data.Path, DefaultDataPath()},
		{"Cards.Dir", cfg.Cards.Dir, "recipes"},
		{"Log.Level", cfg.Log.Level, "info"},
		{"Log.Pretty", cfg.Log.Pretty, true},
		{"Planner.WeekStart", cfg.Planner.WeekStart, "sunday"},
		{"Verbose", cfg.Verbose, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{
			name:   "data.backend",
			envKey: "MEALBOOK_DATA_BACKEND",
			envVal: "memory",
			field:  func(c Config) any { return c.Data.Backend },
			want:   BackendMemory,
		},
		{
			name:   "data.path",
			envKey: "MEALBOOK_DATA_PATH",
			envVal: "/tmp/meals.db",
			field:  func(c Config) any { return c.Data.Path },
			want:   "/tmp/meals.db",
		},
		{
			name:   "cards.dir",
			envKey: "MEALBOOK_CARDS_DIR",
			envVal: "/srv/cards",
			field:  func(c Config) any { return c.Cards.Dir },
			want:   "/srv/cards",
		},
		{
			name:   "log.level",
			envKey: "MEALBOOK_LOG_LEVEL",
			envVal: "debug",
			field:  func(c Config) any { return c.Log.Level },
			want:   "debug",
		},
		{
			name:   "log.pretty",
			envKey: "MEALBOOK_LOG_PRETTY",
			envVal: "false",
			field:  func(c Config) any { return c.Log.Pretty },
			want:   false,
		},
		{
			name:   "planner.week_start",
			envKey: "MEALBOOK_PLANNER_WEEK_START",
			envVal: "monday",
			field:  func(c Config) any { return c.Planner.WeekStart },
			want:   "monday",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			BindEnv()
			t.Setenv(tt.envKey, tt.envVal)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			got := tt.field(cfg)
			if got != tt.want {
				t.Errorf("%s: got %v (%T), want %v (%T)", tt.name, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	resetViper()

	path := filepath.Join(t.TempDir(), ".mealbook.yaml")
	body := "data:\n  backend: memory\nplanner:\n  week_start: monday\ncards:\n  dir: cards\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Data.Backend != BackendMemory || cfg.Planner.WeekStart != "monday" || cfg.Cards.Dir != "cards" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("unset key lost its default: log.level = %q", cfg.Log.Level)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr error
	}{
		{name: "backend", key: "data.backend", value: "postgres", wantErr: ErrInvalidBackend},
		{name: "week start", key: "planner.week_start", value: "friday", wantErr: ErrInvalidWeekStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			viper.Set(tt.key, tt.value)

			_, err := Load()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
