// Package config loads mealbook's runtime configuration through viper.
// Values come from .mealbook.yaml, MEALBOOK_* environment variables (dots
// in keys become underscores, so data.path is MEALBOOK_DATA_PATH) and CLI
// flags, over the built-in defaults set here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Backend names accepted for data.backend.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Sentinel errors.
var (
	// ErrInvalidBackend is returned when data.backend names no known backend.
	ErrInvalidBackend = errors.New("invalid data backend")
	// ErrInvalidWeekStart is returned when planner.week_start is neither
	// sunday nor monday.
	ErrInvalidWeekStart = errors.New("invalid planner week start")
)

// DataConfig selects where collections are persisted.
type DataConfig struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
}

// CardsConfig locates the recipe card directory.
type CardsConfig struct {
	Dir string `mapstructure:"dir"`
}

// LogConfig controls the zerolog logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// PlannerConfig controls the week view.
type PlannerConfig struct {
	WeekStart string `mapstructure:"week_start"`
}

// Config holds all runtime configuration for a mealbook session.
type Config struct {
	Data    DataConfig    `mapstructure:"data"`
	Cards   CardsConfig   `mapstructure:"cards"`
	Log     LogConfig     `mapstructure:"log"`
	Planner PlannerConfig `mapstructure:"planner"`
	Verbose bool          `mapstructure:"verbose"`
}

// DefaultDataPath is the SQLite file used when data.path is unset.
func DefaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".mealbook", "mealbook.db")
	}
	return filepath.Join(home, ".mealbook", "mealbook.db")
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("data.backend", BackendSQLite)
	viper.SetDefault("data.path", DefaultDataPath())
	viper.SetDefault("cards.dir", "recipes")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.pretty", true)
	viper.SetDefault("planner.week_start", "sunday")
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	switch c.Data.Backend {
	case BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("config: %w: %q (want %s or %s)", ErrInvalidBackend, c.Data.Backend, BackendSQLite, BackendMemory)
	}
	switch strings.ToLower(c.Planner.WeekStart) {
	case "sunday", "monday":
	default:
		return fmt.Errorf("config: %w: %q", ErrInvalidWeekStart, c.Planner.WeekStart)
	}
	return nil
}

// BindEnv wires MEALBOOK_* environment variables into viper.
func BindEnv() {
	viper.SetEnvPrefix("MEALBOOK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}
