// Package cmd provides the mealbook command line.
//
// root.go defines the root command, configuration loading and the session
// helper every subcommand uses to reach the store.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/mealbook/internal/config"
	"github.com/papapumpkin/mealbook/internal/kv"
	"github.com/papapumpkin/mealbook/internal/logger"
	"github.com/papapumpkin/mealbook/internal/store"
	"github.com/papapumpkin/mealbook/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "mealbook",
	Short: "Personal meal planner",
	Long: `mealbook keeps a book of meals and recipes, plans them into breakfast,
lunch and dinner slots, scales recipe quantities and builds a shopping list
from the plan. Data lives in a local SQLite file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.New(os.Stdout, os.Stderr, false).Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .mealbook.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("db", "", "SQLite database path (default ~/.mealbook/mealbook.db)")
	rootCmd.PersistentFlags().Bool("memory", false, "keep data in memory for this run only")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".mealbook")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	config.BindEnv()
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("data.path", rootCmd.PersistentFlags().Lookup("db"))

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// session bundles what a command needs: the loaded config, the open store,
// a logger and a printer bound to the command's writers.
type session struct {
	cfg   config.Config
	store *store.Store
	log   zerolog.Logger
	out   *ui.Printer

	closer io.Closer
}

// openSession loads config and opens the store on the configured backend.
// The caller must Close the session.
func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if mem, _ := cmd.Flags().GetBool("memory"); mem {
		cfg.Data.Backend = config.BackendMemory
	}

	level := cfg.Log.Level
	if cfg.Verbose {
		level = zerolog.LevelDebugValue
	}
	log := logger.New(cmd.ErrOrStderr(), level, cfg.Log.Pretty)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		backing kv.Backing
		closer  io.Closer
	)
	switch cfg.Data.Backend {
	case config.BackendMemory:
		backing = kv.NewMemory()
	default:
		db, err := kv.OpenSQLite(ctx, cfg.Data.Path)
		if err != nil {
			return nil, err
		}
		backing, closer = db, db
	}

	s, err := store.Open(ctx, backing, store.WithLogger(log))
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, err
	}
	log.Debug().Str("backend", cfg.Data.Backend).Str("path", cfg.Data.Path).Msg("session opened")

	return &session{
		cfg:    cfg,
		store:  s,
		log:    log,
		out:    ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), s.DarkMode()),
		closer: closer,
	}, nil
}

// Close releases the backing database, if any.
func (s *session) Close() {
	if s.closer == nil {
		return
	}
	if err := s.closer.Close(); err != nil {
		s.log.Warn().Stack().Err(err).Msg("close database")
	}
}

// withSession wraps a command body that needs a session.
func withSession(fn func(cmd *cobra.Command, s *session, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		return fn(cmd, s, args)
	}
}
