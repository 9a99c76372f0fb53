package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/mealbook/internal/card"
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Sync recipes with TOML recipe cards",
	Long: `A recipe card is a TOML file holding one recipe. Importing a card whose
name matches a stored recipe updates that recipe; otherwise a new recipe is
added. The card directory defaults to cards.dir from the config.`,
}

func init() {
	cardCmd.AddCommand(
		&cobra.Command{
			Use:   "import PATH",
			Short: "Import a card file, or every card in a directory",
			Args:  cobra.ExactArgs(1),
			RunE:  withSession(runCardImport),
		},
		&cobra.Command{
			Use:   "export ID [FILE]",
			Short: "Write a recipe as a card (default: cards dir, named after the recipe)",
			Args:  cobra.RangeArgs(1, 2),
			RunE:  withSession(runCardExport),
		},
		&cobra.Command{
			Use:   "watch [DIR]",
			Short: "Import cards as they are written until interrupted",
			Args:  cobra.MaximumNArgs(1),
			RunE:  withSession(runCardWatch),
		},
	)
	rootCmd.AddCommand(cardCmd)
}

func runCardImport(cmd *cobra.Command, s *session, args []string) error {
	info, err := os.Stat(args[0])
	if err != nil {
		return fmt.Errorf("card import: %w", err)
	}
	if info.IsDir() {
		n, err := card.ImportDir(cmd.Context(), s.store, args[0])
		if n > 0 {
			s.out.Success("imported %d cards from %s", n, args[0])
		}
		return err
	}
	c, err := card.Load(args[0])
	if err != nil {
		return err
	}
	id, created, err := card.Upsert(cmd.Context(), s.store, c)
	if err != nil {
		return err
	}
	if created {
		s.out.Success("added recipe %d: %s", id, c.Name)
	} else {
		s.out.Success("updated recipe %d: %s", id, c.Name)
	}
	return nil
}

func runCardExport(_ *cobra.Command, s *session, args []string) error {
	r, err := lookupRecipe(s, args[0])
	if err != nil {
		return err
	}
	path := filepath.Join(s.cfg.Cards.Dir, card.FileName(r.Name))
	if len(args) == 2 {
		path = args[1]
	}
	if err := card.Save(path, card.FromRecipe(r)); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("card export: %w", err)
	}
	s.out.Exported(path, int(info.Size()))
	return nil
}

func runCardWatch(cmd *cobra.Command, s *session, args []string) error {
	dir := s.cfg.Cards.Dir
	if len(args) == 1 {
		dir = args[0]
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("card watch: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w, err := card.NewWatcher(dir)
	if err != nil {
		return fmt.Errorf("card watch: create watcher: %w", err)
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("card watch: start watcher: %w", err)
	}
	defer w.Stop()

	s.out.Info("watching %s for recipe cards (ctrl-c to stop)", dir)
	return watchCards(ctx, s, w.Changes)
}

// watchCards applies card changes to the store until ctx ends or changes
// closes. Removing a card leaves its recipe in place.
func watchCards(ctx context.Context, s *session, changes <-chan card.Change) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ch, ok := <-changes:
			if !ok {
				return nil
			}
			switch ch.Kind {
			case card.ChangeModified:
				id, created, err := card.Upsert(ctx, s.store, ch.Card)
				if err != nil {
					return err
				}
				verb := "updated"
				if created {
					verb = "added"
				}
				s.log.Debug().Str("file", ch.File).Int64("recipe", id).Msg("card synced")
				s.out.Success("%s recipe %d from %s", verb, id, filepath.Base(ch.File))
			case card.ChangeInvalid:
				s.out.Warn("skipping %s: %v", filepath.Base(ch.File), ch.Err)
			case card.ChangeError:
				s.log.Warn().Err(ch.Err).Str("dir", ch.File).Msg("card watcher error")
				s.out.Warn("watching %s: %v", ch.File, ch.Err)
			case card.ChangeRemoved:
				s.out.Info("%s removed; its recipe is kept", filepath.Base(ch.File))
			}
		}
	}
}
