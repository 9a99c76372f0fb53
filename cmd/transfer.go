package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "Write every collection to a JSON backup",
	Long:  "Writes the backup to FILE, or to stdout when FILE is omitted or \"-\".",
	Args:  cobra.MaximumNArgs(1),
	RunE:  withSession(runExport),
}

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Replace every collection from a JSON backup",
	Long: `Reads a backup written by export ("-" reads stdin). Collections missing
from the backup are emptied. A malformed backup changes nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: withSession(runImport),
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
}

func runExport(cmd *cobra.Command, s *session, args []string) error {
	data, err := s.store.Export()
	if err != nil {
		return err
	}
	if len(args) == 0 || args[0] == "-" {
		_, err := cmd.OutOrStdout().Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(args[0], data, 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	s.out.Exported(args[0], len(data))
	return nil
}

func runImport(cmd *cobra.Command, s *session, args []string) error {
	var (
		data []byte
		err  error
	)
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	if err := s.store.Import(cmd.Context(), data); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	s.out.Success("imported %d meals, %d recipes, %d ingredients, %d planned slots",
		len(s.store.Meals()), len(s.store.Recipes()), len(s.store.Ingredients()), s.store.Plan().Len())
	return nil
}
