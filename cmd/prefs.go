package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change stored preferences",
}

func init() {
	prefsCmd.AddCommand(&cobra.Command{
		Use:       "dark-mode [on|off]",
		Short:     "Show or set the dark color scheme",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"on", "off"},
		RunE:      withSession(runPrefsDarkMode),
	})
	rootCmd.AddCommand(prefsCmd)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func runPrefsDarkMode(cmd *cobra.Command, s *session, args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "dark mode: %s\n", onOff(s.store.DarkMode()))
		return nil
	}
	on := args[0] == "on"
	if err := s.store.SetDarkMode(cmd.Context(), on); err != nil {
		return fmt.Errorf("prefs dark-mode: %w", err)
	}
	s.out.Success("dark mode %s", onOff(on))
	return nil
}
