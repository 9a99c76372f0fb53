package cmd

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/mealbook/internal/mcpserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the meal book to MCP clients over stdio",
	Long: `Runs an MCP server on stdin/stdout so an assistant can list meals, plan
slots, scale recipes and build the shopping list. Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: withSession(runServe),
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, s *session, _ []string) error {
	srv := mcpserver.New(s.store, s.log)
	s.log.Info().Str("version", mcpserver.Version).Msg("mcp server listening on stdio")
	if err := srv.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
