package cli

import (
	"github.com/spf13/cobra"

	"github.com/ganot/punchcard/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server",
	Long:  `Start the Model Context Protocol server so AI assistants can manage projects and timers over stdio.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		server := mcp.NewServer(a.projects, a.tracker, a.reports, a.logger)
		return server.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
