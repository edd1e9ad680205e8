package cmd

import (
	"github.com/chris-regnier/devrewind/internal/logger"
	"github.com/chris-regnier/devrewind/internal/mcptools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes the session's
rewind over stdio transport.

Available tools:
  - get_stats: The year's statistics and monthly commit counts
  - list_commits: Commits filtered by type and month
  - list_archives: Saved rewinds

Example usage in an MCP client config:
  {
    "mcpServers": {
      "devrewind": {
        "command": "/path/to/devrewind",
        "args": ["mcp-serve", "--source", "git"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := sessionDataset(cmd.Context())
		if err != nil {
			return err
		}

		server := mcptools.CreateMCPServer(ds, store)

		// stdout carries the protocol; logs go to the log file (and stderr with --debug)
		logger.Info("starting MCP server", "transport", "stdio", "storage", appConfig.Storage, "source", ds.Source)

		return server.Run(cmd.Context(), &mcp.StdioTransport{})
	},
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}
