package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/wikiexport/internal/export"
	wikimcp "github.com/gorewood/wikiexport/internal/mcp"
	"github.com/gorewood/wikiexport/internal/wikifs"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run wikiexport as a Model Context Protocol (MCP) server over stdio.

Option flags, config files and WIKIEXPORT_* variables set the defaults for
every tool call; tool arguments override them.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "wikiexport": {
        "command": "wikiexport",
        "args": ["serve", "--target", "/path/to/exports"]
      }
    }
  }

Available tools: export_wiki, outline_wiki`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, opts, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			exporter := export.New(wikifs.NewOS(), logger, nil)
			server := wikimcp.NewServer(buildVersion(), exporter, opts)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
	addOptionFlags(cmd)
	return cmd
}
