package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	cowmcp "github.com/gorewood/cowfetch/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run cowfetch as a Model Context Protocol (MCP) server over stdio.

This exposes the cow catalog and renderer as MCP tools.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "cowfetch": {
        "command": "cowfetch",
        "args": ["serve"]
      }
    }
  }

Available tools: list_cows, render_cow, inspect_cow`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := cowmcp.NewServer(buildVersion(), a.newCatalog(a.cfg))
			a.logger.Info("serving MCP over stdio", "version", buildVersion())
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
