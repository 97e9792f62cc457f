// Package mcp provides a Model Context Protocol server for cowfetch.
// It exposes the cow catalog and renderer as MCP tools.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/cowfetch/internal/catalog"
)

// NewServer creates an MCP server with all cowfetch tools registered.
func NewServer(version string, cat *catalog.Catalog) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "cowfetch",
		Version: version,
	}, nil)
	registerTools(server, cat)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all cowfetch tools to the server.
func registerTools(server *mcp.Server, cat *catalog.Catalog) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_cows",
		Description: "List every available cow template with the source it was found in, in name order.",
		Annotations: readOnlyAnnotations(),
	}, handleListCows(cat))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_cow",
		Description: "Render a cow template with a message substituted for $thoughts. Pass name, or random=true to pick one.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:  true,
			OpenWorldHint: boolPtr(false),
		},
	}, handleRenderCow(cat))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect_cow",
		Description: "Show the parsed form of a cow template: comments, variables, raw art and parse diagnostics.",
		Annotations: readOnlyAnnotations(),
	}, handleInspectCow(cat))
}
