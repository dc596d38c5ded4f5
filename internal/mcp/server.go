// Package mcp provides a Model Context Protocol server for wikiexport.
// It exposes wiki export and outline as MCP tools that any MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/wikiexport/internal/export"
	"github.com/gorewood/wikiexport/internal/options"
)

// NewServer creates an MCP server with all wikiexport tools registered.
// defaults supplies every option a tool call leaves unset.
func NewServer(version string, exporter *export.Exporter, defaults options.Options) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "wikiexport",
		Version: version,
	}, nil)
	registerTools(server, exporter, defaults)
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

// writeAnnotations returns annotations for tools that write files. An export
// overwrites its previous output, so repeating it is idempotent.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		IdempotentHint:  true,
		DestructiveHint: boolPtr(true),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all wikiexport tools to the server.
func registerTools(server *mcp.Server, exporter *export.Exporter, defaults options.Options) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_wiki",
		Description: "Merge a wiki directory (or one page and its children) into a single Markdown document with front matter, and copy its attachments next to it.",
		Annotations: writeAnnotations(),
	}, handleExport(exporter, defaults))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "outline_wiki",
		Description: "List the pages an export would include, in document order, with heading levels and any structural problems. Writes nothing.",
		Annotations: readOnlyAnnotations(),
	}, handleOutline(exporter, defaults))
}
