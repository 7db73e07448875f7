// Package mcp exposes the Docflow toolset as a Model Context Protocol
// server, so any MCP-capable agent environment can drive the document and
// file tools directly.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docflow-ai/docflow/internal/tools"
)

// NewServer creates an MCP server with all Docflow tools registered.
func NewServer(version string, toolset *tools.Toolset) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "docflow",
		Version: version,
	}, nil)
	registerTools(server, toolset)
	return server
}

func boolPtr(b bool) *bool {
	return &b
}

func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

func destructiveAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		OpenWorldHint:   boolPtr(false),
	}
}
