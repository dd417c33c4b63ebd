package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// SingleTool is implemented by handlers exposing exactly one MCP tool.
// Each server process registers exactly one SingleTool, so the tool list
// it advertises always has a single entry.
type SingleTool interface {
	// Tool returns the tool definition advertised to clients.
	Tool() mcp.Tool
	// Handle executes one invocation of the tool.
	Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
}
