// Package response provides utility functions for creating standardized MCP
// tool responses. It handles formatting remote API bodies into text results
// and provides consistent error formatting across all tools.
package response

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mounta11n/teable-mcp-server/internal/remote"
)

// PrettyJSON creates a successful MCP tool response with prefix on the
// first line followed by the response body. When raw is valid JSON it is
// re-indented for readability; otherwise it is included verbatim.
func PrettyJSON(prefix string, raw []byte) (*mcp.CallToolResult, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return mcp.NewToolResultText(prefix + "\n\n" + string(raw)), nil
	}
	return mcp.NewToolResultText(prefix + "\n\n" + buf.String()), nil
}

// RemoteError creates an MCP tool error response for a non-2xx answer from
// the named remote service, preferring the service's own error body when
// it sent one.
func RemoteError(service string, apiErr *remote.APIError) (*mcp.CallToolResult, error) {
	if apiErr.Body != "" {
		return Errorf("%s returned %s: %s", service, apiErr.Status, apiErr.Body)
	}
	return Errorf("%s returned %s", service, apiErr.Status)
}

// Error creates an MCP tool response indicating an error occurred.
// The message is returned to the client as an error result rather than
// successful tool output.
func Error(message string) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(message), nil
}

// Errorf creates an MCP tool error response using printf-style formatting.
func Errorf(format string, args ...any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(fmt.Sprintf(format, args...)), nil
}
