package response

import (
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mounta11n/teable-mcp-server/internal/remote"
)

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) != 1 {
		t.Fatalf("result has %d content blocks, want 1", len(result.Content))
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content block is %T, want mcp.TextContent", result.Content[0])
	}
	return text.Text
}

func TestPrettyJSONIndentsValidJSON(t *testing.T) {
	result, err := PrettyJSON("Records:", []byte(`{"records":[{"id":1}]}`))
	if err != nil {
		t.Fatalf("PrettyJSON() returned error: %v", err)
	}
	if result.IsError {
		t.Error("result.IsError = true, want false")
	}

	text := textOf(t, result)
	if !strings.HasPrefix(text, "Records:\n\n") {
		t.Errorf("text %q does not start with prefix", text)
	}
	if !strings.Contains(text, "  \"records\"") {
		t.Errorf("text %q is not indented", text)
	}
}

func TestPrettyJSONPassesThroughNonJSON(t *testing.T) {
	result, err := PrettyJSON("Response:", []byte("plain text body"))
	if err != nil {
		t.Fatalf("PrettyJSON() returned error: %v", err)
	}
	if text := textOf(t, result); !strings.Contains(text, "plain text body") {
		t.Errorf("text %q does not contain the raw body", text)
	}
}

func TestRemoteErrorPrefersBody(t *testing.T) {
	result, err := RemoteError("Teable API", &remote.APIError{
		StatusCode: 404,
		Status:     "404 Not Found",
		Body:       `{"error":"not found"}`,
	})
	if err != nil {
		t.Fatalf("RemoteError() returned error: %v", err)
	}
	if !result.IsError {
		t.Error("result.IsError = false, want true")
	}

	text := textOf(t, result)
	if !strings.Contains(text, "not found") {
		t.Errorf("text %q does not contain remote body", text)
	}
	if !strings.Contains(text, "Teable API") {
		t.Errorf("text %q does not name the service", text)
	}
}

func TestRemoteErrorWithoutBody(t *testing.T) {
	result, err := RemoteError("ntfy", &remote.APIError{StatusCode: 500, Status: "500 Internal Server Error"})
	if err != nil {
		t.Fatalf("RemoteError() returned error: %v", err)
	}
	if text := textOf(t, result); !strings.Contains(text, "500") {
		t.Errorf("text %q does not mention the status", text)
	}
}
