package tools

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getcamino/camino-mcp/pkg/camino"
	"github.com/mark3labs/mcp-go/mcp"
)

// newUpstream points the camino client at a local test server for the
// duration of the test.
func newUpstream(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	old := camino.BaseURL()
	camino.SetBaseURL(ts.URL)
	t.Cleanup(func() { camino.SetBaseURL(old) })

	return ts
}

// callRequest builds a CallToolRequest with the given arguments.
func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

// textContent extracts the text payload from a tool result.
func textContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	if result == nil {
		t.Fatal("expected result, got nil")
	}
	for _, content := range result.Content {
		if text, ok := content.(mcp.TextContent); ok {
			return text.Text
		}
	}
	t.Fatal("no text content in result")
	return ""
}
