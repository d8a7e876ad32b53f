package tools

import (
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"
)

// optString reports whether an optional string parameter was provided.
// Empty strings are treated as absent so they never reach the upstream.
func optString(req mcp.CallToolRequest, name string) (string, bool) {
	v, ok := req.Params.Arguments[name]
	if !ok || v == nil {
		return "", false
	}
	s := cast.ToString(v)
	if s == "" {
		return "", false
	}
	return s, true
}

// optFloat reports whether an optional numeric parameter was provided.
func optFloat(req mcp.CallToolRequest, name string) (float64, bool) {
	v, ok := req.Params.Arguments[name]
	if !ok || v == nil {
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, false
	}
	return f, true
}

// formatFloat renders a coordinate without trailing zeros.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatInt renders a numeric MCP parameter as an integer.
func formatInt(v float64) string {
	return strconv.Itoa(int(v))
}
