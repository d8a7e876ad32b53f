// Package tools provides the Camino MCP tools implementations.
package tools

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/getcamino/camino-mcp/pkg/auth"
	"github.com/getcamino/camino-mcp/pkg/camino"
	"github.com/mark3labs/mcp-go/mcp"
)

// APIError represents an error that occurred while communicating with
// the Camino API, with information to help users recover.
type APIError struct {
	Service     string // The API service name
	StatusCode  int    // HTTP status code
	Message     string // Error message, typically the upstream response body
	Recoverable bool   // Whether the error can be recovered from
	Guidance    string // Guidance for users on how to recover
}

// Error implements the error interface and provides a formatted error message.
func (e *APIError) Error() string {
	if e.Guidance != "" {
		return fmt.Sprintf("%s API error (%d): %s. %s", e.Service, e.StatusCode, e.Message, e.Guidance)
	}
	return fmt.Sprintf("%s API error (%d): %s", e.Service, e.StatusCode, e.Message)
}

// Common error guidance messages
const (
	GuidanceMissingKey   = "Set the CAMINO_API_KEY secret in the hosting environment and try again."
	GuidanceQueryTimeout = "The query endpoint can take 30-60 seconds. Try a smaller radius or a simpler query."
	GuidanceGeneral      = "Please try again later or modify your request parameters."
	GuidanceNetworkError = "Check your internet connection and try again."
	GuidanceDataError    = "The data received was incomplete or malformed. Try different search parameters."
)

// NewAPIError creates a new APIError with appropriate guidance based on status code.
func NewAPIError(service string, statusCode int, message, guidance string) *APIError {
	// Use provided guidance if available, otherwise infer based on status code
	if guidance == "" {
		switch statusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			guidance = "The API key was rejected. Verify the CAMINO_API_KEY secret."
		case http.StatusTooManyRequests:
			guidance = "Rate limit exceeded. Please try again in a few moments."
		case http.StatusRequestTimeout, http.StatusGatewayTimeout:
			guidance = "The request timed out. Try reducing the search area or simplifying the query."
		case http.StatusBadRequest:
			guidance = "The request was invalid. Check your parameters and try again."
		case http.StatusInternalServerError:
			guidance = "The server encountered an error. This is likely temporary, please try again later."
		case http.StatusServiceUnavailable:
			guidance = "The service is temporarily unavailable. Please try again later."
		default:
			guidance = GuidanceGeneral
		}
	}

	return &APIError{
		Service:     service,
		StatusCode:  statusCode,
		Message:     message,
		Recoverable: statusCode != http.StatusBadRequest,
		Guidance:    guidance,
	}
}

// ErrorWithGuidance returns a properly formatted error response with user guidance.
func ErrorWithGuidance(err *APIError) *mcp.CallToolResult {
	errorText := fmt.Sprintf("Error: %s\n\nGuidance: %s", err.Message, err.Guidance)
	return mcp.NewToolResultError(errorText)
}

// ErrorResponse is used for consistent error reporting
func ErrorResponse(message string) *mcp.CallToolResult {
	return mcp.NewToolResultError(message)
}

// resolveAPIKey fetches the Camino API key at call time. The second return
// value is non-nil when the secret is missing; no network call may be made
// in that case.
func resolveAPIKey(logger *slog.Logger) (string, *mcp.CallToolResult) {
	apiKey, err := auth.GetSecret(auth.SecretCaminoAPIKey)
	if err != nil {
		logger.Error("missing API key", "error", err)
		return "", ErrorWithGuidance(&APIError{
			Service:  "Camino",
			Message:  err.Error(),
			Guidance: GuidanceMissingKey,
		})
	}
	return apiKey, nil
}

// UpstreamError converts an error from the camino client into a tool error
// result, preserving the upstream status and body when available.
func UpstreamError(err error) *mcp.CallToolResult {
	var statusErr *camino.StatusError
	if errors.As(err, &statusErr) {
		return ErrorWithGuidance(NewAPIError("Camino", statusErr.StatusCode, statusErr.Body, ""))
	}
	return ErrorResponse("Failed to communicate with the Camino API: " + err.Error())
}
