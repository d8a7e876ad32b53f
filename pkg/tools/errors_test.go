package tools

import (
	"net/http"
	"strings"
	"testing"
)

func TestNewAPIError(t *testing.T) {
	tests := []struct {
		name         string
		statusCode   int
		guidance     string
		wantContains string
		recoverable  bool
	}{
		{
			name:         "explicit guidance wins",
			statusCode:   http.StatusInternalServerError,
			guidance:     "custom guidance",
			wantContains: "custom guidance",
			recoverable:  true,
		},
		{
			name:         "unauthorized points at the API key",
			statusCode:   http.StatusUnauthorized,
			wantContains: "CAMINO_API_KEY",
			recoverable:  true,
		},
		{
			name:         "rate limited",
			statusCode:   http.StatusTooManyRequests,
			wantContains: "Rate limit",
			recoverable:  true,
		},
		{
			name:         "bad request is not recoverable",
			statusCode:   http.StatusBadRequest,
			wantContains: "invalid",
			recoverable:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAPIError("Camino", tt.statusCode, "upstream message", tt.guidance)
			if !strings.Contains(err.Guidance, tt.wantContains) {
				t.Errorf("guidance %q should contain %q", err.Guidance, tt.wantContains)
			}
			if err.Recoverable != tt.recoverable {
				t.Errorf("recoverable = %v, want %v", err.Recoverable, tt.recoverable)
			}
			if !strings.Contains(err.Error(), "upstream message") {
				t.Errorf("Error() = %q should carry the message", err.Error())
			}
		})
	}
}
