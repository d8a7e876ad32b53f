package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestValidateWaypoints(t *testing.T) {
	tests := []struct {
		name      string
		waypoints []any
		wantErr   bool
	}{
		{
			name: "valid waypoints",
			waypoints: []any{
				map[string]any{"lat": 48.8584, "lon": 2.2945, "purpose": "sightseeing"},
				map[string]any{"lat": 48.8606, "lon": 2.3376, "purpose": "museum"},
			},
			wantErr: false,
		},
		{
			name:      "empty list",
			waypoints: []any{},
			wantErr:   true,
		},
		{
			name:      "not an object",
			waypoints: []any{"48.8584,2.2945"},
			wantErr:   true,
		},
		{
			name: "missing lat",
			waypoints: []any{
				map[string]any{"lon": 2.2945},
			},
			wantErr: true,
		},
		{
			name: "latitude out of range",
			waypoints: []any{
				map[string]any{"lat": 95.0, "lon": 2.2945},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateWaypoints(tt.waypoints)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateWaypoints() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuildJourneyBody(t *testing.T) {
	waypoints := []any{
		map[string]any{"lat": 48.8584, "lon": 2.2945, "purpose": "start"},
	}

	t.Run("default transport, no time budget", func(t *testing.T) {
		body := buildJourneyBody(callRequest("journey_planner", map[string]any{
			"waypoints": waypoints,
		}), waypoints)

		if body.Constraints.Transport != "walking" {
			t.Errorf("transport = %q, want walking", body.Constraints.Transport)
		}

		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		var wire map[string]any
		if err := json.Unmarshal(data, &wire); err != nil {
			t.Fatalf("failed to unmarshal body: %v", err)
		}
		constraints, ok := wire["constraints"].(map[string]any)
		if !ok {
			t.Fatal("body is missing constraints object")
		}
		if _, ok := constraints["time_budget"]; ok {
			t.Error("time_budget should be omitted when not provided")
		}
	})

	t.Run("explicit transport and time budget", func(t *testing.T) {
		body := buildJourneyBody(callRequest("journey_planner", map[string]any{
			"waypoints":      waypoints,
			"transport_mode": "cycling",
			"time_budget":    "2 hours",
		}), waypoints)

		if body.Constraints.Transport != "cycling" {
			t.Errorf("transport = %q, want cycling", body.Constraints.Transport)
		}
		if body.Constraints.TimeBudget != "2 hours" {
			t.Errorf("time_budget = %q, want '2 hours'", body.Constraints.TimeBudget)
		}
	})
}

func TestHandleJourneyPlanner(t *testing.T) {
	t.Setenv("CAMINO_API_KEY", "test-key")

	upstream := `{"plan":{"feasible":true,"legs":[]}}`
	var gotWire map[string]any

	newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotWire); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		w.Write([]byte(upstream))
	})

	req := callRequest("journey_planner", map[string]any{
		"waypoints": []any{
			map[string]any{"lat": 48.8584, "lon": 2.2945, "purpose": "sightseeing"},
			map[string]any{"lat": 48.8606, "lon": 2.3376, "purpose": "museum"},
		},
		"transport_mode": "walking",
	})

	result, err := HandleJourneyPlanner(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", textContent(t, result))
	}

	waypoints, ok := gotWire["waypoints"].([]any)
	if !ok || len(waypoints) != 2 {
		t.Fatalf("waypoints = %v, want 2 entries", gotWire["waypoints"])
	}
	first, ok := waypoints[0].(map[string]any)
	if !ok {
		t.Fatal("waypoint is not an object")
	}
	if first["purpose"] != "sightseeing" {
		t.Errorf("waypoint purpose = %v, want sightseeing", first["purpose"])
	}

	constraints, ok := gotWire["constraints"].(map[string]any)
	if !ok {
		t.Fatal("body is missing constraints object")
	}
	if constraints["transport"] != "walking" {
		t.Errorf("transport = %v, want walking", constraints["transport"])
	}

	if got := textContent(t, result); got != upstream {
		t.Errorf("result = %q, want upstream body %q", got, upstream)
	}
}

func TestHandleJourneyPlannerNoWaypoints(t *testing.T) {
	t.Setenv("CAMINO_API_KEY", "test-key")

	called := false
	newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	result, err := HandleJourneyPlanner(context.Background(), callRequest("journey_planner", map[string]any{
		"waypoints": []any{},
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Error("expected tool error for empty waypoints")
	}
	if called {
		t.Error("no network call should be made for empty waypoints")
	}
}
