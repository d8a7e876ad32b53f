package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/getcamino/camino-mcp/pkg/camino"
	"github.com/getcamino/camino-mcp/pkg/geo"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"
)

// journeyConstraints is the constraints object for the /journey endpoint.
// TimeBudget is only serialized when provided.
type journeyConstraints struct {
	Transport  string `json:"transport"`
	TimeBudget string `json:"time_budget,omitempty"`
}

// journeyBody is the request body for the /journey endpoint. Waypoints are
// passed through exactly as given so purpose and any extra fields survive.
type journeyBody struct {
	Waypoints   []any              `json:"waypoints"`
	Constraints journeyConstraints `json:"constraints"`
}

// JourneyPlannerTool returns a tool definition for multi-waypoint journey planning
func JourneyPlannerTool() mcp.Tool {
	return mcp.NewTool("journey_planner",
		mcp.WithDescription("Multi-waypoint journey planning with route optimization and feasibility analysis"),
		mcp.WithArray("waypoints",
			mcp.Required(),
			mcp.Description("List of waypoints with lat, lon, and purpose fields"),
		),
		mcp.WithString("transport_mode",
			mcp.Description("Mode of transport: walking, driving, cycling"),
			mcp.DefaultString("walking"),
		),
		mcp.WithString("time_budget",
			mcp.Description("Time budget for the journey (e.g., '2 hours')"),
		),
	)
}

// parseWaypoints extracts the waypoints array from the request.
func parseWaypoints(req mcp.CallToolRequest) ([]any, error) {
	param, ok := req.Params.Arguments["waypoints"]
	if !ok || param == nil {
		return nil, fmt.Errorf("parameter waypoints not found")
	}

	if arr, ok := param.([]any); ok {
		return arr, nil
	}

	// Some clients send arrays as JSON strings
	jsonBytes, err := json.Marshal(param)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal parameter: %v", err)
	}

	var result []any
	if err := json.Unmarshal(jsonBytes, &result); err != nil {
		return nil, fmt.Errorf("failed to parse waypoints array: %v", err)
	}

	return result, nil
}

// validateWaypoints checks that each waypoint carries valid coordinates.
func validateWaypoints(waypoints []any) error {
	if len(waypoints) == 0 {
		return fmt.Errorf("at least one waypoint is required")
	}

	for i, wp := range waypoints {
		fields, ok := wp.(map[string]any)
		if !ok {
			return fmt.Errorf("waypoint %d must be an object with lat, lon, and purpose fields", i)
		}

		lat, err := cast.ToFloat64E(fields["lat"])
		if err != nil {
			return fmt.Errorf("waypoint %d is missing a numeric lat field", i)
		}
		lon, err := cast.ToFloat64E(fields["lon"])
		if err != nil {
			return fmt.Errorf("waypoint %d is missing a numeric lon field", i)
		}
		if err := geo.ValidateCoords(lat, lon); err != nil {
			return fmt.Errorf("waypoint %d: %v", i, err)
		}
	}

	return nil
}

// buildJourneyBody assembles the outgoing request body.
func buildJourneyBody(req mcp.CallToolRequest, waypoints []any) journeyBody {
	body := journeyBody{
		Waypoints: waypoints,
		Constraints: journeyConstraints{
			Transport: mcp.ParseString(req, "transport_mode", "walking"),
		},
	}

	if v, ok := optString(req, "time_budget"); ok {
		body.Constraints.TimeBudget = v
	}

	return body
}

// HandleJourneyPlanner implements the journey planning pass-through
func HandleJourneyPlanner(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := slog.Default().With("tool", "journey_planner")

	waypoints, err := parseWaypoints(req)
	if err != nil {
		return ErrorResponse("Failed to parse waypoints: " + err.Error()), nil
	}
	if err := validateWaypoints(waypoints); err != nil {
		return ErrorResponse(err.Error()), nil
	}

	apiKey, errResult := resolveAPIKey(logger)
	if errResult != nil {
		return errResult, nil
	}

	body, err := camino.Call(ctx, camino.Request{
		Method: http.MethodPost,
		Path:   "/journey",
		Body:   buildJourneyBody(req, waypoints),
		APIKey: apiKey,
	})
	if err != nil {
		logger.Error("camino request failed", "error", err)
		return UpstreamError(err), nil
	}

	return mcp.NewToolResultText(string(body)), nil
}
