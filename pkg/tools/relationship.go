package tools

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/getcamino/camino-mcp/pkg/camino"
	"github.com/getcamino/camino-mcp/pkg/geo"
	"github.com/mark3labs/mcp-go/mcp"
)

// relationshipBody is the request body for the /relationship endpoint
type relationshipBody struct {
	Start   geo.Location `json:"start"`
	End     geo.Location `json:"end"`
	Include []string     `json:"include"`
}

// SpatialRelationshipTool returns a tool definition for point-to-point spatial analysis
func SpatialRelationshipTool() mcp.Tool {
	return mcp.NewTool("spatial_relationship",
		mcp.WithDescription("Calculate spatial relationships between two points including distance, direction, and travel time"),
		mcp.WithNumber("start_lat",
			mcp.Required(),
			mcp.Description("Starting point latitude"),
		),
		mcp.WithNumber("start_lon",
			mcp.Required(),
			mcp.Description("Starting point longitude"),
		),
		mcp.WithNumber("end_lat",
			mcp.Required(),
			mcp.Description("Ending point latitude"),
		),
		mcp.WithNumber("end_lon",
			mcp.Required(),
			mcp.Description("Ending point longitude"),
		),
		mcp.WithBoolean("include_distance",
			mcp.Description("Include distance calculation"),
			mcp.DefaultBool(true),
		),
		mcp.WithBoolean("include_direction",
			mcp.Description("Include direction calculation"),
			mcp.DefaultBool(true),
		),
		mcp.WithBoolean("include_travel_time",
			mcp.Description("Include travel time estimates"),
			mcp.DefaultBool(true),
		),
		mcp.WithBoolean("include_description",
			mcp.Description("Include human-readable description"),
			mcp.DefaultBool(true),
		),
	)
}

// buildIncludeFields assembles the include list in its fixed order.
func buildIncludeFields(distance, direction, travelTime, description bool) []string {
	fields := []string{}
	if distance {
		fields = append(fields, "distance")
	}
	if direction {
		fields = append(fields, "direction")
	}
	if travelTime {
		fields = append(fields, "travel_time")
	}
	if description {
		fields = append(fields, "description")
	}
	return fields
}

// HandleSpatialRelationship implements the spatial relationship pass-through
func HandleSpatialRelationship(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := slog.Default().With("tool", "spatial_relationship")

	startLat := mcp.ParseFloat64(req, "start_lat", 0)
	startLon := mcp.ParseFloat64(req, "start_lon", 0)
	endLat := mcp.ParseFloat64(req, "end_lat", 0)
	endLon := mcp.ParseFloat64(req, "end_lon", 0)

	if err := geo.ValidateCoords(startLat, startLon); err != nil {
		return ErrorResponse(err.Error()), nil
	}
	if err := geo.ValidateCoords(endLat, endLon); err != nil {
		return ErrorResponse(err.Error()), nil
	}

	apiKey, errResult := resolveAPIKey(logger)
	if errResult != nil {
		return errResult, nil
	}

	reqBody := relationshipBody{
		Start: geo.Location{Lat: startLat, Lon: startLon},
		End:   geo.Location{Lat: endLat, Lon: endLon},
		Include: buildIncludeFields(
			mcp.ParseBoolean(req, "include_distance", true),
			mcp.ParseBoolean(req, "include_direction", true),
			mcp.ParseBoolean(req, "include_travel_time", true),
			mcp.ParseBoolean(req, "include_description", true),
		),
	}

	body, err := camino.Call(ctx, camino.Request{
		Method: http.MethodPost,
		Path:   "/relationship",
		Body:   reqBody,
		APIKey: apiKey,
	})
	if err != nil {
		logger.Error("camino request failed", "error", err)
		return UpstreamError(err), nil
	}

	return mcp.NewToolResultText(string(body)), nil
}
