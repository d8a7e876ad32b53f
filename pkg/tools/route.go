package tools

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/getcamino/camino-mcp/pkg/camino"
	"github.com/getcamino/camino-mcp/pkg/geo"
	"github.com/mark3labs/mcp-go/mcp"
)

// GetRouteTool returns a tool definition for point-to-point routing
func GetRouteTool() mcp.Tool {
	return mcp.NewTool("get_route",
		mcp.WithDescription("Get routing information from a start to an end point"),
		mcp.WithNumber("start_lat",
			mcp.Required(),
			mcp.Description("Start latitude"),
		),
		mcp.WithNumber("start_lon",
			mcp.Required(),
			mcp.Description("Start longitude"),
		),
		mcp.WithNumber("end_lat",
			mcp.Required(),
			mcp.Description("End latitude"),
		),
		mcp.WithNumber("end_lon",
			mcp.Required(),
			mcp.Description("End longitude"),
		),
		mcp.WithString("mode",
			mcp.Description("Mode of transport: car, bike, or foot"),
			mcp.DefaultString("car"),
		),
		mcp.WithBoolean("include_geometry",
			mcp.Description("Include detailed route geometry and waypoints for mapping. Only include if you will be showing the user a map"),
			mcp.DefaultBool(false),
		),
		mcp.WithBoolean("include_imagery",
			mcp.Description("Include street-level imagery at key waypoints"),
			mcp.DefaultBool(false),
		),
	)
}

// buildRouteQuery assembles the outgoing query string. Unlike the other
// tools, every parameter is always sent.
func buildRouteQuery(req mcp.CallToolRequest) url.Values {
	q := url.Values{}
	q.Set("start_lat", formatFloat(mcp.ParseFloat64(req, "start_lat", 0)))
	q.Set("start_lon", formatFloat(mcp.ParseFloat64(req, "start_lon", 0)))
	q.Set("end_lat", formatFloat(mcp.ParseFloat64(req, "end_lat", 0)))
	q.Set("end_lon", formatFloat(mcp.ParseFloat64(req, "end_lon", 0)))
	q.Set("mode", mcp.ParseString(req, "mode", "car"))
	q.Set("include_geometry", strconv.FormatBool(mcp.ParseBoolean(req, "include_geometry", false)))
	q.Set("include_imagery", strconv.FormatBool(mcp.ParseBoolean(req, "include_imagery", false)))
	return q
}

// HandleGetRoute implements the routing pass-through
func HandleGetRoute(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := slog.Default().With("tool", "get_route")

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

	body, err := camino.Call(ctx, camino.Request{
		Method: http.MethodGet,
		Path:   "/route",
		Query:  buildRouteQuery(req),
		APIKey: apiKey,
	})
	if err != nil {
		logger.Error("camino request failed", "error", err)
		return UpstreamError(err), nil
	}

	return mcp.NewToolResultText(string(body)), nil
}
