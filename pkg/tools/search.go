package tools

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/getcamino/camino-mcp/pkg/camino"
	"github.com/mark3labs/mcp-go/mcp"
)

// SearchPlaceTool returns a tool definition for free-form and structured place search
func SearchPlaceTool() mcp.Tool {
	return mcp.NewTool("search_place",
		mcp.WithDescription("Search for places using free-form or structured queries"),
		mcp.WithString("query",
			mcp.Description("Free-form search query (e.g., 'Eiffel Tower')"),
		),
		mcp.WithString("amenity",
			mcp.Description("Name and/or type of POI (e.g., 'restaurant', 'Starbucks')"),
		),
		mcp.WithString("street",
			mcp.Description("Street name with optional housenumber (e.g., '123 Main Street')"),
		),
		mcp.WithString("city",
			mcp.Description("City name (e.g., 'Paris', 'New York')"),
		),
		mcp.WithString("county",
			mcp.Description("County name"),
		),
		mcp.WithString("state",
			mcp.Description("State or province name (e.g., 'California', 'Ontario')"),
		),
		mcp.WithString("country",
			mcp.Description("Country name (e.g., 'France', 'United States')"),
		),
		mcp.WithString("postalcode",
			mcp.Description("Postal/ZIP code (e.g., '10001', '75001')"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return"),
			mcp.DefaultNumber(10),
		),
		mcp.WithBoolean("include_photos",
			mcp.Description("Include street-level imagery data from OpenStreetCam"),
			mcp.DefaultBool(false),
		),
		mcp.WithNumber("photo_radius",
			mcp.Description("Search radius for street photos in meters"),
			mcp.DefaultNumber(100),
		),
		mcp.WithString("mode",
			mcp.Description("Search mode: 'basic' (free, OSM only) or 'advanced' (web enrichment, AWS fallback)"),
			mcp.DefaultString("basic"),
		),
	)
}

// buildSearchPlaceQuery assembles the outgoing query string. Optional
// structured-address fields are omitted entirely when not provided.
func buildSearchPlaceQuery(req mcp.CallToolRequest) url.Values {
	q := url.Values{}
	q.Set("limit", formatInt(mcp.ParseFloat64(req, "limit", 10)))
	q.Set("include_photos", strconv.FormatBool(mcp.ParseBoolean(req, "include_photos", false)))
	q.Set("photo_radius", formatInt(mcp.ParseFloat64(req, "photo_radius", 100)))
	q.Set("mode", mcp.ParseString(req, "mode", "basic"))

	for _, name := range []string{"query", "amenity", "street", "city", "county", "state", "country", "postalcode"} {
		if v, ok := optString(req, name); ok {
			q.Set(name, v)
		}
	}

	return q
}

// HandleSearchPlace implements the place search pass-through
func HandleSearchPlace(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := slog.Default().With("tool", "search_place")

	apiKey, errResult := resolveAPIKey(logger)
	if errResult != nil {
		return errResult, nil
	}

	body, err := camino.Call(ctx, camino.Request{
		Method: http.MethodPost,
		Path:   "/search",
		Query:  buildSearchPlaceQuery(req),
		APIKey: apiKey,
	})
	if err != nil {
		logger.Error("camino request failed", "error", err)
		return UpstreamError(err), nil
	}

	return mcp.NewToolResultText(string(body)), nil
}
