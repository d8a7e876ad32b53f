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

// QueryTool returns a tool definition for natural-language place queries
func QueryTool() mcp.Tool {
	return mcp.NewTool("query",
		mcp.WithDescription("Query places using natural language and location, converts to Overpass query. "+
			"Note: This endpoint may take 30-60 seconds due to Overpass API processing and AI ranking."),
		mcp.WithString("query",
			mcp.Description("Natural language query, e.g., 'coffee near me'"),
		),
		mcp.WithNumber("lat",
			mcp.Description("Latitude for the center of your search"),
		),
		mcp.WithNumber("lon",
			mcp.Description("Longitude for the center of your search"),
		),
		mcp.WithNumber("radius",
			mcp.Description("Search radius in meters"),
			mcp.DefaultNumber(1000),
		),
		mcp.WithBoolean("rank",
			mcp.Description("Use AI to rank results by relevance"),
			mcp.DefaultBool(true),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return (1-100)"),
			mcp.DefaultNumber(20),
		),
		mcp.WithNumber("offset",
			mcp.Description("Number of results to skip for pagination"),
			mcp.DefaultNumber(0),
		),
		mcp.WithBoolean("answer",
			mcp.Description("Generate a human-readable answer summary"),
			mcp.DefaultBool(false),
		),
		mcp.WithString("time",
			mcp.Description("Time parameter: '2020-01-01' (point), '2020..' (since), '2020..2024' (range)"),
		),
		mcp.WithString("osm_ids",
			mcp.Description("Comma-separated OSM IDs (e.g., 'node/123,way/456')"),
		),
		mcp.WithString("mode",
			mcp.Description("Query mode: 'basic' (free, OSM only) or 'advanced' (web enrichment)"),
			mcp.DefaultString("basic"),
		),
	)
}

// buildQueryParams assembles the outgoing query string. The optional query
// text, center coordinates, time filter and OSM IDs are omitted entirely
// when not provided.
func buildQueryParams(req mcp.CallToolRequest) url.Values {
	q := url.Values{}
	q.Set("radius", formatInt(mcp.ParseFloat64(req, "radius", 1000)))
	q.Set("rank", strconv.FormatBool(mcp.ParseBoolean(req, "rank", true)))
	q.Set("limit", formatInt(mcp.ParseFloat64(req, "limit", 20)))
	q.Set("offset", formatInt(mcp.ParseFloat64(req, "offset", 0)))
	q.Set("answer", strconv.FormatBool(mcp.ParseBoolean(req, "answer", false)))
	q.Set("mode", mcp.ParseString(req, "mode", "basic"))

	if v, ok := optString(req, "query"); ok {
		q.Set("query", v)
	}
	if v, ok := optFloat(req, "lat"); ok {
		q.Set("lat", formatFloat(v))
	}
	if v, ok := optFloat(req, "lon"); ok {
		q.Set("lon", formatFloat(v))
	}
	if v, ok := optString(req, "time"); ok {
		q.Set("time", v)
	}
	if v, ok := optString(req, "osm_ids"); ok {
		q.Set("osm_ids", v)
	}

	return q
}

// HandleQuery implements the natural-language query pass-through.
// The upstream may run Overpass translation and ranking, so this call uses
// the extended-timeout client.
func HandleQuery(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := slog.Default().With("tool", "query")

	apiKey, errResult := resolveAPIKey(logger)
	if errResult != nil {
		return errResult, nil
	}

	body, err := camino.Call(ctx, camino.Request{
		Method: http.MethodGet,
		Path:   "/query",
		Query:  buildQueryParams(req),
		APIKey: apiKey,
		Slow:   true,
	})
	if err != nil {
		logger.Error("camino request failed", "error", err)
		return UpstreamError(err), nil
	}

	return mcp.NewToolResultText(string(body)), nil
}
