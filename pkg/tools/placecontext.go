package tools

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/getcamino/camino-mcp/pkg/camino"
	"github.com/getcamino/camino-mcp/pkg/geo"
	"github.com/mark3labs/mcp-go/mcp"
)

// placeContextBody is the request body for the /context endpoint.
// Context and Time are only serialized when provided.
type placeContextBody struct {
	Location        geo.Location `json:"location"`
	Radius          int          `json:"radius"`
	IncludeWeather  bool         `json:"include_weather"`
	WeatherForecast string       `json:"weather_forecast"`
	Context         string       `json:"context,omitempty"`
	Time            string       `json:"time,omitempty"`
}

// PlaceContextTool returns a tool definition for location context lookups
func PlaceContextTool() mcp.Tool {
	return mcp.NewTool("place_context",
		mcp.WithDescription("Get context-aware information about a location including nearby places and area description"),
		mcp.WithNumber("lat",
			mcp.Required(),
			mcp.Description("Latitude of the location"),
		),
		mcp.WithNumber("lon",
			mcp.Required(),
			mcp.Description("Longitude of the location"),
		),
		mcp.WithNumber("radius",
			mcp.Description("Search radius in meters"),
			mcp.DefaultNumber(500),
		),
		mcp.WithString("context_query",
			mcp.Description("Additional context about what you're looking for"),
		),
		mcp.WithString("time",
			mcp.Description("Time parameter: '2020-01-01' (point), '2020..' (since), '2020..2024' (range)"),
		),
		mcp.WithBoolean("include_weather",
			mcp.Description("Include current weather and forecast"),
			mcp.DefaultBool(false),
		),
		mcp.WithString("weather_forecast",
			mcp.Description("Weather forecast type: 'daily' or 'hourly'"),
			mcp.DefaultString("daily"),
		),
	)
}

// buildPlaceContextBody assembles the outgoing request body.
func buildPlaceContextBody(req mcp.CallToolRequest) placeContextBody {
	body := placeContextBody{
		Location: geo.Location{
			Lat: mcp.ParseFloat64(req, "lat", 0),
			Lon: mcp.ParseFloat64(req, "lon", 0),
		},
		Radius:          int(mcp.ParseFloat64(req, "radius", 500)),
		IncludeWeather:  mcp.ParseBoolean(req, "include_weather", false),
		WeatherForecast: mcp.ParseString(req, "weather_forecast", "daily"),
	}

	if v, ok := optString(req, "context_query"); ok {
		body.Context = v
	}
	if v, ok := optString(req, "time"); ok {
		body.Time = v
	}

	return body
}

// HandlePlaceContext implements the place context pass-through
func HandlePlaceContext(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := slog.Default().With("tool", "place_context")

	reqBody := buildPlaceContextBody(req)
	if err := geo.ValidateCoords(reqBody.Location.Lat, reqBody.Location.Lon); err != nil {
		return ErrorResponse(err.Error()), nil
	}

	apiKey, errResult := resolveAPIKey(logger)
	if errResult != nil {
		return errResult, nil
	}

	body, err := camino.Call(ctx, camino.Request{
		Method: http.MethodPost,
		Path:   "/context",
		Body:   reqBody,
		APIKey: apiKey,
	})
	if err != nil {
		logger.Error("camino request failed", "error", err)
		return UpstreamError(err), nil
	}

	return mcp.NewToolResultText(string(body)), nil
}
