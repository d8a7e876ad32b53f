// Package prompts provides prompt templates for use with the MCP server.
package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterCaminoPrompts registers all Camino usage prompts with the MCP server
func RegisterCaminoPrompts(s *server.MCPServer) {
	s.AddPrompt(mcp.NewPrompt("camino_usage",
		mcp.WithPromptDescription("Instructions for properly using the Camino geospatial tools"),
	), CaminoUsagePromptHandler)

	s.AddPrompt(mcp.NewPrompt("camino_query_examples",
		mcp.WithPromptDescription("Examples of properly formatted natural-language queries"),
	), QueryExamplesHandler)
}

// CaminoUsagePromptHandler returns the main prompt for the Camino tools
func CaminoUsagePromptHandler(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	systemPrompt := `You have access to geospatial tools backed by the Camino API.
When using these tools:

1. Use search_place for looking up specific places by name or structured address
2. Use query for open-ended, natural-language searches around a location; note it can take 30-60 seconds
3. Prefer mode "basic" (free, OSM only); only use "advanced" when web enrichment is needed
4. Use get_route for simple A-to-B routing and journey_planner when there are multiple stops
5. Only request include_geometry or include_photos when you will actually show the user a map or imagery
6. spatial_relationship answers "how far / which way / how long" between two known points without full routing

ERROR HANDLING GUIDELINES:
When a tool returns an error:
1. Read the guidance attached to the error before retrying
2. A missing or rejected API key means the CAMINO_API_KEY secret must be configured; do not retry
3. For slow query timeouts, reduce the radius or simplify the query text`

	return mcp.NewGetPromptResult(
		"Camino Tool Usage Guidelines",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(
				mcp.RoleAssistant,
				mcp.NewTextContent(systemPrompt),
			),
		},
	), nil
}

// QueryExamplesHandler returns examples for the natural-language query tool
func QueryExamplesHandler(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	examples := `Examples of well-formed query tool calls:

1. Nearby search: query="coffee near me", lat=48.8584, lon=2.2945, radius=500
2. Paginated results: query="bookshops", lat=51.5074, lon=-0.1278, limit=20, offset=20
3. Historical filter: query="buildings", time="1900..1950"
4. Specific objects: osm_ids="node/123,way/456"
5. Summarized answer: query="best picnic spots", answer=true

Keep the query text short and concrete; put location into lat/lon/radius
rather than into the text.`

	return mcp.NewGetPromptResult(
		"Query Tool Examples",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(
				mcp.RoleAssistant,
				mcp.NewTextContent(examples),
			),
		},
	), nil
}
