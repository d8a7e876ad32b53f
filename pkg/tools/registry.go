// Package tools provides the Camino MCP tools implementations.
package tools

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Registry holds all MCP tool registrations for the Camino service.
type Registry struct {
	logger *slog.Logger
}

// NewRegistry creates a new MCP tool registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		logger: logger,
	}
}

// ToolDefinition represents a Camino MCP tool definition.
type ToolDefinition struct {
	Name        string
	Description string
	Tool        mcp.Tool
	Handler     func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// GetToolDefinitions returns all Camino MCP tool definitions.
func (r *Registry) GetToolDefinitions() []ToolDefinition {
	return []ToolDefinition{
		// Search Tools
		{
			Name:        "search_place",
			Description: "Search for places using free-form or structured queries",
			Tool:        SearchPlaceTool(),
			Handler:     HandleSearchPlace,
		},
		{
			Name:        "query",
			Description: "Query places using natural language and location",
			Tool:        QueryTool(),
			Handler:     HandleQuery,
		},

		// Spatial Analysis Tools
		{
			Name:        "spatial_relationship",
			Description: "Calculate spatial relationships between two points",
			Tool:        SpatialRelationshipTool(),
			Handler:     HandleSpatialRelationship,
		},
		{
			Name:        "place_context",
			Description: "Get context-aware information about a location",
			Tool:        PlaceContextTool(),
			Handler:     HandlePlaceContext,
		},

		// Routing Tools
		{
			Name:        "journey_planner",
			Description: "Multi-waypoint journey planning with route optimization",
			Tool:        JourneyPlannerTool(),
			Handler:     HandleJourneyPlanner,
		},
		{
			Name:        "get_route",
			Description: "Get routing information from a start to an end point",
			Tool:        GetRouteTool(),
			Handler:     HandleGetRoute,
		},
	}
}

// RegisterTools registers all tools with the MCP server.
func (r *Registry) RegisterTools(mcpServer *server.MCPServer) {
	for _, def := range r.GetToolDefinitions() {
		r.logger.Info("registering tool", "name", def.Name)
		mcpServer.AddTool(def.Tool, def.Handler)
	}
}
