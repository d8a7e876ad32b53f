// Package server provides the MCP server implementation for the Camino API integration.
package server

import (
	"log/slog"

	"github.com/getcamino/camino-mcp/pkg/tools"
	"github.com/getcamino/camino-mcp/pkg/tools/prompts"
	"github.com/mark3labs/mcp-go/server"
)

const (
	// ServerName is the name of the MCP server
	ServerName = "camino-mcp-server"

	// ServerVersion is the version of the MCP server
	ServerVersion = "0.1.0"

	// DefaultHTTPAddr is the listen address for the HTTP streaming transport
	DefaultHTTPAddr = "127.0.0.1:8000"
)

// Server encapsulates the MCP server with Camino tools.
type Server struct {
	srv *server.MCPServer
}

// NewServer creates a new Camino MCP server with all tools registered.
func NewServer() (*Server, error) {
	logger := slog.Default()
	logger.Info("initializing Camino MCP server",
		"name", ServerName,
		"version", ServerVersion)

	// Create MCP server with options
	srv := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(false),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
	)

	// Create tool registry and register all tools
	registry := tools.NewRegistry(logger)
	registry.RegisterTools(srv)

	// Register usage guidance prompts
	prompts.RegisterCaminoPrompts(srv)

	return &Server{srv: srv}, nil
}

// Run starts the MCP server using stdin/stdout for communication.
// Tools that require the CAMINO_API_KEY secret work out of the box on this
// transport, since the hosting process supplies the environment.
func (s *Server) Run() error {
	return server.ServeStdio(s.srv)
}

// RunHTTP starts the MCP server on an HTTP streaming (SSE) listener.
// Secret-requiring tools only work here if the deployment provisions the
// CAMINO_API_KEY secret for the server process.
func (s *Server) RunHTTP(addr string) error {
	if addr == "" {
		addr = DefaultHTTPAddr
	}
	sse := server.NewSSEServer(s.srv)
	return sse.Start(addr)
}
