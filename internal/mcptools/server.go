package mcptools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"govreg/internal/portal"
	"govreg/internal/table"
	"govreg/pkg/logging"
)

// Server wraps an MCP stdio server around the portal client. All tools are
// read-only; destructive portal actions are deliberately not exposed.
type Server struct {
	client *portal.Client
	scope  table.Scope
	mcp    *server.MCPServer
}

// NewServer builds the MCP server and registers the collection tools.
func NewServer(client *portal.Client, scope table.Scope, version string) *Server {
	s := &Server{
		client: client,
		scope:  scope,
		mcp: server.NewMCPServer(
			"govreg",
			version,
			server.WithToolCapabilities(true),
		),
	}

	tools := CollectionTools()
	handlers := []server.ToolHandlerFunc{
		s.handleDomainsList,
		s.handleRequestsList,
		s.handleMembersList,
	}
	for i, tool := range tools {
		s.mcp.AddTool(tool, handlers[i])
	}
	return s
}

// ServeStdio blocks serving MCP requests on stdin/stdout.
func (s *Server) ServeStdio() error {
	logging.Info("MCP", "Serving collection tools over stdio")
	return server.ServeStdio(s.mcp)
}

func (s *Server) handleDomainsList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, err := s.client.Domains(ctx, queryFromRequest(request, s.scope))
	return toolResult("domains", page, err)
}

func (s *Server) handleRequestsList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, err := s.client.Requests(ctx, queryFromRequest(request, s.scope))
	return toolResult("domain requests", page, err)
}

func (s *Server) handleMembersList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, err := s.client.Members(ctx, queryFromRequest(request, s.scope))
	return toolResult("members", page, err)
}

// toolResult converts a portal response into a tool result. Portal errors
// come back as tool errors rather than protocol errors so the caller can
// read them.
func toolResult(what string, page interface{}, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		logging.Error("MCP", err, "Failed to list %s", what)
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list %s: %v", what, err)), nil
	}
	data, err := json.Marshal(page)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format %s: %v", what, err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
