// Package mcpserver hosts the demo MCP server in process.
package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Gurpartap/mcploop/tooling/echo"
)

const (
	Name    = "demo-mcp-server"
	Version = "0.1.0"

	// ToolName is the single tool the server exposes.
	ToolName = "query_mcp_server"
	// QueryArgument carries the user's query.
	QueryArgument = "query"
)

// New returns a server with the query tool registered.
func New() *server.MCPServer {
	srv := server.NewMCPServer(Name, Version, server.WithToolCapabilities(false))
	srv.AddTool(QueryTool(), handleQuery)
	return srv
}

// QueryTool describes the query tool and its input schema.
func QueryTool() mcp.Tool {
	return mcp.NewTool(
		ToolName,
		mcp.WithDescription("Query the demo MCP server. The server echoes the query back."),
		mcp.WithString(
			QueryArgument,
			mcp.Required(),
			mcp.Description("Text of the query, may be empty"),
		),
	)
}

func handleQuery(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := request.GetString(QueryArgument, "")
	return mcp.NewToolResultText(echo.Response(query)), nil
}
