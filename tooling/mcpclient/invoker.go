// Package mcpclient invokes the query tool over an in-process MCP session.
package mcpclient

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Gurpartap/mcploop/agent"
	"github.com/Gurpartap/mcploop/tooling/mcpserver"
)

const (
	clientName    = "mcploop"
	clientVersion = "0.1.0"
)

var ErrMissingServer = errors.New("missing mcp server")

// Caller is the subset of the mcp-go client the invoker depends on.
type Caller interface {
	CallTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
	Close() error
}

// Invoker implements agent.ToolInvoker on top of an initialized MCP session.
type Invoker struct {
	caller   Caller
	toolName string
}

var _ agent.ToolInvoker = (*Invoker)(nil)

// Connect starts an in-process session against srv and completes the MCP handshake.
func Connect(ctx context.Context, srv *server.MCPServer) (*Invoker, error) {
	if srv == nil {
		return nil, fmt.Errorf("connect mcp client: %w", ErrMissingServer)
	}
	c, err := client.NewInProcessClient(srv)
	if err != nil {
		return nil, fmt.Errorf("connect mcp client: %w", err)
	}
	if err := c.Start(ctx); err != nil {
		return nil, errors.Join(fmt.Errorf("start mcp client: %w", err), c.Close())
	}

	initRequest := mcp.InitializeRequest{}
	initRequest.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initRequest.Params.ClientInfo = mcp.Implementation{
		Name:    clientName,
		Version: clientVersion,
	}
	if _, err := c.Initialize(ctx, initRequest); err != nil {
		return nil, errors.Join(fmt.Errorf("initialize mcp session: %w", err), c.Close())
	}

	return New(c, mcpserver.ToolName), nil
}

// New wraps an already initialized caller.
func New(caller Caller, toolName string) *Invoker {
	if toolName == "" {
		toolName = mcpserver.ToolName
	}
	return &Invoker{
		caller:   caller,
		toolName: toolName,
	}
}

// Invoke calls the query tool. Transport failures and isError results come back as error results.
func (i *Invoker) Invoke(ctx context.Context, query string) agent.ToolResult {
	request := mcp.CallToolRequest{}
	request.Params.Name = i.toolName
	request.Params.Arguments = map[string]any{
		mcpserver.QueryArgument: query,
	}

	result, err := i.caller.CallTool(ctx, request)
	if err != nil {
		return agent.ErrorResult(fmt.Sprintf("call %s: %v", i.toolName, err))
	}
	if result == nil {
		return agent.ErrorResult(fmt.Sprintf("call %s: empty result", i.toolName))
	}

	text := resultText(result)
	if result.IsError {
		return agent.ErrorResult(text)
	}
	return agent.SuccessResult(text)
}

func (i *Invoker) Close() error {
	return i.caller.Close()
}

func resultText(result *mcp.CallToolResult) string {
	parts := make([]string, 0, len(result.Content))
	for _, content := range result.Content {
		if text, ok := mcp.AsTextContent(content); ok {
			parts = append(parts, text.Text)
		}
	}
	return strings.Join(parts, "\n")
}
