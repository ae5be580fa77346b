// Package echo answers queries locally the way the demo MCP server does.
package echo

import (
	"context"

	"github.com/Gurpartap/mcploop/agent"
)

const responsePrefix = "Demo MCP server received query: "

// Response formats the demo server's reply to query.
func Response(query string) string {
	return responsePrefix + query
}

// Invoker is a deterministic, side-effect free ToolInvoker.
type Invoker struct{}

var _ agent.ToolInvoker = Invoker{}

func New() Invoker {
	return Invoker{}
}

func (Invoker) Invoke(_ context.Context, query string) agent.ToolResult {
	return agent.SuccessResult(Response(query))
}
