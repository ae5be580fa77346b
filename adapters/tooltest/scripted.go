package tooltest

import (
	"context"
	"fmt"
	"sync"

	"github.com/Gurpartap/mcploop/agent"
)

// ScriptedInvoker replays a fixed sequence of results and records every query it receives.
type ScriptedInvoker struct {
	mu      sync.Mutex
	index   int
	results []agent.ToolResult
	queries []string
}

var _ agent.ToolInvoker = (*ScriptedInvoker)(nil)

func NewScriptedInvoker(results ...agent.ToolResult) *ScriptedInvoker {
	cloned := make([]agent.ToolResult, len(results))
	copy(cloned, results)
	return &ScriptedInvoker{
		results: cloned,
	}
}

func (s *ScriptedInvoker) Invoke(_ context.Context, query string) agent.ToolResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queries = append(s.queries, query)
	if s.index >= len(s.results) {
		return agent.ErrorResult(fmt.Sprintf("script exhausted at call %d", s.index+1))
	}
	current := s.results[s.index]
	s.index++
	return current
}

// Queries returns the queries received so far, in call order.
func (s *ScriptedInvoker) Queries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

// FailingInvoker reports the same failure for every query.
type FailingInvoker struct {
	Message string
}

var _ agent.ToolInvoker = FailingInvoker{}

func (f FailingInvoker) Invoke(context.Context, string) agent.ToolResult {
	message := f.Message
	if message == "" {
		message = "mcp server unavailable"
	}
	return agent.ErrorResult(message)
}
