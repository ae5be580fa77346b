package agent

import (
	"context"
	"encoding/json"
)

// ToolResult is the tagged outcome of one tool invocation.
// Exactly one of Response and Error is meaningful, selected by IsError.
type ToolResult struct {
	Response string
	Error    string
	failed   bool
}

type successPayload struct {
	Response string `json:"mcp_response"`
}

type errorPayload struct {
	Error string `json:"error"`
}

// SuccessResult wraps a successful tool response.
func SuccessResult(response string) ToolResult {
	return ToolResult{Response: response}
}

// ErrorResult wraps a tool failure reported as data.
func ErrorResult(message string) ToolResult {
	return ToolResult{Error: message, failed: true}
}

// IsError reports whether the result carries the failure shape.
func (r ToolResult) IsError() bool {
	return r.failed
}

// Text returns the populated side of the variant.
func (r ToolResult) Text() string {
	if r.failed {
		return r.Error
	}
	return r.Response
}

// MarshalJSON renders only the populated side of the variant.
func (r ToolResult) MarshalJSON() ([]byte, error) {
	if r.failed {
		return json.Marshal(errorPayload{Error: r.Error})
	}
	return json.Marshal(successPayload{Response: r.Response})
}

func (r *ToolResult) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if payload, ok := raw["error"]; ok {
		var message string
		if err := json.Unmarshal(payload, &message); err != nil {
			return err
		}
		*r = ErrorResult(message)
		return nil
	}
	var response string
	if payload, ok := raw["mcp_response"]; ok {
		if err := json.Unmarshal(payload, &response); err != nil {
			return err
		}
	}
	*r = SuccessResult(response)
	return nil
}

// ToolInvoker performs the external query behind the mcp_tool step.
// Implementations report failures through ErrorResult instead of returning errors.
type ToolInvoker interface {
	Invoke(ctx context.Context, query string) ToolResult
}

// ToolInvokerFunc adapts a function to ToolInvoker.
type ToolInvokerFunc func(ctx context.Context, query string) ToolResult

func (f ToolInvokerFunc) Invoke(ctx context.Context, query string) ToolResult {
	return f(ctx, query)
}

func cloneToolResult(in *ToolResult) *ToolResult {
	if in == nil {
		return nil
	}
	out := *in
	return &out
}
