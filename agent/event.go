package agent

// EventType is emitted by the runner for observability.
type EventType string

const (
	EventTypeRunStarted    EventType = "run_started"
	EventTypeStepCompleted EventType = "step_completed"
	EventTypeToolResult    EventType = "tool_result"
	EventTypeToolError     EventType = "tool_error"
	EventTypeRunCompleted  EventType = "run_completed"
	EventTypeRunFailed     EventType = "run_failed"
	EventTypeRunCancelled  EventType = "run_cancelled"
)

// Event is intentionally compact so adapters can map it to logs, metrics, or streams.
type Event struct {
	RunID       RunID       `json:"run_id"`
	Seq         int         `json:"seq"`
	Type        EventType   `json:"type"`
	Step        Step        `json:"step,omitempty"`
	ToolResult  *ToolResult `json:"tool_result,omitempty"`
	Description string      `json:"description,omitempty"`
}

// CloneEvent returns a deep copy of an event.
func CloneEvent(in Event) Event {
	out := in
	out.ToolResult = cloneToolResult(in.ToolResult)
	return out
}
