package agent

// WorkflowState is the aggregate passed between workflow steps.
// Steps never mutate it; they return an Update that Apply merges into a new value.
type WorkflowState struct {
	Messages       []Message   `json:"messages"`
	PendingQuery   *string     `json:"query_mcp_server,omitempty"`
	LastToolResult *ToolResult `json:"last_mcp_response,omitempty"`
	ErrorLog       []string    `json:"error_log,omitempty"`
}

// NewWorkflowState builds the initial state of a run from one human message.
func NewWorkflowState(content string) WorkflowState {
	return WorkflowState{
		Messages: []Message{HumanMessage(content)},
	}
}

// LatestMessage returns the active query message, if any.
func (s WorkflowState) LatestMessage() (Message, bool) {
	if len(s.Messages) == 0 {
		return Message{}, false
	}
	return s.Messages[len(s.Messages)-1], true
}

// CloneWorkflowState returns a deep copy safe to hand across step and snapshot boundaries.
func CloneWorkflowState(in WorkflowState) WorkflowState {
	out := in
	out.Messages = CloneMessages(in.Messages)
	if in.PendingQuery != nil {
		query := *in.PendingQuery
		out.PendingQuery = &query
	}
	out.LastToolResult = cloneToolResult(in.LastToolResult)
	if in.ErrorLog != nil {
		out.ErrorLog = append([]string(nil), in.ErrorLog...)
	}
	return out
}

// Update is the partial result of one step.
// Nil fields leave the state untouched; ErrorLog entries are appended.
type Update struct {
	PendingQuery   *string     `json:"query_mcp_server,omitempty"`
	LastToolResult *ToolResult `json:"last_mcp_response,omitempty"`
	ErrorLog       []string    `json:"error_log,omitempty"`
}

// IsEmpty reports whether applying the update is a no-op.
func (u Update) IsEmpty() bool {
	return u.PendingQuery == nil && u.LastToolResult == nil && len(u.ErrorLog) == 0
}

func cloneUpdate(in Update) Update {
	out := Update{
		LastToolResult: cloneToolResult(in.LastToolResult),
	}
	if in.PendingQuery != nil {
		query := *in.PendingQuery
		out.PendingQuery = &query
	}
	if in.ErrorLog != nil {
		out.ErrorLog = append([]string(nil), in.ErrorLog...)
	}
	return out
}

// Apply merges an update into a copy of state by explicit field replacement.
func Apply(state WorkflowState, update Update) WorkflowState {
	next := CloneWorkflowState(state)
	if update.PendingQuery != nil {
		query := *update.PendingQuery
		next.PendingQuery = &query
	}
	if update.LastToolResult != nil {
		next.LastToolResult = cloneToolResult(update.LastToolResult)
	}
	if len(update.ErrorLog) > 0 {
		next.ErrorLog = append(next.ErrorLog, update.ErrorLog...)
	}
	return next
}
