package agent

import (
	"context"
	"fmt"
	"iter"
)

// DefaultSnapshotLimit bounds runs that do not set a limit.
const DefaultSnapshotLimit = 3

// Workflow drives the two-step user_input/mcp_tool cycle.
type Workflow struct {
	tools ToolInvoker
}

var _ Engine = (*Workflow)(nil)

func NewWorkflow(tools ToolInvoker) (*Workflow, error) {
	if tools == nil {
		return nil, fmt.Errorf("new workflow: %w", ErrMissingToolInvoker)
	}
	return &Workflow{tools: tools}, nil
}

// UserInput hands the content of the latest message to the tool step.
// An empty history produces the empty update.
func (w *Workflow) UserInput(state WorkflowState) Update {
	latest, ok := state.LatestMessage()
	if !ok {
		return Update{}
	}
	query := latest.Content
	return Update{PendingQuery: &query}
}

// MCPTool invokes the tool with the pending query and records the result.
// Error results are kept as the last result and appended to the error log.
func (w *Workflow) MCPTool(ctx context.Context, state WorkflowState) Update {
	if state.PendingQuery == nil {
		return Update{}
	}
	result := w.tools.Invoke(ctx, *state.PendingQuery)
	update := Update{LastToolResult: &result}
	if result.IsError() {
		update.ErrorLog = []string{result.Error}
	}
	return update
}

func (w *Workflow) execute(ctx context.Context, step Step, state WorkflowState) (Update, error) {
	switch step {
	case StepUserInput:
		return w.UserInput(state), nil
	case StepMCPTool:
		return w.MCPTool(ctx, state), nil
	default:
		return Update{}, fmt.Errorf("%w: %q", ErrUnknownStep, step)
	}
}

// Stream runs one step per pull and yields a snapshot after each, starting at EntryStep.
// It stops after limit snapshots, when the consumer stops pulling, or when ctx is done.
// A limit <= 0 falls back to DefaultSnapshotLimit.
func (w *Workflow) Stream(ctx context.Context, initial WorkflowState, limit int) iter.Seq2[Snapshot, error] {
	if limit <= 0 {
		limit = DefaultSnapshotLimit
	}
	return func(yield func(Snapshot, error) bool) {
		if ctx == nil {
			yield(Snapshot{}, ErrContextNil)
			return
		}

		state := CloneWorkflowState(initial)
		step := EntryStep
		for seq := 1; seq <= limit; seq++ {
			if ctxErr := ctx.Err(); ctxErr != nil {
				yield(Snapshot{}, ctxErr)
				return
			}

			update, err := w.execute(ctx, step, state)
			if err != nil {
				yield(Snapshot{}, err)
				return
			}
			state = Apply(state, update)

			snapshot := Snapshot{
				Seq:    seq,
				Step:   step,
				Update: cloneUpdate(update),
				State:  CloneWorkflowState(state),
			}
			if !yield(snapshot, nil) {
				return
			}

			if step, err = step.Next(); err != nil {
				yield(Snapshot{}, err)
				return
			}
		}
	}
}

// Collect drains Stream and returns every snapshot produced before the first error.
func (w *Workflow) Collect(ctx context.Context, initial WorkflowState, limit int) ([]Snapshot, error) {
	var snapshots []Snapshot
	for snapshot, err := range w.Stream(ctx, initial, limit) {
		if err != nil {
			return snapshots, err
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, nil
}
