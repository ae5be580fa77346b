package agent

import "fmt"

// ValidateEvent checks event payload invariants before publish boundaries.
func ValidateEvent(event Event) error {
	if event.Type == "" {
		return fmt.Errorf("%w: field=type reason=empty", ErrEventInvalid)
	}
	if event.RunID == "" {
		return fmt.Errorf("%w: field=run_id reason=empty type=%s", ErrEventInvalid, event.Type)
	}
	if event.Seq < 0 {
		return fmt.Errorf(
			"%w: field=seq reason=negative value=%d type=%s run_id=%q",
			ErrEventInvalid,
			event.Seq,
			event.Type,
			event.RunID,
		)
	}

	switch event.Type {
	case EventTypeStepCompleted:
		if !event.Step.valid() {
			return fmt.Errorf(
				"%w: field=step reason=unknown value=%q type=%s run_id=%q seq=%d",
				ErrEventInvalid,
				event.Step,
				event.Type,
				event.RunID,
				event.Seq,
			)
		}
	case EventTypeToolResult, EventTypeToolError:
		if event.ToolResult == nil {
			return fmt.Errorf(
				"%w: field=tool_result reason=nil type=%s run_id=%q seq=%d",
				ErrEventInvalid,
				event.Type,
				event.RunID,
				event.Seq,
			)
		}
		if event.ToolResult.IsError() != (event.Type == EventTypeToolError) {
			return fmt.Errorf(
				"%w: field=tool_result reason=shape_mismatch type=%s run_id=%q seq=%d",
				ErrEventInvalid,
				event.Type,
				event.RunID,
				event.Seq,
			)
		}
	}

	return nil
}
