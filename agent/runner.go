package agent

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

// Dependencies wires application services into the runner.
type Dependencies struct {
	IDGenerator IDGenerator
	Engine      Engine
	EventSink   EventSink
}

// Runner owns the run lifecycle: it assigns IDs, enforces the snapshot limit,
// checks step order, and publishes events.
type Runner struct {
	idGen  IDGenerator
	engine Engine
	events EventSink
}

func NewRunner(deps Dependencies) (*Runner, error) {
	if deps.IDGenerator == nil {
		return nil, fmt.Errorf("new runner: %w", ErrMissingIDGenerator)
	}
	if deps.Engine == nil {
		return nil, fmt.Errorf("new runner: %w", ErrMissingEngine)
	}
	if deps.EventSink == nil {
		deps.EventSink = noopEventSink{}
	}
	return &Runner{
		idGen:  deps.IDGenerator,
		engine: deps.Engine,
		events: deps.EventSink,
	}, nil
}

func publishEvent(ctx context.Context, sink EventSink, event Event) error {
	if err := sink.Publish(ctx, event); err != nil {
		return errors.Join(
			ErrEventPublish,
			fmt.Errorf(
				"type=%s run_id=%s seq=%d: %w",
				event.Type,
				event.RunID,
				event.Seq,
				err,
			),
		)
	}
	return nil
}

func sideEffectContext(ctx context.Context) context.Context {
	if ctx.Err() != nil {
		return context.WithoutCancel(ctx)
	}
	return ctx
}

func contextCancellationError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	switch {
	case errors.Is(err, context.Canceled):
		return context.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return context.DeadlineExceeded
	default:
		return nil
	}
}

func validateSnapshot(prev WorkflowState, wantSeq int, wantStep Step, next Snapshot) error {
	if next.Seq != wantSeq {
		return fmt.Errorf(
			"%w: invariant=seq want=%d got=%d",
			ErrSnapshotOrderViolation,
			wantSeq,
			next.Seq,
		)
	}
	if next.Step != wantStep {
		return fmt.Errorf(
			"%w: invariant=step seq=%d want=%s got=%s",
			ErrSnapshotOrderViolation,
			next.Seq,
			wantStep,
			next.Step,
		)
	}
	if len(next.State.Messages) < len(prev.Messages) {
		return fmt.Errorf(
			"%w: invariant=messages_length seq=%d input=%d output=%d",
			ErrSnapshotOrderViolation,
			next.Seq,
			len(prev.Messages),
			len(next.State.Messages),
		)
	}
	if len(prev.Messages) > 0 && !reflect.DeepEqual(next.State.Messages[:len(prev.Messages)], prev.Messages) {
		return fmt.Errorf(
			"%w: invariant=messages_prefix seq=%d",
			ErrSnapshotOrderViolation,
			next.Seq,
		)
	}
	return nil
}

// Run executes a new run and returns every snapshot it produced.
// Tool failures are recorded in the state and never surface as errors here.
func (r *Runner) Run(ctx context.Context, input RunInput) (RunResult, error) {
	if ctx == nil {
		return RunResult{}, ErrContextNil
	}

	runID := input.RunID
	if runID == "" {
		generated, err := r.idGen.NewRunID(ctx)
		if err != nil {
			return RunResult{}, err
		}
		if generated == "" {
			return RunResult{}, fmt.Errorf("%w: generated id is empty", ErrInvalidRunID)
		}
		runID = generated
	}
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultSnapshotLimit
	}

	result := RunResult{
		ID:    runID,
		State: CloneWorkflowState(input.State),
	}
	if err := transitionRunStatus(&result, RunStatusPending); err != nil {
		return result, err
	}

	var eventErr error
	eventErr = errors.Join(eventErr, publishEvent(sideEffectContext(ctx), r.events, Event{
		RunID:       runID,
		Type:        EventTypeRunStarted,
		Description: fmt.Sprintf("run ready with snapshot limit %d", limit),
	}))
	if err := transitionRunStatus(&result, RunStatusRunning); err != nil {
		return result, errors.Join(err, eventErr)
	}

	wantStep := EntryStep
	for snapshot, err := range r.engine.Stream(ctx, result.State, limit) {
		if err != nil {
			if cancellationErr := contextCancellationError(ctx, err); cancellationErr != nil {
				return r.cancelRun(ctx, result, cancellationErr, eventErr)
			}
			return r.failRun(ctx, result, err, eventErr)
		}
		if orderErr := validateSnapshot(result.State, len(result.Snapshots)+1, wantStep, snapshot); orderErr != nil {
			return r.failRun(ctx, result, orderErr, eventErr)
		}

		snapshot = CloneSnapshot(snapshot)
		result.Snapshots = append(result.Snapshots, snapshot)
		result.State = CloneWorkflowState(snapshot.State)
		eventErr = errors.Join(eventErr, r.publishSnapshot(ctx, runID, snapshot))

		next, stepErr := snapshot.Step.Next()
		if stepErr != nil {
			return r.failRun(ctx, result, stepErr, eventErr)
		}
		wantStep = next
		if len(result.Snapshots) == limit {
			break
		}
	}

	if err := transitionRunStatus(&result, RunStatusCompleted); err != nil {
		return result, errors.Join(err, eventErr)
	}
	eventErr = errors.Join(eventErr, publishEvent(sideEffectContext(ctx), r.events, Event{
		RunID:       runID,
		Seq:         len(result.Snapshots),
		Type:        EventTypeRunCompleted,
		Description: "snapshot limit reached",
	}))
	return result, eventErr
}

func (r *Runner) publishSnapshot(ctx context.Context, runID RunID, snapshot Snapshot) error {
	sideEffectCtx := sideEffectContext(ctx)
	err := publishEvent(sideEffectCtx, r.events, Event{
		RunID: runID,
		Seq:   snapshot.Seq,
		Type:  EventTypeStepCompleted,
		Step:  snapshot.Step,
	})

	toolResult := snapshot.Update.LastToolResult
	if snapshot.Step != StepMCPTool || toolResult == nil {
		return err
	}
	eventType := EventTypeToolResult
	if toolResult.IsError() {
		eventType = EventTypeToolError
	}
	return errors.Join(err, publishEvent(sideEffectCtx, r.events, Event{
		RunID:      runID,
		Seq:        snapshot.Seq,
		Type:       eventType,
		Step:       snapshot.Step,
		ToolResult: cloneToolResult(toolResult),
	}))
}

func (r *Runner) cancelRun(ctx context.Context, result RunResult, runErr error, eventErr error) (RunResult, error) {
	if transitionErr := transitionRunStatus(&result, RunStatusCancelled); transitionErr != nil {
		return result, errors.Join(runErr, transitionErr, eventErr)
	}
	eventErr = errors.Join(eventErr, publishEvent(sideEffectContext(ctx), r.events, Event{
		RunID:       result.ID,
		Seq:         len(result.Snapshots),
		Type:        EventTypeRunCancelled,
		Description: runErr.Error(),
	}))
	return result, errors.Join(runErr, eventErr)
}

func (r *Runner) failRun(ctx context.Context, result RunResult, runErr error, eventErr error) (RunResult, error) {
	if transitionErr := transitionRunStatus(&result, RunStatusFailed); transitionErr != nil {
		return result, errors.Join(runErr, transitionErr, eventErr)
	}
	eventErr = errors.Join(eventErr, publishEvent(sideEffectContext(ctx), r.events, Event{
		RunID:       result.ID,
		Seq:         len(result.Snapshots),
		Type:        EventTypeRunFailed,
		Description: runErr.Error(),
	}))
	return result, errors.Join(runErr, eventErr)
}
