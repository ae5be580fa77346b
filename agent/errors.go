package agent

import "errors"

var (
	ErrContextNil         = errors.New("context is nil")
	ErrMissingIDGenerator = errors.New("missing id generator")
	ErrMissingEngine      = errors.New("missing engine")
	ErrMissingToolInvoker = errors.New("missing tool invoker")
	ErrInvalidRunID       = errors.New("invalid run id")
	ErrUnknownStep        = errors.New("unknown workflow step")

	// ErrInvalidRunStateTransition is returned when a run status change is not in the lifecycle table.
	ErrInvalidRunStateTransition = errors.New("invalid run state transition")
	// ErrSnapshotOrderViolation is returned when an engine yields snapshots out of step order.
	ErrSnapshotOrderViolation = errors.New("snapshot order violation")

	ErrEventInvalid = errors.New("event is invalid")
	ErrEventPublish = errors.New("event publish failed")
)
