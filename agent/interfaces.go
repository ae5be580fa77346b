package agent

import "context"

// EventSink receives normalized runtime events.
type EventSink interface {
	Publish(ctx context.Context, event Event) error
}

// IDGenerator creates run IDs at the runtime boundary.
type IDGenerator interface {
	NewRunID(ctx context.Context) (RunID, error)
}
