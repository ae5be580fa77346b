package agent

import (
	"context"
	"iter"
)

// Engine produces the snapshot sequence of one run.
type Engine interface {
	Stream(ctx context.Context, initial WorkflowState, limit int) iter.Seq2[Snapshot, error]
}
