package agent

// RunID is the stable identifier for one bounded run.
type RunID string

// RunStatus captures coarse execution state of a run.
type RunStatus string

const (
	RunStatusPending   RunStatus = "pending"
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
	RunStatusCancelled RunStatus = "cancelled"
)

// RunInput configures a fresh run.
type RunInput struct {
	RunID RunID
	State WorkflowState
	// Limit is the number of snapshots to consume. Values <= 0 use DefaultSnapshotLimit.
	Limit int
}

// RunResult is returned by the runner.
type RunResult struct {
	ID        RunID
	Status    RunStatus
	Snapshots []Snapshot
	State     WorkflowState
}
