package agent

import "fmt"

func validateRunStatusTransition(from, to RunStatus) error {
	if from == to {
		return nil
	}

	allowed, ok := allowedRunStatusTransitions[from]
	if !ok {
		return fmt.Errorf("%w: unknown source status %q", ErrInvalidRunStateTransition, from)
	}
	if _, ok := allowed[to]; !ok {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidRunStateTransition, from, to)
	}
	return nil
}

func transitionRunStatus(result *RunResult, to RunStatus) error {
	if err := validateRunStatusTransition(result.Status, to); err != nil {
		return err
	}
	result.Status = to
	return nil
}

var allowedRunStatusTransitions = map[RunStatus]map[RunStatus]struct{}{
	"": {
		RunStatusPending: {},
	},
	RunStatusPending: {
		RunStatusRunning:   {},
		RunStatusCancelled: {},
	},
	RunStatusRunning: {
		RunStatusCompleted: {},
		RunStatusFailed:    {},
		RunStatusCancelled: {},
	},
	RunStatusCompleted: {},
	RunStatusFailed:    {},
	RunStatusCancelled: {},
}
