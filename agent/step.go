package agent

import "fmt"

// Step names one transition function of the workflow.
type Step string

const (
	StepUserInput Step = "user_input"
	StepMCPTool   Step = "mcp_tool"
)

// EntryStep is the first step executed by every run.
const EntryStep = StepUserInput

// Phase is the workflow state a step runs in.
type Phase string

const (
	PhaseAwaitingInput      Phase = "awaiting_input"
	PhaseAwaitingToolResult Phase = "awaiting_tool_result"
)

// The topology is fixed: user_input -> mcp_tool -> user_input.
// There is no terminal step; runs end only at the caller's snapshot limit.
var stepTransitions = map[Step]Step{
	StepUserInput: StepMCPTool,
	StepMCPTool:   StepUserInput,
}

var stepPhases = map[Step]Phase{
	StepUserInput: PhaseAwaitingInput,
	StepMCPTool:   PhaseAwaitingToolResult,
}

// Next returns the step that follows s in the cycle.
func (s Step) Next() (Step, error) {
	next, ok := stepTransitions[s]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStep, s)
	}
	return next, nil
}

// Phase returns the workflow phase s executes in.
func (s Step) Phase() Phase {
	return stepPhases[s]
}

func (s Step) valid() bool {
	_, ok := stepTransitions[s]
	return ok
}
