package agent

import (
	"encoding/json"
	"fmt"
)

// Snapshot captures the workflow right after one step completed.
type Snapshot struct {
	Seq    int           `json:"seq"`
	Step   Step          `json:"step"`
	Update Update        `json:"update"`
	State  WorkflowState `json:"state"`
}

// CloneSnapshot returns a deep copy of a snapshot.
func CloneSnapshot(in Snapshot) Snapshot {
	out := in
	out.Update = cloneUpdate(in.Update)
	out.State = CloneWorkflowState(in.State)
	return out
}

// String renders the step delta keyed by step name, e.g.
// {"mcp_tool":{"last_mcp_response":{"mcp_response":"..."}}}.
func (s Snapshot) String() string {
	payload, err := json.Marshal(map[Step]Update{s.Step: s.Update})
	if err != nil {
		return fmt.Sprintf("{%q:%+v}", s.Step, s.Update)
	}
	return string(payload)
}
