package agent_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Gurpartap/mcploop/agent"
)

func TestNewWorkflowState_Defaults(t *testing.T) {
	t.Parallel()

	state := agent.NewWorkflowState("hello mcp")
	require.Equal(t, []agent.Message{{Role: agent.RoleHuman, Content: "hello mcp"}}, state.Messages)
	require.Nil(t, state.PendingQuery)
	require.Nil(t, state.LastToolResult)
	require.Empty(t, state.ErrorLog)
}

func TestApply_ReplacesFieldsWithoutMutatingInput(t *testing.T) {
	t.Parallel()

	first := agent.SuccessResult("first")
	query := "q1"
	state := agent.WorkflowState{
		Messages:       []agent.Message{agent.HumanMessage("q1")},
		PendingQuery:   &query,
		LastToolResult: &first,
		ErrorLog:       []string{"old failure"},
	}
	before := agent.CloneWorkflowState(state)

	nextQuery := "q2"
	failure := agent.ErrorResult("new failure")
	next := agent.Apply(state, agent.Update{
		PendingQuery:   &nextQuery,
		LastToolResult: &failure,
		ErrorLog:       []string{"new failure"},
	})

	require.Equal(t, before, state, "apply mutated its input")
	require.Equal(t, "q2", *next.PendingQuery)
	require.Equal(t, failure, *next.LastToolResult)
	require.Equal(t, []string{"old failure", "new failure"}, next.ErrorLog)
	require.Equal(t, state.Messages, next.Messages)

	nextQuery = "changed"
	require.Equal(t, "q2", *next.PendingQuery, "update aliasing leaked into state")
}

func TestApply_EmptyUpdateIsNoOp(t *testing.T) {
	t.Parallel()

	state := agent.NewWorkflowState("hello")
	require.True(t, agent.Update{}.IsEmpty())
	require.Equal(t, state, agent.Apply(state, agent.Update{}))
}

func TestCloneWorkflowState_IsDeep(t *testing.T) {
	t.Parallel()

	result := agent.SuccessResult("ok")
	query := "q"
	state := agent.WorkflowState{
		Messages:       []agent.Message{agent.HumanMessage("q")},
		PendingQuery:   &query,
		LastToolResult: &result,
		ErrorLog:       []string{"e"},
	}
	clone := agent.CloneWorkflowState(state)

	clone.Messages[0].Content = "mutated"
	*clone.PendingQuery = "mutated"
	clone.LastToolResult.Response = "mutated"
	clone.ErrorLog[0] = "mutated"

	require.Equal(t, "q", state.Messages[0].Content)
	require.Equal(t, "q", *state.PendingQuery)
	require.Equal(t, "ok", state.LastToolResult.Response)
	require.Equal(t, "e", state.ErrorLog[0])
}

func TestToolResult_TaggedVariant(t *testing.T) {
	t.Parallel()

	success := agent.SuccessResult("hi")
	require.False(t, success.IsError())
	require.Equal(t, "hi", success.Text())

	failure := agent.ErrorResult("")
	require.True(t, failure.IsError())
	require.Equal(t, "", failure.Text())

	payload, err := json.Marshal(success)
	require.NoError(t, err)
	require.JSONEq(t, `{"mcp_response":"hi"}`, string(payload))

	payload, err = json.Marshal(failure)
	require.NoError(t, err)
	require.JSONEq(t, `{"error":""}`, string(payload))

	var decoded agent.ToolResult
	require.NoError(t, json.Unmarshal([]byte(`{"error":"down"}`), &decoded))
	require.Equal(t, agent.ErrorResult("down"), decoded)

	require.NoError(t, json.Unmarshal([]byte(`{"mcp_response":"up"}`), &decoded))
	require.Equal(t, agent.SuccessResult("up"), decoded)
}
