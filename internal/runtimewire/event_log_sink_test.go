package runtimewire

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Gurpartap/mcploop/agent"
	"github.com/Gurpartap/mcploop/internal/config"
)

func TestNewRuntimeEventLogSink_NilLogger(t *testing.T) {
	t.Parallel()

	require.Nil(t, newRuntimeEventLogSink(nil, config.LogFormatText))
}

func TestRuntimeEventLogSink_DebugTextFormatLogsFullEventJSONString(t *testing.T) {
	t.Parallel()

	var logBuffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuffer, &slog.HandlerOptions{Level: slog.LevelDebug}))
	sink := newRuntimeEventLogSink(logger, config.LogFormatText)
	require.NotNil(t, sink)

	result := agent.SuccessResult("full payload content")
	event := agent.Event{
		RunID:      "run-000001",
		Seq:        2,
		Type:       agent.EventTypeToolResult,
		Step:       agent.StepMCPTool,
		ToolResult: &result,
	}
	require.NoError(t, sink.Publish(context.Background(), event))

	line := logBuffer.String()
	require.Contains(t, line, "run event")
	require.Contains(t, line, "full payload content")
	require.Contains(t, line, "event=")
}

func TestRuntimeEventLogSink_DebugJSONFormatLogsNestedObject(t *testing.T) {
	t.Parallel()

	var logBuffer bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logBuffer, &slog.HandlerOptions{Level: slog.LevelDebug}))
	sink := newRuntimeEventLogSink(logger, config.LogFormatJSON)

	result := agent.SuccessResult("nested")
	require.NoError(t, sink.Publish(context.Background(), agent.Event{
		RunID:      "run-000001",
		Seq:        2,
		Type:       agent.EventTypeToolResult,
		Step:       agent.StepMCPTool,
		ToolResult: &result,
	}))

	var entry struct {
		Msg   string `json:"msg"`
		Event struct {
			RunID      string `json:"run_id"`
			Type       string `json:"type"`
			ToolResult struct {
				Response string `json:"mcp_response"`
			} `json:"tool_result"`
		} `json:"event"`
	}
	require.NoError(t, json.Unmarshal(logBuffer.Bytes(), &entry))
	require.Equal(t, "run event", entry.Msg)
	require.Equal(t, "run-000001", entry.Event.RunID)
	require.Equal(t, string(agent.EventTypeToolResult), entry.Event.Type)
	require.Equal(t, "nested", entry.Event.ToolResult.Response)
}

func TestRuntimeEventLogSink_InfoLevelSuppressesDebugButWarnsOnToolError(t *testing.T) {
	t.Parallel()

	var logBuffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuffer, &slog.HandlerOptions{Level: slog.LevelInfo}))
	sink := newRuntimeEventLogSink(logger, config.LogFormatText)

	require.NoError(t, sink.Publish(context.Background(), agent.Event{
		RunID: "run-000001",
		Seq:   1,
		Type:  agent.EventTypeStepCompleted,
		Step:  agent.StepUserInput,
	}))
	require.Empty(t, logBuffer.String())

	failure := agent.ErrorResult("server down")
	require.NoError(t, sink.Publish(context.Background(), agent.Event{
		RunID:      "run-000001",
		Seq:        2,
		Type:       agent.EventTypeToolError,
		Step:       agent.StepMCPTool,
		ToolResult: &failure,
	}))
	line := logBuffer.String()
	require.Contains(t, line, "tool invocation failed")
	require.Contains(t, line, "server down")
	require.Equal(t, 1, strings.Count(line, "\n"))
}

func TestRuntimeEventLogSink_RejectsCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink := newRuntimeEventLogSink(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), config.LogFormatText)
	require.ErrorIs(t, sink.Publish(ctx, agent.Event{RunID: "run-1", Type: agent.EventTypeRunStarted}), context.Canceled)
}
