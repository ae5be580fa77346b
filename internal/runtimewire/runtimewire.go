package runtimewire

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Gurpartap/mcploop/adapters/uuidgen"
	"github.com/Gurpartap/mcploop/agent"
	eventinginmem "github.com/Gurpartap/mcploop/eventing/inmem"
	"github.com/Gurpartap/mcploop/internal/config"
	"github.com/Gurpartap/mcploop/tooling/echo"
	"github.com/Gurpartap/mcploop/tooling/mcpclient"
	"github.com/Gurpartap/mcploop/tooling/mcpserver"
)

// Runtime contains the composed runtime dependencies for the driver.
type Runtime struct {
	Runner    *agent.Runner
	EventSink *eventinginmem.Sink

	closers []func() error
}

// Options overrides pieces of the composition, mostly for tests.
type Options struct {
	IDGenerator agent.IDGenerator
	Tools       agent.ToolInvoker
}

func New(ctx context.Context, cfg config.Config, logger *slog.Logger, opts Options) (*Runtime, error) {
	rt := &Runtime{
		EventSink: eventinginmem.New(),
	}

	tools := opts.Tools
	if tools == nil {
		built, err := rt.newToolInvoker(ctx, cfg.ToolMode)
		if err != nil {
			return nil, err
		}
		tools = built
	}
	idGen := opts.IDGenerator
	if idGen == nil {
		idGen = uuidgen.New()
	}

	workflow, err := agent.NewWorkflow(tools)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("new runtime workflow: %w", err), rt.Close())
	}

	var sinks []agent.EventSink
	sinks = append(sinks, rt.EventSink)
	if logSink := newRuntimeEventLogSink(logger, cfg.LogFormat); logSink != nil {
		sinks = append(sinks, logSink)
	}
	runner, err := agent.NewRunner(agent.Dependencies{
		IDGenerator: idGen,
		Engine:      workflow,
		EventSink:   newFanoutSink(sinks...),
	})
	if err != nil {
		return nil, errors.Join(fmt.Errorf("new runtime runner: %w", err), rt.Close())
	}
	rt.Runner = runner

	return rt, nil
}

func (rt *Runtime) newToolInvoker(ctx context.Context, mode config.ToolMode) (agent.ToolInvoker, error) {
	switch mode {
	case config.ToolModeEcho, "":
		return echo.New(), nil
	case config.ToolModeMCP:
		invoker, err := mcpclient.Connect(ctx, mcpserver.New())
		if err != nil {
			return nil, fmt.Errorf("new runtime tools: %w", err)
		}
		rt.closers = append(rt.closers, invoker.Close)
		return invoker, nil
	default:
		return nil, fmt.Errorf("new runtime tools: unsupported tool mode %q", mode)
	}
}

// Close releases the MCP session, if one was opened.
func (rt *Runtime) Close() error {
	var result error
	for i := len(rt.closers) - 1; i >= 0; i-- {
		result = errors.Join(result, rt.closers[i]())
	}
	rt.closers = nil
	return result
}

type fanoutSink struct {
	sinks []agent.EventSink
}

func newFanoutSink(sinks ...agent.EventSink) fanoutSink {
	filtered := make([]agent.EventSink, 0, len(sinks))
	for _, sink := range sinks {
		if sink != nil {
			filtered = append(filtered, sink)
		}
	}
	return fanoutSink{sinks: filtered}
}

func (s fanoutSink) Publish(ctx context.Context, event agent.Event) error {
	var result error
	for _, sink := range s.sinks {
		if err := sink.Publish(ctx, event); err != nil {
			result = errors.Join(result, err)
		}
	}
	return result
}
