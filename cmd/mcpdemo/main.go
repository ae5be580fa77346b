// Command mcpdemo runs the user_input/mcp_tool workflow once and prints every snapshot.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gurpartap/mcploop/agent"
	"github.com/Gurpartap/mcploop/internal/config"
	"github.com/Gurpartap/mcploop/internal/runtimewire"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := newLogger(logOutput, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, logger, os.Stdout, runtimewire.Options{})
	stop()
	if err != nil {
		logger.Error("demo run failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger, out io.Writer, opts runtimewire.Options) (err error) {
	rt, err := runtimewire.New(ctx, cfg, logger, opts)
	if err != nil {
		return fmt.Errorf("new runtime: %w", err)
	}
	defer func() {
		if closeErr := rt.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close runtime: %w", closeErr)
		}
	}()

	result, runErr := rt.Runner.Run(ctx, agent.RunInput{
		State: agent.NewWorkflowState(cfg.Prompt),
		Limit: cfg.SnapshotLimit,
	})
	for _, snapshot := range result.Snapshots {
		if _, writeErr := fmt.Fprintf(out, "State update: %s\n", snapshot); writeErr != nil {
			return fmt.Errorf("print snapshot %d: %w", snapshot.Seq, writeErr)
		}
	}
	if runErr != nil {
		return runErr
	}

	logger.Info("demo run finished",
		slog.String("run_id", string(result.ID)),
		slog.String("status", string(result.Status)),
		slog.String("tool_mode", string(cfg.ToolMode)),
		slog.Int("snapshots", len(result.Snapshots)),
		slog.Int("tool_failures", len(result.State.ErrorLog)),
	)
	return nil
}
