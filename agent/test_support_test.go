package agent_test

import (
	"context"
	"iter"
	"sync"

	"github.com/Gurpartap/mcploop/agent"
)

type engineFunc func(ctx context.Context, initial agent.WorkflowState, limit int) iter.Seq2[agent.Snapshot, error]

func (f engineFunc) Stream(ctx context.Context, initial agent.WorkflowState, limit int) iter.Seq2[agent.Snapshot, error] {
	return f(ctx, initial, limit)
}

// scriptedEngine yields the configured snapshots regardless of input.
func scriptedEngine(snapshots ...agent.Snapshot) agent.Engine {
	return engineFunc(func(context.Context, agent.WorkflowState, int) iter.Seq2[agent.Snapshot, error] {
		return func(yield func(agent.Snapshot, error) bool) {
			for _, snapshot := range snapshots {
				if !yield(snapshot, nil) {
					return
				}
			}
		}
	})
}

type failingEventSink struct {
	mu     sync.Mutex
	failOn int
	err    error
	calls  int
}

func newFailingEventSink(failOn int, err error) *failingEventSink {
	return &failingEventSink{failOn: failOn, err: err}
}

func (s *failingEventSink) Publish(context.Context, agent.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	if s.calls == s.failOn {
		return s.err
	}
	return nil
}

func (s *failingEventSink) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type errIDGenerator struct {
	id  agent.RunID
	err error
}

func (g errIDGenerator) NewRunID(context.Context) (agent.RunID, error) {
	return g.id, g.err
}
