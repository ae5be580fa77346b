// Package uuidgen issues time-ordered run IDs for processes that outlive a single test.
package uuidgen

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Gurpartap/mcploop/agent"
)

// Generator creates UUIDv7 run IDs.
type Generator struct{}

var _ agent.IDGenerator = Generator{}

func New() Generator {
	return Generator{}
}

func (Generator) NewRunID(_ context.Context) (agent.RunID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("new run id: %w", err)
	}
	return agent.RunID(id.String()), nil
}
