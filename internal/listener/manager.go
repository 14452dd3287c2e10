package listener

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// SessionRunner plays one game over an accepted connection.
type SessionRunner interface {
	RunSession(ctx context.Context, conn io.ReadWriter) error
}

type ConnectionManager struct {
	runner SessionRunner
}

func NewConnectionManager(r SessionRunner) *ConnectionManager {
	return &ConnectionManager{
		runner: r,
	}
}

// AcceptConnection runs a session over conn and logs how it ended.
func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	id := uuid.New().String()
	slog.DebugContext(ctx, "connection accepted", "conn", id)

	err := m.runner.RunSession(ctx, conn)
	switch {
	case err == nil:
		slog.DebugContext(ctx, "connection finished", "conn", id)
	case errors.Is(err, context.Canceled):
		slog.DebugContext(ctx, "connection closed for shutdown", "conn", id)
	default:
		slog.WarnContext(ctx, "player session", "conn", id, "error", err)
	}
}
