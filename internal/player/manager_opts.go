package player

import (
	"github.com/pixil98/go-sokoban/internal/messaging"
	"github.com/pixil98/go-sokoban/internal/metrics"
	"github.com/pixil98/go-sokoban/internal/session"
)

type ManagerOpt func(*Manager)

// WithPublisher mirrors every session's events onto pub.
func WithPublisher(pub messaging.Publisher) ManagerOpt {
	return func(m *Manager) {
		m.publisher = pub
	}
}

// WithSessionOpts applies opts to every session the manager creates.
func WithSessionOpts(opts ...session.SessionOpt) ManagerOpt {
	return func(m *Manager) {
		m.sessionOpts = append(m.sessionOpts, opts...)
	}
}

// WithMetrics records session activity in m.
func WithMetrics(m *metrics.Metrics) ManagerOpt {
	return func(mgr *Manager) {
		mgr.metrics = m
	}
}
