package session

import (
	"log/slog"
	"time"
)

const DefaultAdvanceDelay = 2 * time.Second

type SessionOpt func(*Session)

// WithAdvanceDelay sets how long a won level stays on screen before the
// session moves on to the next one.
func WithAdvanceDelay(d time.Duration) SessionOpt {
	return func(s *Session) {
		s.advanceDelay = d
	}
}

// WithLogger sets the base logger. The session adds its own id attribute.
func WithLogger(l *slog.Logger) SessionOpt {
	return func(s *Session) {
		s.logger = l
	}
}

// WithTimer replaces time.After for the advance delay.
func WithTimer(after func(time.Duration) <-chan time.Time) SessionOpt {
	return func(s *Session) {
		s.after = after
	}
}
