package session

import (
	"time"

	"github.com/google/uuid"
)

// stallToken identifies the most recently armed advance. Workers compare it
// by value once their delay has passed; it never guards anything.
type stallToken struct {
	owner  uuid.UUID
	target int
}

// armLocked schedules the move to the next level after a win. On the last
// level movement is switched off for good instead.
func (s *Session) armLocked() {
	if !s.state.IsWinning() {
		return
	}

	if s.pool.IsLastCurrent() {
		s.pending = nil
		s.movement = false
		s.finalVictory = true
		s.logger.Info("final level won")
		return
	}

	if s.closed {
		return
	}

	tok := stallToken{owner: uuid.New(), target: s.pool.Index() + 1}
	s.pending = &tok
	s.movement = false

	timer := s.after(s.advanceDelay)
	s.workers.Add(1)
	go s.awaitAdvance(tok, timer)
}

// disarmLocked drops any pending advance and hands movement back to the
// player, unless the final level has been won.
func (s *Session) disarmLocked() {
	s.pending = nil
	if !s.finalVictory {
		s.movement = true
	}
}

// awaitAdvance sleeps off-lock, then advances only if tok is still the
// armed token. Anything that superseded it already left the session
// consistent.
func (s *Session) awaitAdvance(tok stallToken, timer <-chan time.Time) {
	defer s.workers.Done()

	select {
	case <-timer:
	case <-s.done:
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil || *s.pending != tok {
		s.logger.Debug("stale advance ignored", "target", tok.target)
		return
	}
	s.disarmLocked()

	i, state, ok := s.pool.SetCurrent(tok.target)
	if !ok {
		s.logger.Error("advance target rejected by pool", "target", tok.target, "levels", s.pool.Len())
		return
	}
	s.loadLocked(i, state)
}
