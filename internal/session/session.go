package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-sokoban/internal/puzzle"
)

// Session is one play-through of a level pool. All of its state sits behind
// a single mutex: the current state, history, listeners, pool cursor, the
// pending advance and the movement flags.
type Session struct {
	id           uuid.UUID
	logger       *slog.Logger
	advanceDelay time.Duration
	after        func(time.Duration) <-chan time.Time

	mu           sync.Mutex
	pool         *Pool
	state        *puzzle.State
	history      History
	dispatch     *Dispatcher
	pending      *stallToken
	movement     bool
	finalVictory bool
	moves        int
	pushes       int
	closed       bool

	done    chan struct{}
	workers sync.WaitGroup
}

// View is a consistent copy of the session's observable state.
type View struct {
	Session         uuid.UUID
	Level           int
	Levels          int
	Name            string
	State           *puzzle.State
	Moves           int
	Pushes          int
	CanUndo         bool
	CanRedo         bool
	MovementEnabled bool
	AdvancePending  bool
	AdvanceTarget   int
	FinalVictory    bool
}

// New starts a session on the first level of levels.
func New(levels []Level, opts ...SessionOpt) (*Session, error) {
	pool, err := NewPool(levels)
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:           uuid.New(),
		logger:       slog.Default(),
		advanceDelay: DefaultAdvanceDelay,
		after:        time.After,
		pool:         pool,
		state:        pool.Current(),
		movement:     true,
		done:         make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.With("session", s.id.String())
	s.dispatch = NewDispatcher(s.logger)

	return s, nil
}

func (s *Session) Id() uuid.UUID {
	return s.id
}

// AddListener registers l and immediately hands it the current state through
// OnNewScenario.
func (s *Session) AddListener(l Listener) ListenerHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.dispatch.Add(l)
	s.dispatch.notifyOne(h, s.state)
	return h
}

func (s *Session) RemoveListener(h ListenerHandle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.dispatch.Remove(h)
}

// ApplyMove moves the player one cell. A denied move returns a
// puzzle.DenyReason and changes nothing.
func (s *Session) ApplyMove(d puzzle.Direction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.movement {
		return ErrMovementDisabled
	}

	t, err := puzzle.Resolve(s.state, d)
	if err != nil {
		return err
	}

	s.history.Record(s.state, t)
	s.state = puzzle.Apply(s.state, t)
	s.count(t, 1)

	s.dispatch.NotifyUpdate(s.state, t)
	if s.state.IsWinning() {
		s.winLocked()
	}
	return nil
}

// Undo reverts the latest move. It is refused once the final level is won.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finalVictory {
		return false
	}
	t, ok := s.history.Undo()
	if !ok {
		return false
	}
	s.stepLocked(t, -1)
	return true
}

// Redo replays the latest undone move.
func (s *Session) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finalVictory {
		return false
	}
	t, ok := s.history.Redo()
	if !ok {
		return false
	}
	s.stepLocked(t, 1)
	return true
}

func (s *Session) NextLevel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, state, ok := s.pool.Increase()
	if !ok {
		return false
	}
	s.loadLocked(i, state)
	return true
}

func (s *Session) PrevLevel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, state, ok := s.pool.Decrease()
	if !ok {
		return false
	}
	s.loadLocked(i, state)
	return true
}

// ResetLevel restarts the current level from its initial state.
func (s *Session) ResetLevel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(s.pool.Index(), s.pool.Current())
	return true
}

// GotoLevel jumps to level i (zero based).
func (s *Session) GotoLevel(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, state, ok := s.pool.SetCurrent(i)
	if !ok {
		return false
	}
	s.loadLocked(i, state)
	return true
}

func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		Session:         s.id,
		Level:           s.pool.Index(),
		Levels:          s.pool.Len(),
		Name:            s.pool.Name(s.pool.Index()),
		State:           s.state,
		Moves:           s.moves,
		Pushes:          s.pushes,
		CanUndo:         s.history.CanUndo() && !s.finalVictory,
		CanRedo:         s.history.CanRedo() && !s.finalVictory,
		MovementEnabled: s.movement,
		FinalVictory:    s.finalVictory,
	}
	if s.pending != nil {
		v.AdvancePending = true
		v.AdvanceTarget = s.pending.target
	}
	return v
}

// Close releases any advance worker still waiting out its delay and waits
// for it to exit. Pending advances are dropped.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.pending = nil
	close(s.done)
	s.mu.Unlock()

	s.workers.Wait()
}

// stepLocked applies a history transition. Any pending advance is dropped
// and the scheduler is re-armed if the result is a win.
func (s *Session) stepLocked(t puzzle.Transition, sign int) {
	s.disarmLocked()

	s.state = puzzle.Apply(s.state, t)
	s.count(t, sign)

	s.dispatch.NotifyUpdate(s.state, t)
	if s.state.IsWinning() {
		s.winLocked()
	}
}

// loadLocked replaces the current state wholesale with level i.
func (s *Session) loadLocked(i int, state *puzzle.State) {
	s.finalVictory = false
	s.disarmLocked()

	s.state = state
	s.history.Clear()
	s.moves = 0
	s.pushes = 0

	s.logger.Info("level loaded", "level", i, "name", s.pool.Name(i))
	s.dispatch.NotifyNew(s.state)
}

func (s *Session) winLocked() {
	s.logger.Info("level won", "level", s.pool.Index(), "moves", s.moves, "pushes", s.pushes)
	s.dispatch.NotifyWin(s.state)
	s.armLocked()
}

func (s *Session) count(t puzzle.Transition, sign int) {
	s.moves += sign
	if t.Pushed {
		s.pushes += sign
	}
}
