package session

import "github.com/pixil98/go-sokoban/internal/puzzle"

// Listener observes a session. Each callback returns the listener's successor,
// which replaces it in the registry; a nil successor keeps the current value.
// A returned error is logged and the current value is kept.
//
// Callbacks run while the session lock is held. They must not call back into
// the session; hand further work off to another goroutine instead.
type Listener interface {
	OnUpdate(state *puzzle.State, t puzzle.Transition) (Listener, error)
	OnNewScenario(state *puzzle.State) (Listener, error)
	OnWin(state *puzzle.State) (Listener, error)
}

// ListenerHandle identifies a registered listener.
type ListenerHandle uint64

// ListenerFuncs adapts plain functions into a stateless Listener. Nil fields
// are skipped.
type ListenerFuncs struct {
	Update      func(*puzzle.State, puzzle.Transition) error
	NewScenario func(*puzzle.State) error
	Win         func(*puzzle.State) error
}

func (f ListenerFuncs) OnUpdate(state *puzzle.State, t puzzle.Transition) (Listener, error) {
	if f.Update == nil {
		return f, nil
	}
	return f, f.Update(state, t)
}

func (f ListenerFuncs) OnNewScenario(state *puzzle.State) (Listener, error) {
	if f.NewScenario == nil {
		return f, nil
	}
	return f, f.NewScenario(state)
}

func (f ListenerFuncs) OnWin(state *puzzle.State) (Listener, error) {
	if f.Win == nil {
		return f, nil
	}
	return f, f.Win(state)
}
