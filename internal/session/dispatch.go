package session

import (
	"log/slog"

	"github.com/pixil98/go-sokoban/internal/puzzle"
)

type listenerEntry struct {
	handle   ListenerHandle
	listener Listener
}

// Dispatcher is an ordered registry of listeners. It is not safe for
// concurrent use; the owning Session serializes access.
type Dispatcher struct {
	logger  *slog.Logger
	next    ListenerHandle
	entries []*listenerEntry
}

func NewDispatcher(logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{logger: logger}
}

// Add appends l and returns its handle.
func (d *Dispatcher) Add(l Listener) ListenerHandle {
	d.next++
	d.entries = append(d.entries, &listenerEntry{handle: d.next, listener: l})
	return d.next
}

// Remove drops the listener registered under h.
func (d *Dispatcher) Remove(h ListenerHandle) bool {
	for i, e := range d.entries {
		if e.handle == h {
			d.entries = append(d.entries[:i], d.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (d *Dispatcher) Len() int {
	return len(d.entries)
}

func (d *Dispatcher) NotifyUpdate(state *puzzle.State, t puzzle.Transition) {
	d.each("update", func(l Listener) (Listener, error) {
		return l.OnUpdate(state, t)
	})
}

func (d *Dispatcher) NotifyNew(state *puzzle.State) {
	d.each("new", func(l Listener) (Listener, error) {
		return l.OnNewScenario(state)
	})
}

func (d *Dispatcher) NotifyWin(state *puzzle.State) {
	d.each("win", func(l Listener) (Listener, error) {
		return l.OnWin(state)
	})
}

// notifyOne delivers a new-scenario event to a single listener.
func (d *Dispatcher) notifyOne(h ListenerHandle, state *puzzle.State) {
	for _, e := range d.entries {
		if e.handle == h {
			d.deliver(e, "new", func(l Listener) (Listener, error) {
				return l.OnNewScenario(state)
			})
			return
		}
	}
}

func (d *Dispatcher) each(event string, call func(Listener) (Listener, error)) {
	for _, e := range d.entries {
		d.deliver(e, event, call)
	}
}

func (d *Dispatcher) deliver(e *listenerEntry, event string, call func(Listener) (Listener, error)) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("listener panicked", "event", event, "listener", e.handle, "panic", r)
		}
	}()

	next, err := call(e.listener)
	if err != nil {
		d.logger.Warn("listener failed", "event", event, "listener", e.handle, "error", err)
		return
	}
	if next != nil {
		e.listener = next
	}
}
