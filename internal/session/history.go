package session

import "github.com/pixil98/go-sokoban/internal/puzzle"

type historyRecord struct {
	forward puzzle.Transition
	inverse puzzle.Transition
}

// History holds the undo and redo stacks for the active level.
type History struct {
	undo []historyRecord
	redo []historyRecord
}

// Record stores t, resolved against before, and drops any redo entries.
// Transitions handed back by Undo and Redo are marked as replayed.
func (h *History) Record(before *puzzle.State, t puzzle.Transition) {
	inverse := puzzle.Invert(before, t)
	inverse.Replayed = true
	t.Replayed = true

	h.undo = append(h.undo, historyRecord{
		forward: t,
		inverse: inverse,
	})
	h.redo = nil
}

// Undo pops the latest record and returns the transition that reverts it.
func (h *History) Undo() (puzzle.Transition, bool) {
	if len(h.undo) == 0 {
		return puzzle.Transition{}, false
	}
	r := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, r)
	return r.inverse, true
}

// Redo pops the latest undone record and returns the transition that
// replays it.
func (h *History) Redo() (puzzle.Transition, bool) {
	if len(h.redo) == 0 {
		return puzzle.Transition{}, false
	}
	r := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, r)
	return r.forward, true
}

func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }
