package session

import (
	"testing"

	"github.com/pixil98/go-sokoban/internal/puzzle"
	"github.com/pixil98/go-testutil"
)

func TestHistory(t *testing.T) {
	s0, err := puzzle.Decode([]string{"@$. "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var h History
	testutil.AssertEqual(t, "empty undo", h.CanUndo(), false)
	if _, ok := h.Undo(); ok {
		t.Fatal("undo on empty history")
	}

	t1, err := puzzle.Resolve(s0, puzzle.Right)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h.Record(s0, t1)
	s1 := puzzle.Apply(s0, t1)

	inv, ok := h.Undo()
	testutil.AssertEqual(t, "undo", ok, true)
	testutil.AssertEqual(t, "restored", puzzle.Apply(s1, inv).Equal(s0), true)
	testutil.AssertEqual(t, "undo marked", inv.Replayed, true)
	testutil.AssertEqual(t, "move unmarked", t1.Replayed, false)
	testutil.AssertEqual(t, "can redo", h.CanRedo(), true)

	fwd, ok := h.Redo()
	testutil.AssertEqual(t, "redo", ok, true)
	testutil.AssertEqual(t, "replayed", puzzle.Apply(s0, fwd).Equal(s1), true)
	testutil.AssertEqual(t, "redo marked", fwd.Replayed, true)

	h.Record(s1, puzzle.Transition{Player: s1.Player, EmptyTargets: s1.EmptyTargets})
	testutil.AssertEqual(t, "redo cleared", h.CanRedo(), false)

	h.Clear()
	testutil.AssertEqual(t, "cleared undo", h.CanUndo(), false)
	testutil.AssertEqual(t, "cleared redo", h.CanRedo(), false)
}
