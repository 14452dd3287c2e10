package session

import (
	"errors"
	"testing"
	"time"

	"github.com/pixil98/go-sokoban/internal/puzzle"
	"github.com/pixil98/go-testutil"
)

func TestScheduler_WinArmsAndAdvances(t *testing.T) {
	s, ft, rec := newTestSession(t, oneStepLevels(t, 2))

	if err := s.ApplyMove(puzzle.Right); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v := s.Snapshot()
	testutil.AssertEqual(t, "pending", v.AdvancePending, true)
	testutil.AssertEqual(t, "target", v.AdvanceTarget, 1)
	testutil.AssertEqual(t, "movement", v.MovementEnabled, false)
	testutil.AssertEqual(t, "timers", ft.armed(), 1)
	testutil.AssertEqual(t, "delay", ft.delays[0], DefaultAdvanceDelay)

	err := s.ApplyMove(puzzle.Left)
	if !errors.Is(err, ErrMovementDisabled) {
		t.Errorf("error = %v, expected %v", err, ErrMovementDisabled)
	}

	ft.fire(t, 0)
	waitFor(t, "advance", func() bool { return s.Snapshot().Level == 1 })

	v = s.Snapshot()
	testutil.AssertEqual(t, "pending", v.AdvancePending, false)
	testutil.AssertEqual(t, "movement", v.MovementEnabled, true)
	testutil.AssertEqual(t, "can undo", v.CanUndo, false)
	testutil.AssertEqual(t, "moves", v.Moves, 0)
	assertEvents(t, rec.log(), "update", "win", "new")
}

func TestScheduler_SupersededAdvanceIsNoop(t *testing.T) {
	tests := map[string]struct {
		supersede func(*Session) bool
		expLevel  int
		expEvents []string
	}{
		"reset": {
			supersede: (*Session).ResetLevel,
			expLevel:  0,
			expEvents: []string{"update", "win", "new"},
		},
		"undo": {
			supersede: (*Session).Undo,
			expLevel:  0,
			expEvents: []string{"update", "win", "update"},
		},
		"next level": {
			supersede: (*Session).NextLevel,
			expLevel:  1,
			expEvents: []string{"update", "win", "new"},
		},
		"goto level": {
			supersede: func(s *Session) bool { return s.GotoLevel(2) },
			expLevel:  2,
			expEvents: []string{"update", "win", "new"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, ft, rec := newTestSession(t, oneStepLevels(t, 3))

			if err := s.ApplyMove(puzzle.Right); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "supersede", tt.supersede(s), true)

			v := s.Snapshot()
			testutil.AssertEqual(t, "pending", v.AdvancePending, false)
			testutil.AssertEqual(t, "movement", v.MovementEnabled, true)

			ft.fire(t, 0)
			s.Close()

			v = s.Snapshot()
			testutil.AssertEqual(t, "level", v.Level, tt.expLevel)
			assertEvents(t, rec.log(), tt.expEvents...)
		})
	}
}

func TestScheduler_RedoIntoWinRearms(t *testing.T) {
	s, ft, rec := newTestSession(t, oneStepLevels(t, 2))

	if err := s.ApplyMove(puzzle.Right); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Undo()
	s.Redo()

	v := s.Snapshot()
	testutil.AssertEqual(t, "pending", v.AdvancePending, true)
	testutil.AssertEqual(t, "timers", ft.armed(), 2)

	// The first timer belongs to an advance that undo cancelled.
	ft.fire(t, 0)
	testutil.AssertEqual(t, "level after stale timer", s.Snapshot().Level, 0)

	ft.fire(t, 1)
	waitFor(t, "advance", func() bool { return s.Snapshot().Level == 1 })

	assertEvents(t, rec.log(), "update", "win", "update", "update", "win", "new")
}

func TestScheduler_SecondWinReplacesToken(t *testing.T) {
	s, ft, _ := newTestSession(t, oneStepLevels(t, 3))

	if err := s.ApplyMove(puzzle.Right); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.NextLevel()
	if err := s.ApplyMove(puzzle.Right); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v := s.Snapshot()
	testutil.AssertEqual(t, "target", v.AdvanceTarget, 2)

	ft.fire(t, 0)
	testutil.AssertEqual(t, "level after stale timer", s.Snapshot().Level, 1)

	ft.fire(t, 1)
	waitFor(t, "advance", func() bool { return s.Snapshot().Level == 2 })
}

func TestScheduler_FinalVictory(t *testing.T) {
	s, ft, _ := newTestSession(t, oneStepLevels(t, 1))

	if err := s.ApplyMove(puzzle.Right); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v := s.Snapshot()
	testutil.AssertEqual(t, "final", v.FinalVictory, true)
	testutil.AssertEqual(t, "movement", v.MovementEnabled, false)
	testutil.AssertEqual(t, "pending", v.AdvancePending, false)
	testutil.AssertEqual(t, "timers", ft.armed(), 0)
	testutil.AssertEqual(t, "can undo", v.CanUndo, false)

	// Nothing short of navigation brings movement back.
	testutil.AssertEqual(t, "undo", s.Undo(), false)
	testutil.AssertEqual(t, "redo", s.Redo(), false)
	testutil.AssertEqual(t, "next", s.NextLevel(), false)
	testutil.AssertEqual(t, "prev", s.PrevLevel(), false)
	if err := s.ApplyMove(puzzle.Left); !errors.Is(err, ErrMovementDisabled) {
		t.Errorf("error = %v, expected %v", err, ErrMovementDisabled)
	}
	testutil.AssertEqual(t, "movement", s.Snapshot().MovementEnabled, false)

	testutil.AssertEqual(t, "reset", s.ResetLevel(), true)
	v = s.Snapshot()
	testutil.AssertEqual(t, "final after reset", v.FinalVictory, false)
	testutil.AssertEqual(t, "movement after reset", v.MovementEnabled, true)
}

func TestScheduler_RejectedTargetRestoresMovement(t *testing.T) {
	s, ft, rec := newTestSession(t, oneStepLevels(t, 2))

	if err := s.ApplyMove(puzzle.Right); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "pending", s.Snapshot().AdvancePending, true)

	// Shrink the pool so the armed target no longer exists.
	s.mu.Lock()
	s.pool.levels = s.pool.levels[:1]
	s.mu.Unlock()

	ft.fire(t, 0)
	waitFor(t, "disarm", func() bool { return !s.Snapshot().AdvancePending })
	s.Close()

	v := s.Snapshot()
	testutil.AssertEqual(t, "level", v.Level, 0)
	testutil.AssertEqual(t, "movement", v.MovementEnabled, true)
	testutil.AssertEqual(t, "final", v.FinalVictory, false)
	assertEvents(t, rec.log(), "update", "win")
}

func TestScheduler_CloseDropsPendingAdvance(t *testing.T) {
	s, ft, _ := newTestSession(t, oneStepLevels(t, 2))

	if err := s.ApplyMove(puzzle.Right); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "timers", ft.armed(), 1)

	s.Close()
	s.Close()

	v := s.Snapshot()
	testutil.AssertEqual(t, "level", v.Level, 0)
	testutil.AssertEqual(t, "pending", v.AdvancePending, false)
}

func TestScheduler_RealTimer(t *testing.T) {
	s, err := New(oneStepLevels(t, 2), WithAdvanceDelay(10*time.Millisecond))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Close()

	advanced := make(chan int, 1)
	start := time.Now()
	if err := s.ApplyMove(puzzle.Right); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.AddListener(ListenerFuncs{
		NewScenario: func(st *puzzle.State) error {
			if !st.IsWinning() {
				select {
				case advanced <- 1:
				default:
				}
			}
			return nil
		},
	})

	select {
	case <-advanced:
	case <-time.After(2 * time.Second):
		t.Fatal("session did not advance")
	}

	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Errorf("advanced after %s, before the delay", elapsed)
	}
	testutil.AssertEqual(t, "level", s.Snapshot().Level, 1)
}
