package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/pixil98/go-sokoban/internal/puzzle"
)

func mustLevel(t *testing.T, name string, rows ...string) Level {
	t.Helper()
	s, err := puzzle.Decode(rows)
	if err != nil {
		t.Fatalf("decoding %s: %v", name, err)
	}
	return Level{Name: name, State: s}
}

// oneStepLevels returns levels that are each won by a single push right.
func oneStepLevels(t *testing.T, n int) []Level {
	t.Helper()
	levels := make([]Level, n)
	for i := range levels {
		levels[i] = mustLevel(t, fmt.Sprintf("level-%d", i), "#####", "#@$.#", "#####")
	}
	return levels
}

// fakeTimer hands out unbuffered channels so a fire only returns once the
// waiting worker has received it.
type fakeTimer struct {
	mu     sync.Mutex
	chans  []chan time.Time
	delays []time.Duration
}

func (f *fakeTimer) after(d time.Duration) <-chan time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan time.Time)
	f.chans = append(f.chans, ch)
	f.delays = append(f.delays, d)
	return ch
}

func (f *fakeTimer) armed() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.chans)
}

func (f *fakeTimer) fire(t *testing.T, i int) {
	t.Helper()
	f.mu.Lock()
	ch := f.chans[i]
	f.mu.Unlock()

	select {
	case ch <- time.Now():
	case <-time.After(time.Second):
		t.Fatalf("timer %d: no worker waiting", i)
	}
}

func newTestSession(t *testing.T, levels []Level) (*Session, *fakeTimer, *recorder) {
	t.Helper()
	ft := &fakeTimer{}
	s, err := New(levels, WithTimer(ft.after))
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}
	t.Cleanup(s.Close)

	rec := &recorder{}
	s.AddListener(rec)
	rec.reset()
	return s, ft, rec
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

// recorder logs every event it receives.
type recorder struct {
	mu     sync.Mutex
	events []string
	states []*puzzle.State
}

func (r *recorder) add(event string, s *puzzle.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	r.states = append(r.states, s)
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
	r.states = nil
}

func (r *recorder) log() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	copy(out, r.events)
	return out
}

func (r *recorder) OnUpdate(s *puzzle.State, _ puzzle.Transition) (Listener, error) {
	r.add("update", s)
	return r, nil
}

func (r *recorder) OnNewScenario(s *puzzle.State) (Listener, error) {
	r.add("new", s)
	return r, nil
}

func (r *recorder) OnWin(s *puzzle.State) (Listener, error) {
	r.add("win", s)
	return r, nil
}

func assertEvents(t *testing.T, got []string, exp ...string) {
	t.Helper()
	if len(got) != len(exp) {
		t.Fatalf("events = %v, expected %v", got, exp)
	}
	for i := range exp {
		if got[i] != exp[i] {
			t.Fatalf("events = %v, expected %v", got, exp)
		}
	}
}
