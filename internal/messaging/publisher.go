package messaging

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/pixil98/go-sokoban/internal/puzzle"
	"github.com/pixil98/go-sokoban/internal/session"
)

// Publisher provides the ability to publish messages to subjects
type Publisher interface {
	Publish(subject string, data []byte) error
}

type EventKind string

const (
	EventUpdate      EventKind = "update"
	EventNewScenario EventKind = "new_scenario"
	EventWin         EventKind = "win"
)

// Event is the JSON body published for every session notification.
type Event struct {
	Session      uuid.UUID    `json:"session"`
	Kind         EventKind    `json:"kind"`
	Seq          uint64       `json:"seq"`
	Scenario     int          `json:"scenario"`
	Player       puzzle.Coord `json:"player"`
	EmptyTargets int          `json:"empty_targets"`
	Changed      []Change     `json:"changed,omitempty"`
	Board        []string     `json:"board,omitempty"`
}

type Change struct {
	Coord   puzzle.Coord `json:"coord"`
	Feature string       `json:"feature"`
}

// Subject returns the subject events of kind are published on for a session.
// Spectators can subscribe to "puzzle.<session>.>" or "puzzle.>".
func Subject(id uuid.UUID, kind EventKind) string {
	return fmt.Sprintf("puzzle.%s.%s", id, kind)
}

// EventPublisher is a session listener that mirrors notifications onto the
// broker. It is a value type: every delivered event yields a successor with
// the sequence advanced, so a failed publish does not consume a number.
type EventPublisher struct {
	pub      Publisher
	session  uuid.UUID
	seq      uint64
	scenario int
}

func NewEventPublisher(pub Publisher, id uuid.UUID) EventPublisher {
	return EventPublisher{pub: pub, session: id}
}

func (p EventPublisher) OnUpdate(state *puzzle.State, t puzzle.Transition) (session.Listener, error) {
	changed := make([]Change, len(t.Changed))
	for i, c := range t.Changed {
		changed[i] = Change{Coord: c.Coord, Feature: c.Feature.String()}
	}

	return p.emit(EventUpdate, state, func(e *Event) {
		e.Changed = changed
	})
}

func (p EventPublisher) OnNewScenario(state *puzzle.State) (session.Listener, error) {
	p.scenario++
	return p.emit(EventNewScenario, state, func(e *Event) {
		e.Board = puzzle.Encode(state)
	})
}

func (p EventPublisher) OnWin(state *puzzle.State) (session.Listener, error) {
	return p.emit(EventWin, state, func(e *Event) {
		e.Board = puzzle.Encode(state)
	})
}

func (p EventPublisher) emit(kind EventKind, state *puzzle.State, fill func(*Event)) (session.Listener, error) {
	p.seq++
	e := Event{
		Session:      p.session,
		Kind:         kind,
		Seq:          p.seq,
		Scenario:     p.scenario,
		Player:       state.Player,
		EmptyTargets: state.EmptyTargets,
	}
	fill(&e)

	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s event: %w", kind, err)
	}
	if err := p.pub.Publish(Subject(p.session, kind), data); err != nil {
		return nil, fmt.Errorf("publishing %s event: %w", kind, err)
	}
	return p, nil
}
