package levels

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-sokoban/internal/puzzle"
	"github.com/pixil98/go-sokoban/internal/session"
	"github.com/pixil98/go-sokoban/internal/storage"
)

// Level is a puzzle as stored on disk. Rows use the conventional level
// alphabet: '#' wall, ' ' floor, '$' object, '.' target, '*' object on a
// target, '@' player, '+' player on a target.
type Level struct {
	Name   string   `json:"name" yaml:"name"`
	Author string   `json:"author,omitempty" yaml:"author,omitempty"`
	Rows   []string `json:"rows" yaml:"rows"`
}

// Validate satisfies storage.ValidatingSpec.
func (l *Level) Validate() error {
	el := errors.NewErrorList()

	if l.Name == "" {
		el.Add(fmt.Errorf("level name is required"))
	}
	if len(l.Rows) == 0 {
		el.Add(fmt.Errorf("rows are required"))
		return el.Err()
	}

	s, err := puzzle.Decode(l.Rows)
	if err != nil {
		el.Add(fmt.Errorf("decoding rows: %w", err))
		return el.Err()
	}

	objects := s.Grid.Count(puzzle.Object)
	if objects != s.EmptyTargets {
		el.Add(fmt.Errorf("%d loose objects for %d empty targets", objects, s.EmptyTargets))
	}
	if s.EmptyTargets == 0 {
		el.Add(fmt.Errorf("level is already solved"))
	}

	return el.Err()
}

// State returns the initial state of the level.
func (l *Level) State() (*puzzle.State, error) {
	return puzzle.Decode(l.Rows)
}

// Pool builds the ordered level list for a session. Levels are ordered by
// asset identifier.
func Pool(st storage.Storer[*Level]) ([]session.Level, error) {
	ids := st.Ids()
	if len(ids) == 0 {
		return nil, session.ErrEmptyPool
	}

	pool := make([]session.Level, 0, len(ids))
	for _, id := range ids {
		l := st.Get(id)
		s, err := l.State()
		if err != nil {
			return nil, fmt.Errorf("level %q: %w", id, err)
		}
		pool = append(pool, session.Level{Name: l.Name, State: s})
	}
	return pool, nil
}
