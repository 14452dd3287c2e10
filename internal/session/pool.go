package session

import (
	"fmt"

	"github.com/pixil98/go-sokoban/internal/puzzle"
)

// Level is one entry of a pool: a display name and its initial state.
type Level struct {
	Name  string
	State *puzzle.State
}

// Pool is an ordered set of levels with a cursor. Entries are never handed
// out directly, so they stay in their initial state.
type Pool struct {
	levels []Level
	index  int
}

func NewPool(levels []Level) (*Pool, error) {
	if len(levels) == 0 {
		return nil, ErrEmptyPool
	}
	for i, l := range levels {
		if l.State == nil {
			return nil, fmt.Errorf("level %d: missing initial state", i)
		}
	}
	return &Pool{levels: levels}, nil
}

func (p *Pool) Len() int   { return len(p.levels) }
func (p *Pool) Index() int { return p.index }

// Name returns the display name of level i, or a numbered fallback.
func (p *Pool) Name(i int) string {
	if i < 0 || i >= len(p.levels) || p.levels[i].Name == "" {
		return fmt.Sprintf("level %d", i+1)
	}
	return p.levels[i].Name
}

// Current returns a fresh copy of the level under the cursor.
func (p *Pool) Current() *puzzle.State {
	return p.levels[p.index].State.Clone()
}

func (p *Pool) IsLastCurrent() bool {
	return p.index == len(p.levels)-1
}

// Increase moves the cursor forward unless it is on the last level.
func (p *Pool) Increase() (int, *puzzle.State, bool) {
	return p.SetCurrent(p.index + 1)
}

// Decrease moves the cursor back unless it is on the first level.
func (p *Pool) Decrease() (int, *puzzle.State, bool) {
	return p.SetCurrent(p.index - 1)
}

// SetCurrent moves the cursor to i when it is in range.
func (p *Pool) SetCurrent(i int) (int, *puzzle.State, bool) {
	if i < 0 || i >= len(p.levels) {
		return p.index, nil, false
	}
	p.index = i
	return i, p.Current(), true
}
