package puzzle

import "fmt"

// State is one snapshot of a level in play. A published State is never
// modified; every move produces a new value.
type State struct {
	Player       Coord
	Grid         *Grid
	EmptyTargets int
}

// NewState counts the uncovered targets of grid. This full scan only happens
// here; moves maintain the count incrementally.
func NewState(grid *Grid, player Coord) (*State, error) {
	if grid == nil {
		return nil, ErrEmptyGrid
	}
	if !grid.Contains(player) {
		return nil, fmt.Errorf("player %s: %w", player, ErrOutsideGrid)
	}
	return &State{
		Player:       player,
		Grid:         grid,
		EmptyTargets: grid.Count(Target),
	}, nil
}

// IsWinning reports whether every target is covered.
func (s *State) IsWinning() bool {
	return s.EmptyTargets == 0
}

func (s *State) Clone() *State {
	return &State{
		Player:       s.Player,
		Grid:         s.Grid.Clone(),
		EmptyTargets: s.EmptyTargets,
	}
}

func (s *State) Equal(o *State) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.Player == o.Player && s.EmptyTargets == o.EmptyTargets && s.Grid.Equal(o.Grid)
}
