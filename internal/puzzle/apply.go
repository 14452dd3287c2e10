package puzzle

import "fmt"

// Apply returns the state that results from t. The input state is not
// modified. A change outside the grid means t was not resolved against s,
// which is a programming error, so Apply panics.
func Apply(s *State, t Transition) *State {
	grid := s.Grid.Clone()
	for _, c := range t.Changed {
		if err := grid.Set(c.Coord, c.Feature); err != nil {
			panic(fmt.Sprintf("puzzle: applying transition: %v", err))
		}
	}
	return &State{
		Player:       t.Player,
		Grid:         grid,
		EmptyTargets: t.EmptyTargets,
	}
}

// Invert builds the transition that takes Apply(s, t) back to s, from the
// pre-images of the cells t changes.
func Invert(s *State, t Transition) Transition {
	inv := Transition{
		Changed:      make([]CellChange, 0, len(t.Changed)),
		Player:       s.Player,
		EmptyTargets: s.EmptyTargets,
		Pushed:       t.Pushed,
	}
	for _, c := range t.Changed {
		prev, ok := s.Grid.Get(c.Coord)
		if !ok {
			panic(fmt.Sprintf("puzzle: inverting transition: %s: %v", c.Coord, ErrOutsideGrid))
		}
		inv.Changed = append(inv.Changed, CellChange{Coord: c.Coord, Feature: prev})
	}
	return inv
}
