package puzzle

// CellChange is the new feature for one cell.
type CellChange struct {
	Coord   Coord   `json:"coord"`
	Feature Feature `json:"feature"`
}

// Transition is the minimal diff describing one accepted move. It is only
// meaningful against the State it was resolved from.
type Transition struct {
	Changed      []CellChange
	Player       Coord
	EmptyTargets int

	// Pushed is set when the move shifted an object.
	Pushed bool

	// Replayed is set on transitions taken from the history by undo or redo.
	Replayed bool
}

// Resolve decides whether the player may move in direction d. A denied move
// returns a DenyReason and leaves s untouched.
func Resolve(s *State, d Direction) (Transition, error) {
	target := s.Player.Add(d)
	ft, ok := s.Grid.Get(target)
	if !ok {
		return Transition{}, OutsideWorld
	}

	if ft.Walkable() {
		return Transition{
			Player:       target,
			EmptyTargets: s.EmptyTargets,
		}, nil
	}

	if !ft.Shiftable() {
		return Transition{}, PathBlocked
	}

	beyond := target.Add(d)
	fb, ok := s.Grid.Get(beyond)
	if !ok || !fb.Targetable() {
		return Transition{}, ShiftBlocked
	}

	// The pushed feature lands on beyond as it is, so a covered target
	// carries its marker along.
	vacated, d1 := Combine(ft, Floor)
	occupied, d2 := Combine(fb, ft)

	return Transition{
		Changed: []CellChange{
			{Coord: target, Feature: vacated},
			{Coord: beyond, Feature: occupied},
		},
		Player:       target,
		EmptyTargets: s.EmptyTargets + d1 + d2,
		Pushed:       true,
	}, nil
}
