package puzzle

import "errors"

var (
	ErrOutsideGrid = errors.New("coordinate outside grid")
	ErrEmptyGrid   = errors.New("grid must have at least one cell")
	ErrRaggedGrid  = errors.New("grid rows must have equal length")
)

// DenyReason explains why a move was rejected. No state is changed when one
// is returned.
type DenyReason int

const (
	PathBlocked DenyReason = iota + 1
	ShiftBlocked
	OutsideWorld
)

func (r DenyReason) Error() string {
	switch r {
	case PathBlocked:
		return "path blocked"
	case ShiftBlocked:
		return "shift blocked"
	case OutsideWorld:
		return "outside world"
	default:
		return "move denied"
	}
}
