package puzzle

import "fmt"

// Feature is the tile occupying a single grid cell.
type Feature int

const (
	Wall Feature = iota
	Floor
	Object
	Target
	// TargetX is a target currently covered by an object.
	TargetX
)

func (f Feature) String() string {
	switch f {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	case Object:
		return "object"
	case Target:
		return "target"
	case TargetX:
		return "target-x"
	default:
		return fmt.Sprintf("feature(%d)", int(f))
	}
}

// Walkable reports whether the player may step onto the feature.
func (f Feature) Walkable() bool {
	return f == Floor || f == Target
}

// Shiftable reports whether the feature can be pushed.
func (f Feature) Shiftable() bool {
	return f == Object || f == TargetX
}

// Targetable reports whether a pushed object may land on the feature.
func (f Feature) Targetable() bool {
	return f == Floor || f == Target
}

// Combine returns the feature that results from incoming arriving on a cell
// holding previous, along with the change in the number of empty targets.
// A target keeps its target-ness unless overwritten by another target marker.
func Combine(previous, incoming Feature) (Feature, int) {
	switch previous {
	case Target:
		switch incoming {
		case Object:
			return TargetX, -1
		case TargetX:
			return TargetX, 0
		default:
			return Target, 0
		}
	case TargetX:
		switch incoming {
		case Object, TargetX:
			return TargetX, 0
		default:
			return Target, 1
		}
	default:
		return incoming, 0
	}
}

// Rune returns the level-file character for the feature.
func (f Feature) Rune() rune {
	switch f {
	case Wall:
		return '#'
	case Object:
		return '$'
	case Target:
		return '.'
	case TargetX:
		return '*'
	default:
		return ' '
	}
}

// FeatureFromRune decodes a level-file character. The player markers '@' and
// '+' decode to the feature underneath the player with player set to true.
func FeatureFromRune(r rune) (f Feature, player bool, err error) {
	switch r {
	case '#':
		return Wall, false, nil
	case ' ', '-', '_':
		return Floor, false, nil
	case '$':
		return Object, false, nil
	case '.':
		return Target, false, nil
	case '*':
		return TargetX, false, nil
	case '@':
		return Floor, true, nil
	case '+':
		return Target, true, nil
	default:
		return Floor, false, fmt.Errorf("unknown level character %q", r)
	}
}
