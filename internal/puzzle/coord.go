package puzzle

import (
	"fmt"
	"strings"
)

// Coord is a cell position. X grows to the right, Y grows downward.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the neighbouring coordinate one step in direction d.
func (c Coord) Add(d Direction) Coord {
	switch d {
	case Left:
		return Coord{X: c.X - 1, Y: c.Y}
	case Right:
		return Coord{X: c.X + 1, Y: c.Y}
	case Up:
		return Coord{X: c.X, Y: c.Y - 1}
	case Down:
		return Coord{X: c.X, Y: c.Y + 1}
	default:
		return c
	}
}

type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every direction in declaration order.
var Directions = []Direction{Left, Right, Up, Down}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection accepts direction names, compass names and the common
// single-letter keyboard aliases.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "west", "a", "h":
		return Left, nil
	case "right", "east", "d", "l":
		return Right, nil
	case "up", "north", "w", "k":
		return Up, nil
	case "down", "south", "s", "j":
		return Down, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}
