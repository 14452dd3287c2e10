package puzzle

import (
	"errors"
	"fmt"
)

var (
	ErrNoPlayer    = errors.New("no player on the board")
	ErrManyPlayers = errors.New("more than one player on the board")
)

// Decode builds a State from rows in the level alphabet (see FeatureFromRune).
// Short rows are padded with floor to the widest row.
func Decode(rows []string) (*State, error) {
	width := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > width {
			width = n
		}
	}

	var player Coord
	players := 0
	features := make([][]Feature, len(rows))
	for y, row := range rows {
		features[y] = make([]Feature, 0, width)
		for x, r := range []rune(row) {
			f, isPlayer, err := FeatureFromRune(r)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", y, x, err)
			}
			if isPlayer {
				player = Coord{X: x, Y: y}
				players++
			}
			features[y] = append(features[y], f)
		}
		for len(features[y]) < width {
			features[y] = append(features[y], Floor)
		}
	}

	switch {
	case players == 0:
		return nil, ErrNoPlayer
	case players > 1:
		return nil, ErrManyPlayers
	}

	grid, err := NewGrid(features)
	if err != nil {
		return nil, err
	}
	return NewState(grid, player)
}

// Encode renders s back into the level alphabet.
func Encode(s *State) []string {
	rows := make([]string, s.Grid.Height())
	for y := range rows {
		line := make([]rune, s.Grid.Width())
		for x := range line {
			c := Coord{X: x, Y: y}
			f, _ := s.Grid.Get(c)
			line[x] = f.Rune()
			if c == s.Player {
				line[x] = '@'
				if f == Target {
					line[x] = '+'
				}
			}
		}
		rows[y] = string(line)
	}
	return rows
}
