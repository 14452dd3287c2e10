package puzzle

import "fmt"

// Grid is a fixed rectangle of features. Its bounds never change after
// construction.
type Grid struct {
	width  int
	height int
	cells  []Feature
}

// NewGrid builds a grid from row-major features. Rows must be non-empty and
// of equal length.
func NewGrid(rows [][]Feature) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	g := &Grid{
		width:  len(rows[0]),
		height: len(rows),
		cells:  make([]Feature, 0, len(rows)*len(rows[0])),
	}
	for i, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("row %d: %w", i, ErrRaggedGrid)
		}
		g.cells = append(g.cells, row...)
	}

	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Contains reports whether c lies inside the grid.
func (g *Grid) Contains(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.width && c.Y < g.height
}

// Get returns the feature at c. ok is false when c lies outside the grid.
func (g *Grid) Get(c Coord) (f Feature, ok bool) {
	if !g.Contains(c) {
		return Wall, false
	}
	return g.cells[g.index(c)], true
}

// Set writes f at c. It fails rather than grow the grid.
func (g *Grid) Set(c Coord, f Feature) error {
	if !g.Contains(c) {
		return fmt.Errorf("setting %s: %w", c, ErrOutsideGrid)
	}
	g.cells[g.index(c)] = f
	return nil
}

// Count returns the number of cells holding f.
func (g *Grid) Count(f Feature) int {
	n := 0
	for _, cell := range g.cells {
		if cell == f {
			n++
		}
	}
	return n
}

func (g *Grid) Clone() *Grid {
	cells := make([]Feature, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Rows returns a row-major copy of the cells.
func (g *Grid) Rows() [][]Feature {
	rows := make([][]Feature, g.height)
	for y := range rows {
		rows[y] = make([]Feature, g.width)
		copy(rows[y], g.cells[y*g.width:(y+1)*g.width])
	}
	return rows
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.width + c.X
}
