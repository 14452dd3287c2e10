package puzzle

import "testing"

func mustState(t *testing.T, rows ...string) *State {
	t.Helper()
	s, err := Decode(rows)
	if err != nil {
		t.Fatalf("decoding rows: %v", err)
	}
	return s
}

func mustGet(t *testing.T, g *Grid, c Coord) Feature {
	t.Helper()
	f, ok := g.Get(c)
	if !ok {
		t.Fatalf("%s outside grid", c)
	}
	return f
}
