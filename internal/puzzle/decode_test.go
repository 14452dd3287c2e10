package puzzle

import (
	"errors"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestDecode(t *testing.T) {
	tests := map[string]struct {
		rows         []string
		expErr       error
		expErrString string
		expPlayer    Coord
		expTargets   int
		expWidth     int
	}{
		"simple": {
			rows:       []string{"#####", "#@$.#", "#####"},
			expPlayer:  Coord{X: 1, Y: 1},
			expTargets: 1,
			expWidth:   5,
		},
		"player on target": {
			rows:       []string{"#+$#", "####"},
			expPlayer:  Coord{X: 1, Y: 0},
			expTargets: 1,
			expWidth:   4,
		},
		"covered targets are not empty": {
			rows:       []string{"@**."},
			expTargets: 1,
			expWidth:   4,
		},
		"ragged rows are padded": {
			rows:      []string{"####", "#@", "####"},
			expPlayer: Coord{X: 1, Y: 1},
			expWidth:  4,
		},
		"no player": {
			rows:   []string{"#.$#"},
			expErr: ErrNoPlayer,
		},
		"two players": {
			rows:   []string{"@@"},
			expErr: ErrManyPlayers,
		},
		"no rows": {
			rows:   nil,
			expErr: ErrNoPlayer,
		},
		"unknown rune": {
			rows:         []string{"@x"},
			expErrString: "row 0 column 1",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := Decode(tt.rows)
			if tt.expErr != nil {
				if !errors.Is(err, tt.expErr) {
					t.Errorf("error = %v, expected %v", err, tt.expErr)
				}
				return
			}
			if tt.expErrString != "" {
				testutil.AssertErrorContains(t, err, tt.expErrString)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.AssertEqual(t, "player", s.Player, tt.expPlayer)
			testutil.AssertEqual(t, "empty targets", s.EmptyTargets, tt.expTargets)
			testutil.AssertEqual(t, "width", s.Grid.Width(), tt.expWidth)
			testutil.AssertEqual(t, "height", s.Grid.Height(), len(tt.rows))
		})
	}
}

func TestEncode(t *testing.T) {
	rows := []string{"#####", "#+$ #", "# * #", "#####"}
	s := mustState(t, rows...)

	got := Encode(s)

	testutil.AssertEqual(t, "rows", len(got), len(rows))
	for i := range rows {
		testutil.AssertEqual(t, "row", got[i], rows[i])
	}
}
