package display

import (
	"strings"

	"github.com/pixil98/go-sokoban/internal/puzzle"
	"github.com/pixil98/go-sokoban/internal/session"
)

const (
	statusTemplate = `{{ .Title }} ({{ add1 .Level }}/{{ .Levels }})  moves: {{ .Moves }}  pushes: {{ .Pushes }}  targets left: {{ .State.EmptyTargets }}`

	victoryTemplate = `{{ if .FinalVictory -}}
Every level is solved! Type 'reset' to replay this one or 'goto <n>' to pick another.
{{- else -}}
Solved in {{ .Moves }} {{ .Moves | plural "move" "moves" }}! Next level in a moment...
{{- end }}`
)

// frame is the data handed to the status templates.
type frame struct {
	session.View
	Title string
}

func init() {
	templateFuncs["plural"] = func(one, many string, n int) string {
		if n == 1 {
			return one
		}
		return many
	}
}

// Render draws the state in the level alphabet, one line per row.
func Render(s *puzzle.State) string {
	return strings.Join(puzzle.Encode(s), "\n")
}

// Status renders the one-line summary shown under the board.
func Status(v session.View) (string, error) {
	return ExpandTemplate(statusTemplate, frame{View: v, Title: Title(v.Name)})
}

// Victory renders the message shown when the current level is won.
func Victory(v session.View) (string, error) {
	return ExpandTemplate(victoryTemplate, frame{View: v, Title: Title(v.Name)})
}

// Screen composes the board and status line.
func Screen(v session.View) (string, error) {
	status, err := Status(v)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(Indent(Render(v.State)))
	b.WriteString("\n\n")
	b.WriteString(Wrap(status))
	if v.State.IsWinning() {
		msg, err := Victory(v)
		if err != nil {
			return "", err
		}
		b.WriteString("\n")
		b.WriteString(Wrap(msg))
	}
	return b.String(), nil
}
