package display

import (
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	DefaultWidth  = 80
	DefaultIndent = 2
)

var titleCaser = cases.Title(language.English)

// Wrap word-wraps text to DefaultWidth, preserving ANSI escape sequences.
func Wrap(text string) string {
	return wordwrap.String(text, DefaultWidth)
}

// Indent shifts every line of text right by DefaultIndent spaces.
func Indent(text string) string {
	return indent.String(text, DefaultIndent)
}

// Title title-cases a level name.
func Title(s string) string {
	return titleCaser.String(strings.TrimSpace(s))
}
