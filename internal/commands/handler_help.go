package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pixil98/go-sokoban/internal/display"
)

// helpCommand lists every command grouped by category.
func helpCommand(h *Handler) CommandFunc {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		groups := make(map[string][]*Command)
		for _, cmd := range h.Commands() {
			category := cmd.Category
			if category == "" {
				category = "other"
			}
			groups[category] = append(groups[category], cmd)
		}

		categories := make([]string, 0, len(groups))
		for c := range groups {
			categories = append(categories, c)
		}
		sort.Strings(categories)

		var b strings.Builder
		for _, c := range categories {
			fmt.Fprintf(&b, "%s:\n", display.Title(c))
			for _, cmd := range groups[c] {
				line := fmt.Sprintf("%-14s %s", cmd.Usage(), cmd.Description)
				if len(cmd.Aliases) > 0 {
					line += fmt.Sprintf(" (also: %s)", strings.Join(cmd.Aliases, ", "))
				}
				b.WriteString(display.Indent(display.Wrap(line)))
				b.WriteString("\n")
			}
		}

		_, err := fmt.Fprint(cmdCtx.Out, b.String())
		return err
	}
}
