package commands

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/pixil98/go-sokoban/internal/puzzle"
	"github.com/pixil98/go-sokoban/internal/session"
)

// Game is the part of a session the commands drive.
type Game interface {
	ApplyMove(d puzzle.Direction) error
	Undo() bool
	Redo() bool
	NextLevel() bool
	PrevLevel() bool
	ResetLevel() bool
	GotoLevel(i int) bool
	Snapshot() session.View
}

// CommandContext carries everything a command needs for one invocation.
type CommandContext struct {
	Game   Game
	Out    io.Writer
	Inputs map[string]any
	Quit   bool
}

// CommandFunc is the signature for command implementations.
type CommandFunc func(ctx context.Context, cmdCtx *CommandContext) error

type Handler struct {
	commands []*Command
	byName   map[string]*Command
}

// NewHandler returns a Handler with the built-in commands registered.
func NewHandler() *Handler {
	h := &Handler{byName: make(map[string]*Command)}

	for _, cmd := range builtins(h) {
		if err := h.Register(cmd); err != nil {
			panic(fmt.Sprintf("registering built-in command: %v", err))
		}
	}
	return h
}

// Register adds cmd under its name and aliases.
func (h *Handler) Register(cmd *Command) error {
	if cmd == nil {
		return fmt.Errorf("command cannot be nil")
	}
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("validating command: %w", err)
	}

	names := append([]string{cmd.Name}, cmd.Aliases...)
	for _, n := range names {
		if _, exists := h.byName[strings.ToLower(n)]; exists {
			return fmt.Errorf("command %q already registered", n)
		}
	}
	for _, n := range names {
		h.byName[strings.ToLower(n)] = cmd
	}
	h.commands = append(h.commands, cmd)
	return nil
}

// Commands returns the registered commands in registration order.
func (h *Handler) Commands() []*Command {
	return slices.Clone(h.commands)
}

// Exec parses a line of player input and runs the matching command.
// A bare direction is shorthand for "move <direction>".
func (h *Handler) Exec(ctx context.Context, cmdCtx *CommandContext, input string) error {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil
	}

	verb := strings.ToLower(fields[0])
	rawArgs := fields[1:]

	cmd, ok := h.byName[verb]
	if !ok {
		if _, err := puzzle.ParseDirection(verb); err != nil || len(rawArgs) > 0 {
			return NewUserError(fmt.Sprintf("Unknown command %q. Type 'help' for a list of commands.", verb))
		}
		cmd = h.byName["move"]
		rawArgs = []string{verb}
	}

	args, err := h.parseInputs(cmd.Inputs, rawArgs)
	if err != nil {
		return err
	}

	cmdCtx.Inputs = args
	return cmd.Func(ctx, cmdCtx)
}

// parseInputs validates raw string arguments against input specs.
func (h *Handler) parseInputs(specs []InputSpec, rawArgs []string) (map[string]any, error) {
	if len(rawArgs) > len(specs) {
		return nil, NewUserError(fmt.Sprintf("Expected at most %d argument(s), got %d.", len(specs), len(rawArgs)))
	}

	args := make(map[string]any, len(specs))
	for i, spec := range specs {
		if i >= len(rawArgs) {
			if spec.Required {
				return nil, NewUserError(fmt.Sprintf("Missing required parameter: %s.", spec.Name))
			}
			continue
		}

		value, err := h.parseValue(spec.Type, rawArgs[i])
		if err != nil {
			return nil, err
		}
		args[spec.Name] = value
	}

	return args, nil
}

// parseValue parses a raw string into the appropriate type.
func (h *Handler) parseValue(inputType InputType, raw string) (any, error) {
	switch inputType {
	case InputTypeNumber:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, NewUserError(fmt.Sprintf("%q is not a valid number.", raw))
		}
		return n, nil

	case InputTypeDirection:
		d, err := puzzle.ParseDirection(raw)
		if err != nil {
			return nil, NewUserError(fmt.Sprintf("%q is not a direction.", raw))
		}
		return d, nil

	default:
		return nil, fmt.Errorf("unknown parameter type %q", inputType)
	}
}

func builtins(h *Handler) []*Command {
	return []*Command{
		{
			Name:        "move",
			Aliases:     []string{"go", "m"},
			Category:    "movement",
			Description: "Walk one step, pushing a crate if one is in the way. Directions can also be typed on their own.",
			Inputs:      []InputSpec{{Name: "direction", Type: InputTypeDirection, Required: true}},
			Func:        moveCommand,
		},
		{
			Name:        "undo",
			Aliases:     []string{"u", "z"},
			Category:    "history",
			Description: "Take back the last move.",
			Func:        undoCommand,
		},
		{
			Name:        "redo",
			Aliases:     []string{"r", "y"},
			Category:    "history",
			Description: "Replay the last move taken back.",
			Func:        redoCommand,
		},
		{
			Name:        "reset",
			Aliases:     []string{"restart"},
			Category:    "levels",
			Description: "Start the current level over.",
			Func:        resetCommand,
		},
		{
			Name:        "next",
			Aliases:     []string{"n"},
			Category:    "levels",
			Description: "Skip to the next level.",
			Func:        nextCommand,
		},
		{
			Name:        "prev",
			Aliases:     []string{"p", "previous"},
			Category:    "levels",
			Description: "Go back to the previous level.",
			Func:        prevCommand,
		},
		{
			Name:        "goto",
			Aliases:     []string{"g", "level"},
			Category:    "levels",
			Description: "Jump to level number n.",
			Inputs:      []InputSpec{{Name: "n", Type: InputTypeNumber, Required: true}},
			Func:        gotoCommand,
		},
		{
			Name:        "help",
			Aliases:     []string{"?"},
			Category:    "other",
			Description: "List the available commands.",
			Func:        helpCommand(h),
		},
		{
			Name:        "quit",
			Aliases:     []string{"q", "exit"},
			Category:    "other",
			Description: "Leave the game.",
			Func:        quitCommand,
		},
	}
}
