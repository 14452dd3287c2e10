package commands

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
)

// InputType represents the type of a command input parameter.
type InputType string

const (
	InputTypeNumber    InputType = "number"    // Integer
	InputTypeDirection InputType = "direction" // Any name accepted by puzzle.ParseDirection
)

// InputSpec defines an input parameter that a command accepts from user input.
type InputSpec struct {
	Name     string
	Type     InputType
	Required bool
}

// Command binds a verb and its aliases to a CommandFunc.
type Command struct {
	Name        string
	Aliases     []string
	Category    string
	Description string
	Inputs      []InputSpec
	Func        CommandFunc
}

func (c *Command) Validate() error {
	el := errors.NewErrorList()

	if c.Name == "" {
		el.Add(fmt.Errorf("command name not set"))
	}
	if c.Func == nil {
		el.Add(fmt.Errorf("command %q: func not set", c.Name))
	}

	optional := false
	for i, input := range c.Inputs {
		if input.Name == "" {
			el.Add(fmt.Errorf("input %d: name is required", i))
		}
		switch input.Type {
		case InputTypeNumber, InputTypeDirection:
		default:
			el.Add(fmt.Errorf("input %q: unknown type %q", input.Name, input.Type))
		}
		if input.Required && optional {
			el.Add(fmt.Errorf("input %q: required input after optional input", input.Name))
		}
		optional = optional || !input.Required
	}

	return el.Err()
}

// Usage returns the verb followed by its inputs, optional ones bracketed.
func (c *Command) Usage() string {
	parts := []string{c.Name}
	for _, input := range c.Inputs {
		if input.Required {
			parts = append(parts, "<"+input.Name+">")
		} else {
			parts = append(parts, "["+input.Name+"]")
		}
	}
	return strings.Join(parts, " ")
}
