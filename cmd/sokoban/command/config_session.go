package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-sokoban/internal/session"
)

type SessionConfig struct {
	AdvanceDelay string `json:"advance_delay"`
}

func (c *SessionConfig) validate() error {
	el := errors.NewErrorList()

	if c.AdvanceDelay != "" {
		d, err := time.ParseDuration(c.AdvanceDelay)
		if err != nil {
			el.Add(fmt.Errorf("parsing advance_delay: %w", err))
		} else if d < 0 {
			el.Add(fmt.Errorf("advance_delay must not be negative"))
		}
	}

	return el.Err()
}

func (c *SessionConfig) sessionOpts() ([]session.SessionOpt, error) {
	if c.AdvanceDelay == "" {
		return nil, nil
	}

	d, err := time.ParseDuration(c.AdvanceDelay)
	if err != nil {
		return nil, fmt.Errorf("parsing advance_delay: %w", err)
	}
	return []session.SessionOpt{session.WithAdvanceDelay(d)}, nil
}
