package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

type Config struct {
	Listeners []ListenerConfig `json:"listeners"`
	Levels    LevelsConfig     `json:"levels"`
	Nats      NatsConfig       `json:"nats"`
	Session   SessionConfig    `json:"session"`
	Metrics   MetricsConfig    `json:"metrics"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if len(c.Listeners) == 0 {
		el.Add(fmt.Errorf("at least one listener is required"))
	}
	for i := range c.Listeners {
		err := c.Listeners[i].validate()
		if err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
	}

	el.Add(c.Levels.validate())
	el.Add(c.Nats.validate())
	el.Add(c.Session.validate())

	if c.Metrics.enabled() {
		for i, l := range c.Listeners {
			if l.Port == c.Metrics.Port {
				el.Add(fmt.Errorf("metrics port %d is also used by listener %d", c.Metrics.Port, i))
			}
		}
	}

	return el.Err()
}
