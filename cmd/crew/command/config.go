package command

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/pixil98/go-errors"
)

type Config struct {
	Storage StorageConfig `json:"storage"`
	Saves   SavesConfig   `json:"saves"`
	Game    GameConfig    `json:"game"`
	Nats    NatsConfig    `json:"nats"`

	Listeners []ListenerConfig `json:"listeners,omitempty"`
}

// Validate applies environment overrides on top of the config file and then
// checks the result.
func (c *Config) Validate() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	el := errors.NewErrorList()

	el.Add(c.Storage.validate())
	el.Add(c.Saves.validate())
	el.Add(c.Game.validate())
	el.Add(c.Nats.validate())

	ports := map[uint16]bool{}
	for i, l := range c.Listeners {
		if err := l.validate(); err != nil {
			el.Add(fmt.Errorf("listeners[%d]: %w", i, err))
		}
		if ports[l.Port] {
			el.Add(fmt.Errorf("listeners[%d]: port %d is used twice", i, l.Port))
		}
		ports[l.Port] = true
	}

	return el.Err()
}
