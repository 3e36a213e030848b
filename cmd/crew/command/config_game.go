package command

import (
	"fmt"

	"github.com/pixil98/go-crew/internal/game"
	"github.com/pixil98/go-errors"
)

type GameConfig struct {
	Seed      uint64 `json:"seed" env:"CREW_SEED"`
	Locations int    `json:"locations"`
	Final     string `json:"final"`
	Points    int    `json:"points"`
	Width     int    `json:"width"`
}

func (c *GameConfig) validate() error {
	el := errors.NewErrorList()

	if c.Locations < 0 {
		el.Add(fmt.Errorf("game: locations must not be negative"))
	}
	if c.Points < 0 {
		el.Add(fmt.Errorf("game: points must not be negative"))
	}
	if c.Width < 0 {
		el.Add(fmt.Errorf("game: width must not be negative"))
	}

	return el.Err()
}

func (c *GameConfig) gameConfig() game.Config {
	return game.Config{
		Seed:      c.Seed,
		Locations: c.Locations,
		Final:     c.Final,
		Points:    c.Points,
	}
}
