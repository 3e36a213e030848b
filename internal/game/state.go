package game

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/pixil98/go-crew/internal/location"
	"github.com/pixil98/go-crew/internal/world"
)

const (
	DefaultLocations = 3
	DefaultPoints    = 5000
	shipSize         = 5
)

// DefaultCrew is the crew a new game starts with.
var DefaultCrew = []world.CharacterProfile{
	{Name: "Mint", Stats: world.Stats{Strength: 10, Endurance: 2, Agility: 10, Luck: 2}},
	{Name: "Revy", Stats: world.Stats{Strength: 2, Endurance: 10, Agility: 8, Luck: 2}, Traits: []world.Trait{world.TraitBigEater}},
}

// Config describes a new game.
type Config struct {
	// Seed for the game's random numbers. Zero picks a random seed.
	Seed      uint64
	Locations int
	Final     string
	Points    int
	Crew      []world.CharacterProfile
}

func (c Config) withDefaults() Config {
	if c.Seed == 0 {
		c.Seed = rand.Uint64()
	}
	if c.Locations == 0 {
		c.Locations = DefaultLocations
	}
	if c.Points == 0 {
		c.Points = DefaultPoints
	}
	if len(c.Crew) == 0 {
		c.Crew = DefaultCrew
	}
	return c
}

// statusFlags are the derived conditions that produce a message when they
// start.
type statusFlags struct {
	LowHealth  bool `json:"low_health,omitempty"`
	LowStamina bool `json:"low_stamina,omitempty"`
}

// renderCache remembers the last area frame shown for the controlled actor.
type renderCache struct {
	area world.Entity
	hash uint64
}

// GameState is everything that changes over a game. It is owned by a single
// Game and is not safe for concurrent use.
type GameState struct {
	Id         uuid.UUID
	World      *world.World
	Rand       *rand.Rand
	Tracker    location.Tracker
	Ship       world.Entity
	Crew       world.Entity
	Controlled world.Entity

	pcg    *rand.PCG
	status map[world.Entity]statusFlags
	render renderCache
}

// NewGameState creates a crew standing in its ship.
func NewGameState(cfg Config) *GameState {
	cfg = cfg.withDefaults()
	pcg := rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)
	st := &GameState{
		Id:      uuid.New(),
		World:   world.NewWorld(),
		Rand:    rand.New(pcg),
		Tracker: location.NewTracker(cfg.Locations, cfg.Final),
		pcg:     pcg,
		status:  map[world.Entity]statusFlags{},
	}

	w := st.World
	st.Ship = w.SpawnShip(shipSize)
	st.Crew = w.SpawnCrew(cfg.Points)
	for i, profile := range cfg.Crew {
		member := w.SpawnCrewMember(st.Crew, profile, world.Pos{Area: st.Ship, Coord: uint(i+1) % shipSize})
		if i == 0 {
			st.Controlled = member
		}
	}
	return st
}

type stateJSON struct {
	World      *world.World                 `json:"world"`
	Rand       []byte                       `json:"rand"`
	Tracker    location.Tracker             `json:"tracker"`
	Ship       world.Entity                 `json:"ship"`
	Crew       world.Entity                 `json:"crew"`
	Controlled world.Entity                 `json:"controlled"`
	Status     map[world.Entity]statusFlags `json:"status,omitempty"`
}

func (st *GameState) MarshalJSON() ([]byte, error) {
	rng, err := st.pcg.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("saving random state: %w", err)
	}
	return json.Marshal(stateJSON{
		World:      st.World,
		Rand:       rng,
		Tracker:    st.Tracker,
		Ship:       st.Ship,
		Crew:       st.Crew,
		Controlled: st.Controlled,
		Status:     st.status,
	})
}

// UnmarshalJSON restores a saved state. The id is kept in the save header.
func (st *GameState) UnmarshalJSON(b []byte) error {
	m := stateJSON{World: world.NewWorld()}
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	pcg := &rand.PCG{}
	if err := pcg.UnmarshalBinary(m.Rand); err != nil {
		return fmt.Errorf("restoring random state: %w", err)
	}
	if !m.World.Ships.Has(m.Ship) {
		return fmt.Errorf("ship %d does not exist", m.Ship)
	}
	if !m.World.Crews.Has(m.Crew) {
		return fmt.Errorf("crew %d does not exist", m.Crew)
	}

	st.World = m.World
	st.pcg = pcg
	st.Rand = rand.New(pcg)
	st.Tracker = m.Tracker
	st.Ship = m.Ship
	st.Crew = m.Crew
	st.Controlled = m.Controlled
	st.status = m.Status
	if st.status == nil {
		st.status = map[world.Entity]statusFlags{}
	}
	st.render = renderCache{}
	return nil
}

// repeating reports whether the controlled actor has an action to continue.
func (st *GameState) repeating() bool {
	return st.World.Repeating.Has(st.Controlled) && st.World.IsAlive(st.Controlled)
}
