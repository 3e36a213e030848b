package game

import (
	"github.com/pixil98/go-crew/internal/action"
	"github.com/pixil98/go-crew/internal/command"
	"github.com/pixil98/go-crew/internal/location"
	"github.com/pixil98/go-crew/internal/world"
)

type PhaseKind string

const (
	PhaseInvalid        PhaseKind = "invalid"
	PhaseChooseLocation PhaseKind = "choose_location"
	PhaseCommandInput   PhaseKind = "command_input"
	PhaseStopped        PhaseKind = "stopped"
	PhaseLoadLocation   PhaseKind = "load_location"
)

type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
)

// Phase is what the game is waiting for. Only the fields for Kind are set.
type Phase struct {
	Kind     PhaseKind        `json:"kind"`
	Choice   *location.Choice `json:"choice,omitempty"`
	Location string           `json:"location,omitempty"`
	Outcome  Outcome          `json:"outcome,omitempty"`
}

// AwaitsInput reports whether the phase can only be left by player input.
func (p Phase) AwaitsInput() bool {
	return p.Kind == PhaseChooseLocation || p.Kind == PhaseCommandInput
}

func (p Phase) valid() bool {
	switch p.Kind {
	case PhaseChooseLocation:
		return p.Choice != nil && len(p.Choice.Options) > 0
	case PhaseLoadLocation:
		return p.Location != ""
	case PhaseCommandInput, PhaseStopped:
		return true
	default:
		return false
	}
}

// Step is one of the steps Run can take.
type Step interface {
	isStep()
}

type (
	// PrepareNextLocation decides where the crew goes next.
	PrepareNextLocation struct{}
	// LoadLocation spawns a location and puts the crew at its entry.
	LoadLocation struct{ Name string }
	// PrepareTick shows the controlled actor's surroundings before input.
	PrepareTick struct{}
	// Tick performs an action for Target, then lets every other actor act.
	// A nil Action only continues repeating actions.
	Tick struct {
		Action action.Action
		Target command.Target
	}
	ChangeControlled struct{ Actor world.Entity }
)

func (PrepareNextLocation) isStep() {}
func (LoadLocation) isStep()        {}
func (PrepareTick) isStep()         {}
func (Tick) isStep()                {}
func (ChangeControlled) isStep()    {}
