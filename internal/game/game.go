// Package game runs the phase state machine: choosing and loading
// locations, taking player input, and resolving ticks until the crew wins or
// is lost.
package game

import (
	"errors"
	"fmt"

	"github.com/pixil98/go-crew/internal/command"
	"github.com/pixil98/go-crew/internal/location"
	"github.com/pixil98/go-crew/internal/view"
)

// Game owns a GameState and the phase it is in. Frames produced while
// running are queued until the caller drains them with Frames.
type Game struct {
	state    *GameState
	phase    Phase
	content  location.Catalog
	resolver *command.Resolver
	frames   []view.Frame
}

func newGame(st *GameState, content location.Catalog) *Game {
	return &Game{
		state:    st,
		content:  content,
		resolver: command.NewResolver(),
	}
}

// New starts a game and runs it until the player is first asked for input.
func New(cfg Config, content location.Catalog) (*Game, error) {
	g := newGame(NewGameState(cfg), content)
	if err := g.apply(PrepareNextLocation{}); err != nil {
		return nil, err
	}
	if err := g.Next(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) State() *GameState {
	return g.state
}

// Resolver is used to parse command input. Its TieBreak may be replaced.
func (g *Game) Resolver() *command.Resolver {
	return g.resolver
}

// Frames returns the queued frames and clears the queue.
func (g *Game) Frames() []view.Frame {
	f := g.frames
	g.frames = nil
	return f
}

func (g *Game) apply(step Step) error {
	phase, frames, err := Run(step, g.state, g.content)
	g.frames = append(g.frames, frames...)
	if err != nil {
		return err
	}
	g.phase = phase
	return nil
}

// Next runs every step that does not need player input. It returns once the
// game awaits input or has stopped.
func (g *Game) Next() error {
	for {
		switch g.phase.Kind {
		case PhaseLoadLocation:
			if err := g.apply(LoadLocation{Name: g.phase.Location}); err != nil {
				return err
			}
		case PhaseCommandInput:
			if !g.state.repeating() {
				return nil
			}
			if err := g.apply(Tick{}); err != nil {
				return err
			}
		case PhaseChooseLocation, PhaseStopped:
			return nil
		default:
			return fmt.Errorf("%w: %q", ErrInvalidPhase, g.phase.Kind)
		}
	}
}

// Resume shows the current situation of a loaded game and continues it.
func (g *Game) Resume() error {
	switch g.phase.Kind {
	case PhaseCommandInput:
		if err := g.apply(PrepareTick{}); err != nil {
			return err
		}
	case PhaseChooseLocation:
		options := make([]string, len(g.phase.Choice.Options))
		for i, o := range g.phase.Choice.Options {
			options[i] = o.Category
		}
		g.frames = append(g.frames, view.ChoiceFrame(options, nil))
	case PhaseStopped:
		g.frames = append(g.frames, view.EndingFrame(g.phase.Outcome == OutcomeWin, "", nil))
	}
	return g.Next()
}

// HandleInput applies a line of player input. Input that is not accepted
// returns a *RejectError and leaves the game unchanged.
func (g *Game) HandleInput(text string) error {
	switch g.phase.Kind {
	case PhaseChooseLocation:
		name, err := g.phase.Choice.Resolve(text)
		if err != nil {
			return reject(err.Error())
		}
		choosing := g.phase
		g.phase = Phase{Kind: PhaseLoadLocation, Location: name}
		if err := g.Next(); err != nil {
			if g.phase.Kind != PhaseLoadLocation {
				return err
			}
			// Nothing is spawned until the blueprint loads, so the choice can
			// simply be offered again.
			g.phase = choosing
			return reject(fmt.Sprintf("%s could not be loaded: %v", name, err))
		}
		return nil

	case PhaseCommandInput:
		return g.handleCommand(text)

	case PhaseStopped:
		return ErrGameOver

	default:
		return fmt.Errorf("%w: input in phase %q", ErrInvalidPhase, g.phase.Kind)
	}
}

func (g *Game) handleCommand(text string) error {
	st := command.State{World: g.state.World, Controlled: g.state.Controlled}
	result, err := g.resolver.Parse(text, st)
	var userErr *command.UserError
	if errors.As(err, &userErr) {
		return reject(userErr.Message)
	}
	if err != nil {
		return err
	}

	switch r := result.(type) {
	case command.InfoResult:
		g.frames = append(g.frames, view.InfoFrame(r.Text))
		return nil
	case command.ControlResult:
		return g.apply(ChangeControlled{Actor: r.Actor})
	case command.ActionResult:
		if err := g.apply(Tick{Action: r.Action, Target: r.Target}); err != nil {
			return err
		}
		return g.Next()
	default:
		return fmt.Errorf("unknown command result %T", result)
	}
}
