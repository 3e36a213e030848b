// Package command turns a line of player input into an action for the
// controlled actor or the crew, a change of controlled actor, or a piece of
// information. Commands are validated here so that a rejected command never
// costs a tick.
package command

import (
	"errors"
	"slices"
	"strings"

	"github.com/pixil98/go-crew/internal/action"
	"github.com/pixil98/go-crew/internal/world"
)

// Target says who performs a resolved action.
type Target int

const (
	// TargetControlled is the controlled actor alone.
	TargetControlled Target = iota
	// TargetCrew is the controlled actor plus every crew member in the same
	// area that is not waiting.
	TargetCrew
)

// Result is one of ActionResult, ControlResult or InfoResult.
type Result interface {
	isResult()
}

type ActionResult struct {
	Action action.Action
	Target Target
}

// ControlResult switches the controlled actor.
type ControlResult struct {
	Actor world.Entity
}

// InfoResult is read-only text. It does not advance the tick.
type InfoResult struct {
	Text string
}

func (ActionResult) isResult()  {}
func (ControlResult) isResult() {}
func (InfoResult) isResult()    {}

// State is what the resolver reads from the game.
type State struct {
	World      *world.World
	Controlled world.Entity
}

// TieBreak picks one entity among candidates that match a name equally well.
type TieBreak func(w *world.World, candidates []world.Entity) world.Entity

// TieBreakCreationOrder picks the oldest candidate.
func TieBreakCreationOrder(_ *world.World, candidates []world.Entity) world.Entity {
	return slices.Min(candidates)
}

// Resolver parses player input. Ambiguous names resolve to the candidate
// nearest the controlled actor, then by TieBreak.
type Resolver struct {
	TieBreak TieBreak
}

func NewResolver() *Resolver {
	return &Resolver{TieBreak: TieBreakCreationOrder}
}

// matcher handles one command. It returns matched=false when the input does
// not start with the command's keyword so the next matcher can try.
type matcher func(s *scope, in input) (result Result, matched bool, err error)

var commands = []matcher{
	// items
	matchTake,
	matchGive,
	matchWield,
	matchUse,
	matchEat,
	matchOpen,
	matchCheck,
	// movement
	matchEnter,
	matchForce,
	matchGoTo,
	// combat
	matchAttack,
	// ship
	matchRefuel,
	matchLaunch,
	// dialogue
	matchTalk,
	matchRecruit,
	matchTrade,
	matchTame,
	matchName,
	matchTell,
	// crew
	matchControl,
	// status
	matchStatus,
	matchInventory,
	matchHelp,
	matchWait,
	matchRest,
}

var storeCommands = []matcher{
	matchBuy,
	matchSell,
	matchExit,
	matchCheck,
	matchStatus,
	matchInventory,
	matchHelp,
}

// Parse resolves text for the controlled actor. Rejections are *UserError.
func (r *Resolver) Parse(text string, st State) (Result, error) {
	in := newInput(text)
	if in.empty() {
		return nil, NewUserError("Type a command, or \"help\" for a list of commands.")
	}

	s, err := r.scope(st)
	if err != nil {
		return nil, err
	}

	list := commands
	if st.World.Trading.Has(st.Controlled) {
		list = storeCommands
	}
	for _, m := range list {
		result, matched, err := m(s, in)
		if err != nil {
			return nil, err
		}
		if matched {
			if err := checkReach(st, result); err != nil {
				return nil, err
			}
			return result, nil
		}
	}

	if st.World.Trading.Has(st.Controlled) {
		return nil, NewUserError("Unexpected input. %q is not a store command.", in.raw())
	}
	return nil, NewUserError("Unexpected input. %q is not a command.", in.raw())
}

// checkReach rejects an action whose path is blocked, so it never costs a
// tick.
func checkReach(st State, result Result) error {
	ar, ok := result.(ActionResult)
	if !ok {
		return nil
	}
	err := action.CheckReach(st.World, st.Controlled, ar.Action)
	var failure *action.Failure
	if errors.As(err, &failure) {
		return &UserError{Message: failure.Message}
	}
	return err
}

// scope is the controlled actor's surroundings while parsing one command.
type scope struct {
	w        *world.World
	actor    world.Entity
	pos      world.Pos
	tieBreak TieBreak
}

func (r *Resolver) scope(st State) (*scope, error) {
	if !st.World.IsAlive(st.Controlled) {
		return nil, NewUserError("%s is not able to act.", st.World.NameOf(st.Controlled))
	}
	pos, ok := st.World.Positions.Get(st.Controlled)
	if !ok {
		return nil, NewUserError("%s is nowhere.", st.World.NameOf(st.Controlled))
	}
	tb := r.TieBreak
	if tb == nil {
		tb = TieBreakCreationOrder
	}
	return &scope{w: st.World, actor: st.Controlled, pos: pos, tieBreak: tb}, nil
}

func (s *scope) name(e world.Entity) string {
	return s.w.NameOf(e)
}

// matches reports whether name refers to e by known name or noun.
func (s *scope) matches(e world.Entity, name string) bool {
	if n, ok := s.w.Names.Get(e); ok && n.Known && strings.EqualFold(n.Value, name) {
		return true
	}
	if noun, ok := s.w.Nouns.Get(e); ok {
		return strings.EqualFold(noun.Singular, name) || strings.EqualFold(noun.Plural, name)
	}
	return false
}

// positionOf returns where e is, using the holder's position for held items.
func (s *scope) positionOf(e world.Entity) (world.Pos, bool) {
	if pos, ok := s.w.Positions.Get(e); ok {
		return pos, true
	}
	if held, ok := s.w.Held.Get(e); ok {
		return s.positionOf(held.Holder)
	}
	return world.Pos{}, false
}

// filter returns the candidates name refers to.
func (s *scope) filter(name string, candidates []world.Entity) []world.Entity {
	var result []world.Entity
	for _, e := range candidates {
		if s.matches(e, name) {
			result = append(result, e)
		}
	}
	return result
}

// find returns the candidate name refers to that is nearest the actor.
func (s *scope) find(name string, candidates []world.Entity) (world.Entity, bool) {
	return s.nearest(s.filter(name, candidates))
}

// nearest returns the candidate closest to the actor. Candidates in other
// areas are only considered when none share the actor's area.
func (s *scope) nearest(candidates []world.Entity) (world.Entity, bool) {
	if len(candidates) == 0 {
		return 0, false
	}

	var closest []world.Entity
	var best uint
	for _, e := range candidates {
		pos, ok := s.positionOf(e)
		if !ok || !pos.IsIn(s.pos.Area) {
			continue
		}
		d := s.pos.Distance(pos)
		switch {
		case len(closest) == 0 || d < best:
			closest, best = []world.Entity{e}, d
		case d == best:
			closest = append(closest, e)
		}
	}
	if len(closest) == 0 {
		closest = candidates
	}
	if len(closest) == 1 {
		return closest[0], true
	}
	return s.tieBreak(s.w, closest), true
}

// actorsHere returns the other actors in the area, alive or dead.
func (s *scope) actorsHere() []world.Entity {
	var result []world.Entity
	for _, e := range s.w.EntitiesInArea(s.pos.Area) {
		if e != s.actor && s.w.Healths.Has(e) {
			result = append(result, e)
		}
	}
	return result
}

func (s *scope) inventory() []world.Entity {
	return s.w.Inventory(s.actor)
}

func (s *scope) itemsHere() []world.Entity {
	return s.w.ItemsInArea(s.pos.Area)
}

func (s *scope) crew() world.Entity {
	crew, _ := s.w.CrewOf(s.actor)
	return crew
}

func (s *scope) inShip() bool {
	return s.w.Ships.Has(s.pos.Area)
}

func actionFor(act action.Action, target Target) (Result, bool, error) {
	return ActionResult{Action: act, Target: target}, true, nil
}

func reject(format string, args ...any) (Result, bool, error) {
	return nil, true, NewUserError(format, args...)
}

func info(text string, err error) (Result, bool, error) {
	if err != nil {
		return nil, true, err
	}
	return InfoResult{Text: text}, true, nil
}
