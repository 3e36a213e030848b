package command

import (
	"github.com/pixil98/go-crew/internal/action"
	"github.com/pixil98/go-crew/internal/world"
)

func (s *scope) door(in input) (world.Entity, bool) {
	return s.find(in.name(), s.w.DoorsInArea(s.pos.Area))
}

func matchEnter(s *scope, in input) (Result, bool, error) {
	rest, ok := in.literals("enter", "go through")
	if !ok {
		return nil, false, nil
	}
	if rest.empty() {
		return reject("Enter what?")
	}

	door, ok := s.door(rest)
	if !ok {
		return reject("There is no such door here.")
	}
	if block, ok := s.w.BlockOf(door); ok {
		_, keycard := s.w.HeldOfKind(s.actor, world.ItemKeycard)
		if block != world.BlockLocked || !keycard {
			return reject("%s is %s.", s.name(door), block.Description())
		}
	}
	return actionFor(action.EnterDoor{Door: door}, TargetCrew)
}

func matchForce(s *scope, in input) (Result, bool, error) {
	rest, ok := in.literal("force")
	if !ok {
		return nil, false, nil
	}
	if rest.empty() {
		return reject("Force what?")
	}

	door, ok := s.door(rest)
	if !ok {
		return reject("There is no such door here.")
	}
	if _, ok := s.w.BlockOf(door); !ok {
		return reject("%s does not seem to be stuck.", s.name(door))
	}
	return actionFor(action.ForceDoor{Door: door}, TargetControlled)
}

func matchGoTo(s *scope, in input) (Result, bool, error) {
	rest, ok := in.literals("go to", "return to")
	if !ok {
		return nil, false, nil
	}
	if rest.name() != "ship" {
		return reject("%s can only go to the ship.", s.name(s.actor))
	}
	if s.inShip() {
		return reject("%s is already in the ship.", s.name(s.actor))
	}
	if _, ok := action.ShipDoor(s.w, s.pos.Area); !ok {
		return reject("There is no path back to the ship from here.")
	}
	return actionFor(action.GoToShip{}, TargetCrew)
}

func matchAttack(s *scope, in input) (Result, bool, error) {
	rest, ok := in.literals("attack", "fight")
	if !ok {
		return nil, false, nil
	}

	if rest.empty() {
		targets := s.w.HostilesInArea(s.pos.Area, false)
		if len(targets) == 0 {
			return reject("There is no one here to attack.")
		}
		return actionFor(action.Attack{Targets: targets}, TargetCrew)
	}

	target, ok := s.find(rest.name(), s.actorsHere())
	if !ok {
		return reject("There is no %s here.", rest.name())
	}
	if !s.w.Hostiles.Has(target) {
		return reject("%s is not a valid target.", s.name(target))
	}
	if s.w.IsDead(target) {
		return reject("%s is already dead.", s.name(target))
	}
	return actionFor(action.Attack{Targets: []world.Entity{target}}, TargetCrew)
}

func matchRefuel(s *scope, in input) (Result, bool, error) {
	rest, ok := in.literal("refuel")
	if !ok {
		return nil, false, nil
	}
	if n := rest.name(); n != "" && n != "ship" {
		return reject("Only the ship can be refueled.")
	}
	if !s.inShip() {
		return reject("%s needs to be in the ship to refuel it.", s.name(s.actor))
	}
	ship, _ := s.w.Ships.Get(s.pos.Area)
	if !ship.Status.NeedsFuel() {
		return reject("The ship is already refueled.")
	}
	if _, ok := s.w.HeldOfKind(s.actor, world.ItemFuelCan); !ok {
		return reject("%s does not have a fuel can.", s.name(s.actor))
	}
	return actionFor(action.Refuel{}, TargetControlled)
}

func matchLaunch(s *scope, in input) (Result, bool, error) {
	rest, ok := in.literal("launch")
	if !ok {
		return nil, false, nil
	}
	if n := rest.name(); n != "" && n != "ship" {
		return reject("Only the ship can be launched.")
	}
	if !s.inShip() {
		return reject("%s needs to be in the ship to launch it.", s.name(s.actor))
	}
	ship, _ := s.w.Ships.Get(s.pos.Area)
	if ship.Status == world.ShipLaunching {
		return reject("The ship is already launching.")
	}
	return actionFor(action.Launch{}, TargetControlled)
}
