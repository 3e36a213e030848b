package command

import (
	"github.com/pixil98/go-crew/internal/action"
)

func matchControl(s *scope, in input) (Result, bool, error) {
	rest, ok := in.literal("control")
	if !ok {
		return nil, false, nil
	}
	if rest.empty() {
		return reject("Control who?")
	}

	member, ok := s.find(rest.name(), s.w.LivingCrewOf(s.crew()))
	if !ok {
		return reject("There is no crew member called %s.", rest.raw())
	}
	if member == s.actor {
		return reject("You are already in control of %s.", s.name(member))
	}
	return ControlResult{Actor: member}, true, nil
}

func matchStatus(s *scope, in input) (Result, bool, error) {
	rest, ok := in.literal("status")
	if !ok || !rest.empty() {
		return nil, false, nil
	}
	return info(statusText(s.w, s.actor))
}

func matchInventory(s *scope, in input) (Result, bool, error) {
	rest, ok := in.literals("inventory", "inv")
	if !ok || !rest.empty() {
		return nil, false, nil
	}
	return info(inventoryText(s.w, s.actor))
}

func matchHelp(_ *scope, in input) (Result, bool, error) {
	if _, ok := in.literal("help"); !ok {
		return nil, false, nil
	}
	return InfoResult{Text: helpText}, true, nil
}

func matchWait(_ *scope, in input) (Result, bool, error) {
	rest, ok := in.literal("wait")
	if !ok || !rest.empty() {
		return nil, false, nil
	}
	return actionFor(action.Wait{}, TargetControlled)
}

func matchRest(s *scope, in input) (Result, bool, error) {
	rest, ok := in.literal("rest")
	if !ok || !rest.empty() {
		return nil, false, nil
	}
	if len(s.w.HostilesInArea(s.pos.Area, true)) > 0 {
		return reject("The crew can not rest with enemies nearby.")
	}
	if !action.NeedsRest(s.w, s.pos.Area) {
		return reject("The crew is already rested.")
	}
	return actionFor(action.Rest{}, TargetCrew)
}
