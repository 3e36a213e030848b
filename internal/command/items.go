package command

import (
	"github.com/pixil98/go-crew/internal/action"
	"github.com/pixil98/go-crew/internal/world"
)

func matchTake(s *scope, in input) (Result, bool, error) {
	rest, ok := in.literals("take", "get", "pick up")
	if !ok {
		return nil, false, nil
	}
	if rest.empty() {
		return reject("Take what?")
	}

	if n := rest.name(); n == "all" || n == "everything" {
		if len(s.itemsHere()) == 0 {
			return reject("There are no items to take here.")
		}
		return actionFor(action.TakeAll{}, TargetControlled)
	}

	item, ok := s.find(rest.name(), s.itemsHere())
	if !ok {
		if _, held := s.find(rest.name(), s.inventory()); held {
			return reject("%s is already carrying the %s.", s.name(s.actor), rest.name())
		}
		return reject("There is no %s here.", rest.name())
	}
	return actionFor(action.TakeItem{Item: item}, TargetControlled)
}

func matchGive(s *scope, in input) (Result, bool, error) {
	rest, ok := in.literal("give")
	if !ok {
		return nil, false, nil
	}
	itemIn, receiverIn, ok := rest.split("to")
	if !ok || itemIn.empty() || receiverIn.empty() {
		return reject("Give what to whom?")
	}

	item, ok := s.find(itemIn.name(), s.inventory())
	if !ok {
		return reject("%s does not have any %s.", s.name(s.actor), itemIn.name())
	}
	receiver, ok := s.find(receiverIn.name(), s.actorsHere())
	if !ok {
		return reject("There is no %s here.", receiverIn.name())
	}
	if crew, ok := s.w.CrewOf(receiver); !ok || crew != s.crew() {
		return reject("%s is not part of the crew.", s.name(receiver))
	}
	if !s.w.IsAlive(receiver) {
		return reject("%s is dead.", s.name(receiver))
	}
	return actionFor(action.Give{Item: item, Receiver: receiver}, TargetControlled)
}

func matchWield(s *scope, in input) (Result, bool, error) {
	rest, ok := in.literals("wield", "equip")
	if !ok {
		return nil, false, nil
	}
	if rest.empty() {
		return reject("Wield what?")
	}

	item, ok := s.find(rest.name(), s.inventory())
	if !ok {
		item, ok = s.find(rest.name(), s.itemsHere())
	}
	if !ok {
		return reject("There is no %s here.", rest.name())
	}
	if !s.w.Weapons.Has(item) {
		return reject("%s is not a weapon.", s.name(item))
	}
	if held, ok := s.w.Held.Get(item); ok && held.InHand {
		return reject("%s is already wielding %s.", s.name(s.actor), s.name(item))
	}
	return actionFor(action.Wield{Item: item}, TargetControlled)
}

func matchUse(s *scope, in input) (Result, bool, error) {
	rest, ok := in.literal("use")
	if !ok {
		return nil, false, nil
	}
	switch rest.name() {
	case "":
		return reject("Use what?")
	case "medkit":
		if _, ok := s.w.HeldOfKind(s.actor, world.ItemMedkit); !ok {
			return reject("%s does not have a medkit.", s.name(s.actor))
		}
		if h, _ := s.w.Healths.Get(s.actor); !h.IsHurt() {
			return reject("%s is not hurt, and does not need to use the medkit.", s.name(s.actor))
		}
		return actionFor(action.UseMedkit{}, TargetControlled)
	case "food ration":
		return matchEat(s, newInput("eat"))
	default:
		return reject("%s can not be used that way.", rest.name())
	}
}

func matchEat(s *scope, in input) (Result, bool, error) {
	rest, ok := in.literal("eat")
	if !ok {
		return nil, false, nil
	}
	switch rest.name() {
	case "", "food", "food ration", "ration":
	default:
		return reject("%s can not eat %s.", s.name(s.actor), rest.name())
	}
	if _, ok := s.w.HeldOfKind(s.actor, world.ItemFoodRation); !ok {
		return reject("%s does not have a food ration.", s.name(s.actor))
	}
	if h, _ := s.w.Healths.Get(s.actor); !h.IsHurt() {
		return reject("%s is not hurt, and does not need to eat.", s.name(s.actor))
	}
	return actionFor(action.EatFood{}, TargetControlled)
}

func matchOpen(s *scope, in input) (Result, bool, error) {
	rest, ok := in.literal("open")
	if !ok {
		return nil, false, nil
	}
	if rest.empty() {
		return reject("Open what?")
	}

	var containers []world.Entity
	for _, e := range s.w.EntitiesInArea(s.pos.Area) {
		if s.w.Containers.Has(e) || s.w.FortunaChests.Has(e) {
			containers = append(containers, e)
		}
	}
	container, ok := s.find(rest.name(), containers)
	if !ok {
		if _, isDoor := s.find(rest.name(), s.w.DoorsInArea(s.pos.Area)); isDoor {
			return reject("Use \"enter %s\" to go through it.", rest.name())
		}
		return reject("There is no %s here to open.", rest.name())
	}
	return actionFor(action.OpenContainer{Container: container}, TargetControlled)
}

func matchCheck(s *scope, in input) (Result, bool, error) {
	rest, ok := in.literals("check", "examine")
	if !ok {
		return nil, false, nil
	}
	if rest.empty() {
		return reject("Check what?")
	}

	candidates := append(s.inventory(), s.w.EntitiesInArea(s.pos.Area)...)
	e, ok := s.find(rest.name(), candidates)
	if !ok {
		return reject("There is no %s here.", rest.name())
	}
	return info(checkText(s.w, e))
}
