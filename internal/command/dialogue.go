package command

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pixil98/go-crew/internal/action"
	"github.com/pixil98/go-crew/internal/world"
)

var title = cases.Title(language.English)

// character returns the living actor in the area that in names.
func (s *scope) character(in input) (world.Entity, error) {
	if in.empty() {
		return 0, NewUserError("Who?")
	}
	target, ok := s.find(in.name(), s.actorsHere())
	if !ok {
		return 0, NewUserError("There is no %s here.", in.name())
	}
	if s.w.IsDead(target) {
		return 0, NewUserError("%s is dead.", s.name(target))
	}
	return target, nil
}

func matchTalk(s *scope, in input) (Result, bool, error) {
	rest, ok := in.literals("talk to", "talk with", "talk")
	if !ok {
		return nil, false, nil
	}
	target, err := s.character(rest)
	if err != nil {
		return nil, true, err
	}
	if !s.w.Names.Has(target) || s.w.Hostiles.Has(target) {
		return reject("%s is not a valid target.", s.name(target))
	}
	return actionFor(action.Talk{Target: target}, TargetControlled)
}

func matchRecruit(s *scope, in input) (Result, bool, error) {
	rest, ok := in.literal("recruit")
	if !ok {
		return nil, false, nil
	}
	target, err := s.character(rest)
	if err != nil {
		return nil, true, err
	}
	if !s.w.Recruitables.Has(target) {
		return reject("%s is not interested in joining the crew.", s.name(target))
	}
	if len(s.w.LivingCrewOf(s.crew())) >= action.CrewLimit {
		return reject("There is not enough room for another crew member.")
	}
	return actionFor(action.Recruit{Target: target}, TargetControlled)
}

func matchTrade(s *scope, in input) (Result, bool, error) {
	rest, ok := in.literal("trade")
	if !ok {
		return nil, false, nil
	}

	var shopkeepers []world.Entity
	for _, e := range s.actorsHere() {
		if s.w.Shopkeepers.Has(e) && s.w.IsAlive(e) {
			shopkeepers = append(shopkeepers, e)
		}
	}
	if with, ok := rest.literal("with"); ok {
		shopkeepers = s.filter(with.name(), shopkeepers)
	}
	shopkeeper, ok := s.nearest(shopkeepers)
	if !ok {
		return reject("There is no one here to trade with.")
	}
	return actionFor(action.Trade{Shopkeeper: shopkeeper}, TargetControlled)
}

func matchTame(s *scope, in input) (Result, bool, error) {
	rest, ok := in.literal("tame")
	if !ok {
		return nil, false, nil
	}
	target, err := s.character(rest)
	if err != nil {
		return nil, true, err
	}
	if !s.w.Tameables.Has(target) {
		return reject("%s can not be tamed.", s.name(target))
	}
	if _, ok := s.w.HeldOfKind(s.actor, world.ItemFoodRation); !ok {
		return reject("%s needs a food ration to tame %s.", s.name(s.actor), s.name(target))
	}
	return actionFor(action.Tame{Target: target}, TargetControlled)
}

func matchName(s *scope, in input) (Result, bool, error) {
	rest, ok := in.literal("name")
	if !ok {
		return nil, false, nil
	}
	targetIn, nameIn, ok := rest.split("as")
	if !ok || nameIn.empty() {
		return reject("Name who as what?")
	}
	target, err := s.character(targetIn)
	if err != nil {
		return nil, true, err
	}
	if pet, ok := s.w.Pets.Get(target); !ok || pet.Crew != s.crew() {
		return reject("%s can not be named.", s.name(target))
	}
	return actionFor(action.Name{Target: target, Name: title.String(nameIn.raw())}, TargetControlled)
}

func matchTell(s *scope, in input) (Result, bool, error) {
	rest, ok := in.literal("tell")
	if !ok {
		return nil, false, nil
	}
	targetIn, order, ok := rest.split("to")
	if !ok {
		return reject("Tell who to do what?")
	}

	var crew []world.Entity
	for _, e := range s.w.CrewInArea(s.pos.Area) {
		if c, _ := s.w.CrewOf(e); e != s.actor && c == s.crew() {
			crew = append(crew, e)
		}
	}
	target, ok := s.find(targetIn.name(), crew)
	if !ok {
		return reject("There is no crew member called %s here.", targetIn.raw())
	}

	switch order.name() {
	case "wait":
		if s.w.Waiting.Has(target) {
			return reject("%s is already waiting.", s.name(target))
		}
		return actionFor(action.TellWait{Target: target}, TargetControlled)
	case "follow", "follow me":
		if !s.w.Waiting.Has(target) {
			return reject("%s is already following.", s.name(target))
		}
		return actionFor(action.TellFollow{Target: target}, TargetControlled)
	default:
		return reject("%s can only be told to wait or follow.", s.name(target))
	}
}
