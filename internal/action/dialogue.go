package action

import (
	"strings"

	"github.com/pixil98/go-crew/internal/world"
)

// CrewLimit is the largest number of living members a crew can have.
const CrewLimit = 3

var defaultLines = []string{"Hi! Nice weather today, huh?"}

func talk(ctx Context, performer, target world.Entity) (Outcome, error) {
	w := ctx.World
	if target == performer {
		return Outcome{}, Fail("%s can not talk to themselves.", w.NameOf(performer))
	}
	if !w.Names.Has(target) || w.Hostiles.Has(target) {
		return Outcome{}, Fail("%s can not talk to %s.", w.NameOf(performer), w.NameOf(target))
	}
	if !w.IsAlive(target) {
		return Outcome{}, Fail("%s is dead.", w.NameOf(target))
	}
	dest, err := approachActor(ctx, performer, target)
	if err != nil {
		return Outcome{}, err
	}
	if err := moveTo(ctx, performer, dest); err != nil {
		return Outcome{}, err
	}
	faceTowards(ctx, performer, target)
	faceTowards(ctx, target, performer)

	w.Names.Update(target, func(n *world.Name) { n.Known = true })

	lines := defaultLines
	if talker, ok := w.Talkers.Get(target); ok && len(talker.Lines) > 0 {
		lines = talker.Lines
	}
	outcome, _ := succeed("%s talked to %s.", w.NameOf(performer), w.NameOf(target))
	outcome.Dialogue = &Dialogue{Speaker: w.NameOf(target), Lines: lines}
	return outcome, nil
}

func recruit(ctx Context, performer, target world.Entity) (Outcome, error) {
	w := ctx.World
	if !w.Recruitables.Has(target) {
		return Outcome{}, Fail("%s is not interested in joining the crew.", w.NameOf(target))
	}
	if !w.IsAlive(target) {
		return Outcome{}, Fail("%s is dead.", w.NameOf(target))
	}
	crew, ok := w.CrewOf(performer)
	if !ok {
		return Outcome{}, Fail("%s is not part of a crew.", w.NameOf(performer))
	}
	if len(w.LivingCrewOf(crew)) >= CrewLimit {
		return Outcome{}, Fail("There is not enough room for another crew member.")
	}
	dest, err := approachActor(ctx, performer, target)
	if err != nil {
		return Outcome{}, err
	}
	if err := moveTo(ctx, performer, dest); err != nil {
		return Outcome{}, err
	}
	faceTowards(ctx, performer, target)

	w.Recruitables.Remove(target)
	w.Names.Update(target, func(n *world.Name) { n.Known = true })
	w.CrewMembers.Set(target, world.CrewMember{Crew: crew})
	return succeed("%s joined the crew!", w.NameOf(target))
}

func tame(ctx Context, performer, target world.Entity) (Outcome, error) {
	w := ctx.World
	hostile, isHostile := w.Hostiles.Get(target)
	if !w.Tameables.Has(target) || !isHostile {
		return Outcome{}, Fail("%s can not be tamed.", w.NameOf(target))
	}
	if !w.IsAlive(target) {
		return Outcome{}, Fail("%s is dead.", w.NameOf(target))
	}
	if hostile.Aggressive {
		return Outcome{}, Fail("%s is too aggressive to be tamed.", w.NameOf(target))
	}
	food, ok := w.HeldOfKind(performer, world.ItemFoodRation)
	if !ok {
		return Outcome{}, Fail("%s needs a food ration to tame %s.", w.NameOf(performer), w.NameOf(target))
	}
	crew, ok := w.CrewOf(performer)
	if !ok {
		return Outcome{}, Fail("%s is not part of a crew.", w.NameOf(performer))
	}
	dest, err := approachActor(ctx, performer, target)
	if err != nil {
		return Outcome{}, err
	}
	if err := moveTo(ctx, performer, dest); err != nil {
		return Outcome{}, err
	}
	faceTowards(ctx, performer, target)

	targetName := w.NameOf(target)
	w.Destroy(food)
	w.Hostiles.Remove(target)
	w.Tameables.Remove(target)
	w.Wanderers.Remove(target)
	w.Pets.Set(target, world.Pet{Crew: crew})
	return succeed("%s fed %s a food ration and tamed it.", w.NameOf(performer), targetName)
}

func name(ctx Context, performer world.Entity, a Name) (Outcome, error) {
	w := ctx.World
	newName := strings.TrimSpace(a.Name)
	if newName == "" {
		return Outcome{}, Fail("A name can not be empty.")
	}
	pet, ok := w.Pets.Get(a.Target)
	crew, _ := w.CrewOf(performer)
	if !ok || pet.Crew != crew {
		return Outcome{}, Fail("%s can not be named.", w.NameOf(a.Target))
	}
	if _, _, err := reach(ctx, performer, a.Target); err != nil {
		return Outcome{}, err
	}

	oldName := w.NameOf(a.Target)
	w.Names.Set(a.Target, world.Name{Value: newName, Known: true})
	return succeed("%s named %s %q.", w.NameOf(performer), oldName, newName)
}

func sameCrew(w *world.World, a, b world.Entity) bool {
	crewA, okA := w.CrewOf(a)
	crewB, okB := w.CrewOf(b)
	return okA && okB && crewA == crewB
}

func tellWait(ctx Context, performer, target world.Entity) (Outcome, error) {
	w := ctx.World
	if target == performer || !sameCrew(w, performer, target) {
		return Outcome{}, Fail("%s can not be told to wait.", w.NameOf(target))
	}
	if w.Waiting.Has(target) {
		return Outcome{}, Fail("%s is already waiting.", w.NameOf(target))
	}
	if _, _, err := reach(ctx, performer, target); err != nil {
		return Outcome{}, err
	}
	w.Waiting.Set(target, world.Waiting{})
	return succeed("%s will wait here.", w.NameOf(target))
}

func tellFollow(ctx Context, performer, target world.Entity) (Outcome, error) {
	w := ctx.World
	if target == performer || !sameCrew(w, performer, target) {
		return Outcome{}, Fail("%s can not be told to follow.", w.NameOf(target))
	}
	if !w.Waiting.Has(target) {
		return Outcome{}, Fail("%s is already following.", w.NameOf(target))
	}
	if _, _, err := reach(ctx, performer, target); err != nil {
		return Outcome{}, err
	}
	w.Waiting.Remove(target)
	return succeed("%s will follow %s.", w.NameOf(target), w.NameOf(performer))
}
