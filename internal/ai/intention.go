// Package ai picks an action each tick for every actor the player is not
// directly controlling.
package ai

import (
	"math/rand/v2"
	"slices"

	"github.com/pixil98/go-crew/internal/action"
	"github.com/pixil98/go-crew/internal/world"
)

// Planned is an action chosen for an actor.
type Planned struct {
	Actor  world.Entity
	Action action.Action
}

// Plan decides an action for every living crew member and hostile that is
// not in acted. Results are ordered by entity.
func Plan(w *world.World, rng *rand.Rand, acted map[world.Entity]bool) []Planned {
	actors := append(w.CrewMembers.Entities(), w.Hostiles.Entities()...)

	var result []Planned
	for _, e := range sortedUnique(actors) {
		if acted[e] || !w.IsAlive(e) {
			continue
		}
		if act, ok := Decide(w, rng, e); ok {
			result = append(result, Planned{Actor: e, Action: act})
		}
	}
	return result
}

// Decide picks the action actor should take this tick.
func Decide(w *world.World, rng *rand.Rand, actor world.Entity) (action.Action, bool) {
	pos, ok := w.Positions.Get(actor)
	if !ok {
		return nil, false
	}

	if act, ok := heal(w, actor); ok {
		return act, true
	}
	if act, ok := rearm(w, actor); ok {
		return act, true
	}

	if hostile, ok := w.Hostiles.Get(actor); ok {
		crew := w.CrewInArea(pos.Area)
		if hostile.Aggressive && len(crew) > 0 {
			return action.Attack{Targets: crew}, true
		}
		if w.Wanderers.Has(actor) {
			return wander(w, rng, pos.Area)
		}
		return nil, false
	}

	if w.CrewMembers.Has(actor) {
		if foes := w.HostilesInArea(pos.Area, true); len(foes) > 0 {
			return action.Attack{Targets: foes}, true
		}
		if act, ok := fromIntention(w, actor); ok {
			return act, true
		}
		return action.Wait{}, true
	}
	return nil, false
}

// heal uses a medkit when the actor is badly hurt.
func heal(w *world.World, actor world.Entity) (action.Action, bool) {
	health, ok := w.Healths.Get(actor)
	if !ok || !health.IsBadlyHurt() {
		return nil, false
	}
	if _, ok := w.HeldOfKind(actor, world.ItemMedkit); ok {
		return action.UseMedkit{}, true
	}
	return nil, false
}

// rearm wields a held weapon that is strictly better than the current one.
func rearm(w *world.World, actor world.Entity) (action.Action, bool) {
	best, damage, ok := w.BestWeapon(actor)
	if !ok || damage <= w.WeaponDamage(actor) {
		return nil, false
	}
	if wielded, ok := w.Wielded(actor); ok && wielded == best {
		return nil, false
	}
	return action.Wield{Item: best}, true
}

// wander picks a random open door in area that does not lead into the ship.
func wander(w *world.World, rng *rand.Rand, area world.Entity) (action.Action, bool) {
	var doors []world.Entity
	for _, d := range w.DoorsInArea(area) {
		door, _ := w.Doors.Get(d)
		if w.Blocks.Has(door.Pair) || w.Ships.Has(door.Destination.Area) {
			continue
		}
		doors = append(doors, d)
	}
	if len(doors) == 0 {
		return nil, false
	}
	return action.EnterDoor{Door: doors[rng.IntN(len(doors))]}, true
}

// fromIntention turns a stored intention into an action, consuming it.
// Intentions that no longer apply are dropped.
func fromIntention(w *world.World, actor world.Entity) (action.Action, bool) {
	intention, ok := w.Intentions.Get(actor)
	if !ok {
		return nil, false
	}
	w.Intentions.Remove(actor)

	switch intention.Kind {
	case world.IntentionWield:
		held, ok := w.Held.Get(intention.Target)
		if !ok || held.Holder != actor || held.InHand {
			return nil, false
		}
		return action.Wield{Item: intention.Target}, true
	case world.IntentionForce:
		if !action.CanForce(w, actor, intention.Target) {
			return nil, false
		}
		return action.ForceDoor{Door: intention.Target}, true
	default:
		return nil, false
	}
}

func sortedUnique(entities []world.Entity) []world.Entity {
	seen := make(map[world.Entity]bool, len(entities))
	var result []world.Entity
	for _, e := range entities {
		if !seen[e] {
			seen[e] = true
			result = append(result, e)
		}
	}
	slices.Sort(result)
	return result
}
