package action

import (
	"github.com/pixil98/go-crew/internal/world"
)

func enterDoor(ctx Context, performer, door world.Entity) (Outcome, error) {
	w := ctx.World
	d, ok := w.Doors.Get(door)
	if !ok {
		return Outcome{}, Fail("%s is not a door.", w.NameOf(door))
	}
	if _, _, err := reach(ctx, performer, door); err != nil {
		return Outcome{}, err
	}

	usedKeycard := false
	if block, ok := w.Blocks.Get(d.Pair); ok {
		_, hasKeycard := w.HeldOfKind(performer, world.ItemKeycard)
		if block != world.BlockLocked || !hasKeycard {
			return Outcome{}, Fail("%s is %s.", w.NameOf(door), block.Description())
		}
		usedKeycard = true
	}

	dest, err := approachObject(ctx, performer, door)
	if err != nil {
		return Outcome{}, err
	}
	if err := moveTo(ctx, performer, dest); err != nil {
		return Outcome{}, err
	}

	w.Positions.Set(performer, d.Destination)
	var outcome Outcome
	if usedKeycard {
		outcome.add("Using their keycard, %s entered %s.", w.NameOf(performer), w.NameOf(door))
	} else {
		outcome.add("%s entered %s.", w.NameOf(performer), w.NameOf(door))
	}
	return outcome, nil
}

// forceTool returns the held tool that can force block, preferring the
// crowbar for stuck doors.
func forceTool(w *world.World, performer world.Entity, block world.BlockType) (world.ItemKind, bool) {
	_, crowbar := w.HeldOfKind(performer, world.ItemCrowbar)
	_, blowtorch := w.HeldOfKind(performer, world.ItemBlowtorch)
	switch {
	case block == world.BlockStuck && crowbar:
		return world.ItemCrowbar, true
	case blowtorch:
		return world.ItemBlowtorch, true
	default:
		return "", false
	}
}

// CanForce reports whether performer holds a tool able to force door.
func CanForce(w *world.World, performer, door world.Entity) bool {
	block, ok := w.BlockOf(door)
	if !ok {
		return false
	}
	_, ok = forceTool(w, performer, block)
	return ok
}

func forceDoor(ctx Context, performer, door world.Entity) (Outcome, error) {
	w := ctx.World
	d, ok := w.Doors.Get(door)
	if !ok {
		return Outcome{}, Fail("%s is not a door.", w.NameOf(door))
	}
	if _, _, err := reach(ctx, performer, door); err != nil {
		return Outcome{}, err
	}
	block, ok := w.Blocks.Get(d.Pair)
	if !ok {
		return Outcome{}, Fail("%s does not seem to be stuck.", w.NameOf(door))
	}

	tool, ok := forceTool(w, performer, block)
	if !ok {
		if _, crowbar := w.HeldOfKind(performer, world.ItemCrowbar); crowbar {
			return Outcome{}, Fail("%s needs a blowtorch to force open %s.", w.NameOf(performer), w.NameOf(door))
		}
		return Outcome{}, Fail("%s needs some sort of tool to force %s.", w.NameOf(performer), w.NameOf(door))
	}

	dest, err := approachObject(ctx, performer, door)
	if err != nil {
		return Outcome{}, err
	}
	if err := moveTo(ctx, performer, dest); err != nil {
		return Outcome{}, err
	}

	w.Blocks.Remove(d.Pair)
	if tool == world.ItemCrowbar {
		return succeed("%s used their crowbar and forced open %s.", w.NameOf(performer), w.NameOf(door))
	}
	return succeed("%s used their blowtorch and cut %s open.", w.NameOf(performer), w.NameOf(door))
}

func goToShip(ctx Context, performer world.Entity) (Outcome, error) {
	w := ctx.World
	pos, ok := w.Positions.Get(performer)
	if !ok {
		return Outcome{}, Fail("%s is nowhere.", w.NameOf(performer))
	}
	if w.Ships.Has(pos.Area) {
		return Outcome{}, Fail("%s is already in the ship.", w.NameOf(performer))
	}
	door, ok := ShipDoor(w, pos.Area)
	if !ok {
		return Outcome{}, Fail("There is no path back to the ship from here.")
	}
	return enterDoor(ctx, performer, door)
}

// ShipDoor returns the door in area that leads into the ship.
func ShipDoor(w *world.World, area world.Entity) (world.Entity, bool) {
	for _, e := range w.DoorsInArea(area) {
		d, _ := w.Doors.Get(e)
		if w.Ships.Has(d.Destination.Area) {
			return e, true
		}
	}
	return 0, false
}
