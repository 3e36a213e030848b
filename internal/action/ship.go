package action

import (
	"github.com/pixil98/go-crew/internal/world"
)

// shipOf returns the ship area performer is standing in.
func shipOf(w *world.World, performer world.Entity) (world.Entity, world.Ship, error) {
	pos, ok := w.Positions.Get(performer)
	if !ok {
		return 0, world.Ship{}, Fail("%s is nowhere.", w.NameOf(performer))
	}
	ship, ok := w.Ships.Get(pos.Area)
	if !ok {
		return 0, world.Ship{}, Fail("%s needs to be in the ship to do that.", w.NameOf(performer))
	}
	return pos.Area, ship, nil
}

func refuel(ctx Context, performer world.Entity) (Outcome, error) {
	w := ctx.World
	area, ship, err := shipOf(w, performer)
	if err != nil {
		return Outcome{}, err
	}
	if !ship.Status.NeedsFuel() {
		return Outcome{}, Fail("The ship is already refueled.")
	}
	can, ok := w.HeldOfKind(performer, world.ItemFuelCan)
	if !ok {
		return Outcome{}, Fail("%s does not have a fuel can.", w.NameOf(performer))
	}

	w.Destroy(can)
	ship.Status.Refuel()
	w.Ships.Set(area, ship)

	var outcome Outcome
	outcome.add("%s put a fuel can in the ship's fuel tank.", w.NameOf(performer))
	outcome.add("The ship %s.", ship.Status)
	return outcome, nil
}

// fuelNeeded returns how many fuel cans status still needs.
func fuelNeeded(status world.ShipStatus) int {
	switch status {
	case world.ShipNeedTwoCans:
		return 2
	case world.ShipNeedOneCan:
		return 1
	default:
		return 0
	}
}

// launch refuels the ship with any held fuel cans and starts the launch.
// Crew members outside the ship are left behind.
func launch(ctx Context, performer world.Entity) (Outcome, error) {
	w := ctx.World
	area, ship, err := shipOf(w, performer)
	if err != nil {
		return Outcome{}, err
	}
	if ship.Status == world.ShipLaunching {
		return Outcome{}, Fail("The ship is already launching.")
	}
	needed := fuelNeeded(ship.Status)
	if held := w.CountHeld(performer, world.ItemFuelCan); held < needed {
		return Outcome{}, Fail("The ship %s, and %s does not have enough fuel cans.", ship.Status, w.NameOf(performer))
	}

	var outcome Outcome
	for ship.Status.NeedsFuel() {
		can, _ := w.HeldOfKind(performer, world.ItemFuelCan)
		w.Destroy(can)
		ship.Status.Refuel()
		outcome.add("%s put a fuel can in the ship's fuel tank.", w.NameOf(performer))
	}

	crew, _ := w.CrewOf(performer)
	var absent []string
	for _, member := range AbsentCrew(w, crew) {
		absent = append(absent, w.NameOf(member))
	}
	if len(absent) > 0 {
		outcome.add("%s will be left behind.", joinList(absent))
	}

	ship.Status = world.ShipLaunching
	w.Ships.Set(area, ship)
	outcome.add("%s started the ship's engines. The ship is launching.", w.NameOf(performer))
	return outcome, nil
}

// AbsentCrew returns the living members of crew that are not in the ship.
func AbsentCrew(w *world.World, crew world.Entity) []world.Entity {
	ship, ok := w.ShipArea()
	var result []world.Entity
	for _, member := range w.LivingCrewOf(crew) {
		if pos, ok2 := w.Positions.Get(member); !ok || !ok2 || !pos.IsIn(ship) {
			result = append(result, member)
		}
	}
	return result
}
