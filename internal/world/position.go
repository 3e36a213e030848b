package world

import "fmt"

// Pos is a coordinate within an area. Positions are only comparable within
// the same area.
type Pos struct {
	Area  Entity `json:"area"`
	Coord uint   `json:"coord"`
}

func (p Pos) IsIn(area Entity) bool {
	return p.Area == area
}

// Distance returns the number of coordinates between p and o. Both must be
// in the same area.
func (p Pos) Distance(o Pos) uint {
	p.assertSameArea(o)
	if p.Coord > o.Coord {
		return p.Coord - o.Coord
	}
	return o.Coord - p.Coord
}

// AdjacentTowards returns the coordinate next to to on the side facing p,
// or p itself if p is already adjacent to or at to.
func (p Pos) AdjacentTowards(to Pos) Pos {
	p.assertSameArea(to)
	switch {
	case p.Coord+1 < to.Coord:
		return Pos{Area: to.Area, Coord: to.Coord - 1}
	case p.Coord > to.Coord+1:
		return Pos{Area: to.Area, Coord: to.Coord + 1}
	default:
		return p
	}
}

// DirectionTo returns the direction to face when looking at o.
func (p Pos) DirectionTo(o Pos) Direction {
	if o.Coord < p.Coord {
		return DirectionLeft
	}
	return DirectionRight
}

func (p Pos) assertSameArea(o Pos) {
	if p.Area != o.Area {
		panic(fmt.Sprintf("comparing positions in different areas (%d and %d)", p.Area, o.Area))
	}
}

type Direction int

const (
	DirectionRight Direction = iota
	DirectionLeft
)

// Blockage is returned when movement is obstructed by another entity.
type Blockage struct {
	Mover   Entity
	Blocker Entity
}

func (b *Blockage) Error() string {
	return fmt.Sprintf("entity %d is blocked by entity %d", b.Mover, b.Blocker)
}

// TryMove moves the mover to dest within its current area. It fails with a
// *Blockage if a hostile stands strictly between a crew member and dest, or
// if something that occupies space is already at dest. Members of the same
// crew may share a coordinate, since a crew passes through a door together
// and arrives on the door's single destination coordinate. A move of zero
// distance succeeds without changing the mover's facing.
func (w *World) TryMove(mover Entity, dest Pos) error {
	if err := w.CheckMove(mover, dest); err != nil {
		return err
	}

	pos, _ := w.Positions.Get(mover)
	if pos == dest {
		return nil
	}
	w.Directions.Set(mover, pos.DirectionTo(dest))
	w.Positions.Set(mover, dest)
	return nil
}

// CheckMove reports the error TryMove would return without moving.
func (w *World) CheckMove(mover Entity, dest Pos) error {
	pos, ok := w.Positions.Get(mover)
	if !ok {
		return fmt.Errorf("entity %d has no position", mover)
	}
	pos.assertSameArea(dest)
	if area, ok := w.Areas.Get(dest.Area); ok && dest.Coord >= area.Size {
		panic(fmt.Sprintf("coordinate %d outside area %d of size %d", dest.Coord, dest.Area, area.Size))
	}

	if pos == dest {
		return nil
	}
	if blocker, ok := w.blockerBetween(mover, pos, dest); ok {
		return &Blockage{Mover: mover, Blocker: blocker}
	}
	if occupant, ok := w.occupantAt(mover, dest); ok {
		return &Blockage{Mover: mover, Blocker: occupant}
	}
	return nil
}

// blockerBetween finds the hostile nearest to from that stands strictly
// between from and to. Only crew members are blocked this way.
func (w *World) blockerBetween(mover Entity, from, to Pos) (Entity, bool) {
	if !w.CrewMembers.Has(mover) {
		return 0, false
	}

	lo, hi := min(from.Coord, to.Coord), max(from.Coord, to.Coord)
	var blocker Entity
	var best uint
	found := false
	for _, e := range w.Hostiles.Entities() {
		if !w.IsAlive(e) {
			continue
		}
		p, ok := w.Positions.Get(e)
		if !ok || p.Area != from.Area || p.Coord <= lo || p.Coord >= hi {
			continue
		}
		if d := from.Distance(p); !found || d < best {
			blocker, best, found = e, d, true
		}
	}
	return blocker, found
}

// occupantAt finds an entity at dest that the mover can not share a
// coordinate with.
func (w *World) occupantAt(mover Entity, dest Pos) (Entity, bool) {
	if !w.OccupiesSpace(mover) {
		return 0, false
	}
	moverCrew, inCrew := w.CrewOf(mover)
	for _, e := range w.EntitiesAt(dest) {
		if e == mover || !w.OccupiesSpace(e) {
			continue
		}
		if crew, ok := w.CrewOf(e); ok && inCrew && crew == moverCrew {
			continue
		}
		return e, true
	}
	return 0, false
}

// OccupiesSpace reports whether e takes up its coordinate: living actors,
// containers and Fortuna chests. Items, doors and the dead do not.
func (w *World) OccupiesSpace(e Entity) bool {
	switch {
	case w.Healths.Has(e):
		return w.IsAlive(e)
	case w.Containers.Has(e), w.FortunaChests.Has(e):
		return true
	}
	return false
}

