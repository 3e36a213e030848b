package action

import (
	"errors"

	"github.com/pixil98/go-crew/internal/world"
)

// reach returns the positions of performer and target, failing if they
// are not in the same area.
func reach(ctx Context, performer, target world.Entity) (world.Pos, world.Pos, error) {
	w := ctx.World
	from, ok := w.Positions.Get(performer)
	if !ok {
		return world.Pos{}, world.Pos{}, Fail("%s is nowhere.", w.NameOf(performer))
	}
	to, ok := w.Positions.Get(target)
	if !ok || !to.IsIn(from.Area) {
		return world.Pos{}, world.Pos{}, Fail("%s cannot reach %s from here.", w.NameOf(performer), w.NameOf(target))
	}
	return from, to, nil
}

// checkPath fails with the blocking entity if performer cannot walk to dest.
func checkPath(ctx Context, performer world.Entity, dest world.Pos) error {
	return blockageFailure(ctx.World, ctx.World.CheckMove(performer, dest))
}

// moveTo walks performer to dest. It should only be called after checkPath.
func moveTo(ctx Context, performer world.Entity, dest world.Pos) error {
	return blockageFailure(ctx.World, ctx.World.TryMove(performer, dest))
}

func blockageFailure(w *world.World, err error) error {
	if err == nil {
		return nil
	}
	var blockage *world.Blockage
	if errors.As(err, &blockage) {
		return Fail("%s is blocked by %s.", w.NameOf(blockage.Mover), w.NameOf(blockage.Blocker))
	}
	return err
}

// approachActor checks that performer can stand next to target and returns
// the coordinate to walk to. The far side of target is used when the near
// side is taken.
func approachActor(ctx Context, performer, target world.Entity) (world.Pos, error) {
	from, to, err := reach(ctx, performer, target)
	if err != nil {
		return world.Pos{}, err
	}
	dest := from.AdjacentTowards(to)
	err = ctx.World.CheckMove(performer, dest)
	if err == nil {
		return dest, nil
	}
	if far, ok := farSide(ctx.World, from, to); ok && ctx.World.CheckMove(performer, far) == nil {
		return far, nil
	}
	return world.Pos{}, blockageFailure(ctx.World, err)
}

// farSide is the coordinate next to to, away from from.
func farSide(w *world.World, from, to world.Pos) (world.Pos, bool) {
	area, _ := w.Areas.Get(to.Area)
	switch {
	case from.Coord < to.Coord && to.Coord+1 < area.Size:
		return world.Pos{Area: to.Area, Coord: to.Coord + 1}, true
	case from.Coord > to.Coord && to.Coord > 0:
		return world.Pos{Area: to.Area, Coord: to.Coord - 1}, true
	}
	return world.Pos{}, false
}

// approachObject checks that performer can get to target and returns the
// coordinate to walk to: target's own, or the one next to it when target
// occupies space.
func approachObject(ctx Context, performer, target world.Entity) (world.Pos, error) {
	from, to, err := reach(ctx, performer, target)
	if err != nil {
		return world.Pos{}, err
	}
	if ctx.World.OccupiesSpace(target) {
		to = from.AdjacentTowards(to)
	}
	if err := checkPath(ctx, performer, to); err != nil {
		return world.Pos{}, err
	}
	return to, nil
}

// CheckReach returns the failure performer would meet getting to what act
// is aimed at, without changing anything. Actions that need no walking
// always pass.
func CheckReach(w *world.World, performer world.Entity, act Action) error {
	ctx := Context{World: w}
	var err error
	switch a := act.(type) {
	case TakeItem:
		_, err = approachObject(ctx, performer, a.Item)
	case TakeAll:
		if area, ok := w.AreaOf(performer); ok {
			if item, ok := nearest(w, performer, w.ItemsInArea(area)); ok {
				_, err = approachObject(ctx, performer, item)
			}
		}
	case Wield:
		if !w.Held.Has(a.Item) {
			_, err = approachObject(ctx, performer, a.Item)
		}
	case OpenContainer:
		_, err = approachObject(ctx, performer, a.Container)
	case EnterDoor:
		_, err = approachObject(ctx, performer, a.Door)
	case ForceDoor:
		_, err = approachObject(ctx, performer, a.Door)
	case GoToShip:
		if area, ok := w.AreaOf(performer); ok {
			if door, ok := ShipDoor(w, area); ok {
				_, err = approachObject(ctx, performer, door)
			}
		}
	case Give:
		_, err = approachActor(ctx, performer, a.Receiver)
	case Talk:
		_, err = approachActor(ctx, performer, a.Target)
	case Recruit:
		_, err = approachActor(ctx, performer, a.Target)
	case Tame:
		_, err = approachActor(ctx, performer, a.Target)
	case Trade:
		_, err = approachActor(ctx, performer, a.Shopkeeper)
	case Attack:
		var alive []world.Entity
		for _, target := range a.Targets {
			if w.IsAlive(target) && target != performer {
				alive = append(alive, target)
			}
		}
		if len(alive) > 0 {
			_, err = reachableTargets(ctx, performer, alive)
		}
	}
	return err
}

// faceTowards turns performer to look at target.
func faceTowards(ctx Context, performer, target world.Entity) {
	from, ok := ctx.World.Positions.Get(performer)
	to, ok2 := ctx.World.Positions.Get(target)
	if ok && ok2 && from.Area == to.Area && from != to {
		ctx.World.Directions.Set(performer, from.DirectionTo(to))
	}
}

// nearest returns the entity in candidates closest to performer, breaking
// ties by creation order.
func nearest(w *world.World, performer world.Entity, candidates []world.Entity) (world.Entity, bool) {
	from, ok := w.Positions.Get(performer)
	if !ok {
		return 0, false
	}
	var best world.Entity
	var bestDist uint
	found := false
	for _, e := range candidates {
		p, ok := w.Positions.Get(e)
		if !ok || !p.IsIn(from.Area) {
			continue
		}
		d := from.Distance(p)
		if !found || d < bestDist || (d == bestDist && e < best) {
			best, bestDist, found = e, d, true
		}
	}
	return best, found
}
