package world

import (
	"errors"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestPos_Distance(t *testing.T) {
	tests := map[string]struct {
		a, b Pos
		exp  uint
	}{
		"same coordinate": {a: Pos{Area: 1, Coord: 3}, b: Pos{Area: 1, Coord: 3}, exp: 0},
		"forward":         {a: Pos{Area: 1, Coord: 1}, b: Pos{Area: 1, Coord: 4}, exp: 3},
		"backward":        {a: Pos{Area: 1, Coord: 6}, b: Pos{Area: 1, Coord: 2}, exp: 4},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "distance", tt.a.Distance(tt.b), tt.exp)
		})
	}
}

func TestPos_DistanceAcrossAreasPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic comparing positions in different areas")
		}
	}()
	Pos{Area: 1}.Distance(Pos{Area: 2})
}

func TestPos_AdjacentTowards(t *testing.T) {
	tests := map[string]struct {
		from, to Pos
		exp      uint
	}{
		"from the left":  {from: Pos{Area: 1, Coord: 0}, to: Pos{Area: 1, Coord: 5}, exp: 4},
		"from the right": {from: Pos{Area: 1, Coord: 8}, to: Pos{Area: 1, Coord: 5}, exp: 6},
		"already next":   {from: Pos{Area: 1, Coord: 4}, to: Pos{Area: 1, Coord: 5}, exp: 4},
		"same spot":      {from: Pos{Area: 1, Coord: 5}, to: Pos{Area: 1, Coord: 5}, exp: 5},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "coord", tt.from.AdjacentTowards(tt.to).Coord, tt.exp)
		})
	}
}

func TestWorld_TryMove(t *testing.T) {
	tests := map[string]struct {
		setup      func(w *World, area Entity) Entity
		dest       uint
		expBlocker bool
		expCoord   uint
	}{
		"unblocked move": {
			setup: func(w *World, area Entity) Entity {
				return w.SpawnCrewMember(w.SpawnCrew(0), CharacterProfile{Name: "Mint"}, Pos{Area: area, Coord: 1})
			},
			dest:     6,
			expCoord: 6,
		},
		"hostile in between blocks crew": {
			setup: func(w *World, area Entity) Entity {
				w.SpawnCreature(CreatureScarvie, Pos{Area: area, Coord: 4}, false)
				return w.SpawnCrewMember(w.SpawnCrew(0), CharacterProfile{Name: "Mint"}, Pos{Area: area, Coord: 1})
			},
			dest:       6,
			expBlocker: true,
			expCoord:   1,
		},
		"dead hostile does not block": {
			setup: func(w *World, area Entity) Entity {
				foe := w.SpawnCreature(CreatureScarvie, Pos{Area: area, Coord: 4}, false)
				w.Healths.Set(foe, Health{Value: 0})
				return w.SpawnCrewMember(w.SpawnCrew(0), CharacterProfile{Name: "Mint"}, Pos{Area: area, Coord: 1})
			},
			dest:     6,
			expCoord: 6,
		},
		"crew members do not block each other": {
			setup: func(w *World, area Entity) Entity {
				crew := w.SpawnCrew(0)
				w.SpawnCrewMember(crew, CharacterProfile{Name: "Mack"}, Pos{Area: area, Coord: 6})
				return w.SpawnCrewMember(crew, CharacterProfile{Name: "Mint"}, Pos{Area: area, Coord: 1})
			},
			dest:     6,
			expCoord: 6,
		},
		"hostile on destination blocks": {
			setup: func(w *World, area Entity) Entity {
				w.SpawnCreature(CreatureGoblin, Pos{Area: area, Coord: 2}, false)
				return w.SpawnCrewMember(w.SpawnCrew(0), CharacterProfile{Name: "Mint"}, Pos{Area: area, Coord: 1})
			},
			dest:       2,
			expBlocker: true,
			expCoord:   1,
		},
		"neutral character on destination blocks": {
			setup: func(w *World, area Entity) Entity {
				w.SpawnCharacter(CharacterProfile{Name: "Plum"}, Pos{Area: area, Coord: 3})
				return w.SpawnCrewMember(w.SpawnCrew(0), CharacterProfile{Name: "Mint"}, Pos{Area: area, Coord: 1})
			},
			dest:       3,
			expBlocker: true,
			expCoord:   1,
		},
		"member of another crew blocks": {
			setup: func(w *World, area Entity) Entity {
				w.SpawnCrewMember(w.SpawnCrew(0), CharacterProfile{Name: "Revy"}, Pos{Area: area, Coord: 3})
				return w.SpawnCrewMember(w.SpawnCrew(0), CharacterProfile{Name: "Mint"}, Pos{Area: area, Coord: 1})
			},
			dest:       3,
			expBlocker: true,
			expCoord:   1,
		},
		"container on destination blocks": {
			setup: func(w *World, area Entity) Entity {
				crate := w.Create()
				w.Containers.Set(crate, Container{})
				w.Positions.Set(crate, Pos{Area: area, Coord: 3})
				return w.SpawnCrewMember(w.SpawnCrew(0), CharacterProfile{Name: "Mint"}, Pos{Area: area, Coord: 1})
			},
			dest:       3,
			expBlocker: true,
			expCoord:   1,
		},
		"hostiles do not share a coordinate": {
			setup: func(w *World, area Entity) Entity {
				w.SpawnCreature(CreatureGoblin, Pos{Area: area, Coord: 3}, false)
				return w.SpawnCreature(CreatureGoblin, Pos{Area: area, Coord: 6}, false)
			},
			dest:       3,
			expBlocker: true,
			expCoord:   6,
		},
		"items and dead actors do not block": {
			setup: func(w *World, area Entity) Entity {
				w.SpawnItem(ItemFuelCan, Pos{Area: area, Coord: 3})
				body := w.SpawnCharacter(CharacterProfile{Name: "Plum"}, Pos{Area: area, Coord: 3})
				w.Healths.Set(body, Health{Value: 0})
				return w.SpawnCrewMember(w.SpawnCrew(0), CharacterProfile{Name: "Mint"}, Pos{Area: area, Coord: 1})
			},
			dest:     3,
			expCoord: 3,
		},
		"zero distance move": {
			setup: func(w *World, area Entity) Entity {
				w.SpawnCreature(CreatureGoblin, Pos{Area: area, Coord: 4}, false)
				return w.SpawnCrewMember(w.SpawnCrew(0), CharacterProfile{Name: "Mint"}, Pos{Area: area, Coord: 3})
			},
			dest:     3,
			expCoord: 3,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := NewWorld()
			area := w.SpawnArea("Room", 8, "")
			mover := tt.setup(w, area)

			err := w.TryMove(mover, Pos{Area: area, Coord: tt.dest})

			var blockage *Blockage
			testutil.AssertEqual(t, "blocked", errors.As(err, &blockage), tt.expBlocker)
			if !tt.expBlocker && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			pos, _ := w.Positions.Get(mover)
			testutil.AssertEqual(t, "coord", pos.Coord, tt.expCoord)
		})
	}
}

func TestWorld_TryMoveKeepsFacingOnNoop(t *testing.T) {
	w := NewWorld()
	area := w.SpawnArea("Room", 8, "")
	mover := w.SpawnCrewMember(w.SpawnCrew(0), CharacterProfile{Name: "Mint"}, Pos{Area: area, Coord: 3})
	w.Directions.Set(mover, DirectionLeft)

	if err := w.TryMove(mover, Pos{Area: area, Coord: 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dir, _ := w.Directions.Get(mover)
	testutil.AssertEqual(t, "direction", dir, DirectionLeft)

	if err := w.TryMove(mover, Pos{Area: area, Coord: 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dir, _ = w.Directions.Get(mover)
	testutil.AssertEqual(t, "direction", dir, DirectionRight)
}

func TestWorld_TryMoveBlockerIsNearest(t *testing.T) {
	w := NewWorld()
	area := w.SpawnArea("Room", 10, "")
	far := w.SpawnCreature(CreatureScarvie, Pos{Area: area, Coord: 6}, false)
	near := w.SpawnCreature(CreatureScarvie, Pos{Area: area, Coord: 3}, false)
	mover := w.SpawnCrewMember(w.SpawnCrew(0), CharacterProfile{Name: "Mint"}, Pos{Area: area, Coord: 1})

	err := w.TryMove(mover, Pos{Area: area, Coord: 9})

	var blockage *Blockage
	if !errors.As(err, &blockage) {
		t.Fatalf("expected blockage, got %v", err)
	}
	testutil.AssertEqual(t, "blocker", blockage.Blocker, near)
	testutil.AssertEqual(t, "not far", blockage.Blocker != far, true)
}
