package location

import (
	"log/slog"
	"math/rand/v2"

	"github.com/pixil98/go-crew/internal/world"
)

type pendingDoor struct {
	pos  world.Pos
	kind world.DoorKind
}

// Spawn creates the blueprint's entities in w, left to right and coordinate
// by coordinate. One entry point is picked at random, and the ship's exit is
// linked to it. Returns the entry position.
func (b *Blueprint) Spawn(w *world.World, rng *rand.Rand, ship world.Entity) world.Pos {
	var entries []world.Pos
	pending := map[string]pendingDoor{}

	for _, plan := range b.areas {
		area := w.SpawnArea(plan.name, uint(len(plan.cells)), plan.background)
		for coord, specs := range plan.cells {
			pos := world.Pos{Area: area, Coord: uint(coord)}
			for _, sym := range specs {
				switch sym.Type {
				case SymbolEntry:
					entries = append(entries, pos)
				case SymbolDoor:
					kind := sym.DoorKind
					if kind == "" {
						kind = world.DoorKindDoor
					}
					first, ok := pending[sym.Pair]
					if !ok {
						pending[sym.Pair] = pendingDoor{pos: pos, kind: kind}
						continue
					}
					delete(pending, sym.Pair)
					w.SpawnDoorPair(first.pos, pos, first.kind, kind, b.pairs[sym.Pair])
				default:
					spawnSymbol(w, rng, sym, pos)
				}
			}
		}
	}

	entry := entries[rng.IntN(len(entries))]
	linkShip(w, ship, entry)

	slog.Info("location spawned", "location", b.Name, "areas", len(b.areas), "entries", len(entries))
	return entry
}

func spawnSymbol(w *world.World, rng *rand.Rand, sym SymbolSpec, pos world.Pos) {
	switch sym.Type {
	case SymbolItem:
		w.SpawnItem(sym.Item, pos)

	case SymbolLoot:
		w.SpawnItem(sym.Loot[0].Get().Pick(rng), pos)

	case SymbolCreature:
		w.SpawnCreature(sym.Creature, pos, sym.Wandering)

	case SymbolContainer:
		items := append([]world.ItemKind(nil), sym.Items...)
		for _, table := range sym.Loot {
			items = append(items, table.Get().Pick(rng))
		}
		noun := sym.Noun
		if noun == "" {
			noun = "crate"
		}
		e := w.Create()
		w.Containers.Set(e, world.Container{Items: items})
		w.Nouns.Set(e, world.Noun{Singular: noun, Plural: noun + "s"})
		w.Positions.Set(e, pos)

	case SymbolFortunaChest:
		e := w.Create()
		w.FortunaChests.Set(e, world.FortunaChest{})
		w.Nouns.Set(e, world.Noun{Singular: "fortuna chest", Plural: "fortuna chests"})
		w.Positions.Set(e, pos)

	case SymbolCharacter:
		e := w.SpawnCharacter(*sym.Profile, pos)
		w.Directions.Set(e, world.DirectionLeft)
		if sym.Recruitable {
			w.Recruitables.Set(e, world.Recruitable{})
		}
		if len(sym.Lines) > 0 {
			w.Talkers.Set(e, world.Talker{Lines: sym.Lines})
		}

	case SymbolShopkeeper:
		e := w.SpawnCharacter(*sym.Profile, pos)
		w.Directions.Set(e, world.DirectionLeft)
		stock := make([]world.StockItem, len(sym.Stock))
		for i, s := range sym.Stock {
			if s.Price == 0 {
				s.Price = s.Kind.Price()
			}
			stock[i] = s
		}
		w.Shopkeepers.Set(e, world.Shopkeeper{Stock: stock})
		if len(sym.Lines) > 0 {
			w.Talkers.Set(e, world.Talker{Lines: sym.Lines})
		}
	}
}

// linkShip places the pair of doors between the ship and entry.
func linkShip(w *world.World, ship world.Entity, entry world.Pos) {
	exit, outside, _ := w.SpawnDoorPair(world.Pos{Area: ship, Coord: 0}, entry, world.DoorKindHatch, world.DoorKindHatch, "")
	w.Nouns.Set(outside, world.Noun{Singular: "ship", Plural: "ships"})
	w.Ships.Update(ship, func(s *world.Ship) { s.Exit = exit })
}

// Despawn removes everything except the ship, what is inside it, and the
// crews. The ship's exit is removed as well.
func Despawn(w *world.World, ship world.Entity) {
	if s, ok := w.Ships.Get(ship); ok && s.Exit != 0 {
		if door, ok := w.Doors.Get(s.Exit); ok {
			w.Destroy(door.Pair)
		}
		w.Destroy(s.Exit)
		w.Ships.Update(ship, func(s *world.Ship) { s.Exit = 0 })
	}

	removed := 0
	for _, e := range w.Entities() {
		if e == ship || w.Crews.Has(e) {
			continue
		}
		if area, ok := w.AreaOf(e); ok && area == ship {
			continue
		}
		w.Destroy(e)
		removed++
	}
	slog.Debug("location despawned", "removed", removed)
}
