package world

// SpawnArea creates a new area of size coordinates.
func (w *World) SpawnArea(label string, size uint, background string) Entity {
	e := w.Create()
	w.Areas.Set(e, Area{Label: label, Size: size, Background: background})
	return e
}

// SpawnShip creates the crew's ship interior.
func (w *World) SpawnShip(size uint) Entity {
	e := w.SpawnArea("Ship", size, "ship")
	w.Ships.Set(e, Ship{Status: ShipNeedTwoCans})
	return e
}

// SpawnCrew creates the shared points pool for a crew.
func (w *World) SpawnCrew(points int) Entity {
	e := w.Create()
	w.Crews.Set(e, Crew{Points: points})
	return e
}

// CharacterProfile describes a named character.
type CharacterProfile struct {
	Name   string  `json:"name"`
	Stats  Stats   `json:"stats"`
	Traits []Trait `json:"traits,omitempty"`
}

func (w *World) spawnCharacter(profile CharacterProfile, pos Pos, known bool) Entity {
	e := w.Create()
	w.Names.Set(e, Name{Value: profile.Name, Known: known})
	w.Nouns.Set(e, Noun{Singular: "aftik", Plural: "aftiks"})
	w.Stats.Set(e, profile.Stats)
	if len(profile.Traits) > 0 {
		w.Traits.Set(e, Traits{Set: profile.Traits})
	}
	w.Healths.Set(e, Health{Value: 1})
	w.Staminas.Set(e, NewStamina(profile.Stats.Endurance))
	w.Directions.Set(e, DirectionRight)
	w.Positions.Set(e, pos)
	return e
}

// SpawnCrewMember creates a crew member of crew at pos.
func (w *World) SpawnCrewMember(crew Entity, profile CharacterProfile, pos Pos) Entity {
	e := w.spawnCharacter(profile, pos, true)
	w.CrewMembers.Set(e, CrewMember{Crew: crew})
	return e
}

// SpawnCharacter creates a neutral character whose name is not yet known.
func (w *World) SpawnCharacter(profile CharacterProfile, pos Pos) Entity {
	return w.spawnCharacter(profile, pos, false)
}

// SpawnCreature creates a hostile creature of kind at pos.
func (w *World) SpawnCreature(kind CreatureKind, pos Pos, wandering bool) Entity {
	e := w.Create()
	stats := kind.Stats()
	w.Creatures.Set(e, Creature{Kind: kind})
	w.Nouns.Set(e, kind.Noun())
	w.Stats.Set(e, stats)
	w.Healths.Set(e, Health{Value: 1})
	w.Staminas.Set(e, NewStamina(stats.Endurance))
	w.Hostiles.Set(e, Hostile{Aggressive: kind.Aggressive()})
	if kind.Tameable() {
		w.Tameables.Set(e, Tameable{})
	}
	if wandering {
		w.Wanderers.Set(e, Wandering{})
	}
	w.Directions.Set(e, DirectionLeft)
	w.Positions.Set(e, pos)
	return e
}

func (w *World) spawnItem(kind ItemKind) Entity {
	e := w.Create()
	w.Items.Set(e, Item{Kind: kind})
	w.Nouns.Set(e, kind.Noun())
	if price := kind.Price(); price > 0 {
		w.Prices.Set(e, Price{Value: price})
	}
	if damage := kind.WeaponDamage(); damage > 0 {
		w.Weapons.Set(e, Weapon{Damage: damage})
	}
	return e
}

// SpawnItem creates an item of kind lying at pos.
func (w *World) SpawnItem(kind ItemKind, pos Pos) Entity {
	e := w.spawnItem(kind)
	w.Positions.Set(e, pos)
	return e
}

// SpawnHeldItem creates an item of kind in the inventory of holder.
func (w *World) SpawnHeldItem(kind ItemKind, holder Entity) Entity {
	e := w.spawnItem(kind)
	w.Held.Set(e, Held{Holder: holder})
	return e
}

// SpawnDoorPair creates two doors leading to each other's position. The
// returned pair entity carries block, if one is given.
func (w *World) SpawnDoorPair(a, b Pos, kindA, kindB DoorKind, block BlockType) (Entity, Entity, Entity) {
	pair := w.Create()
	w.DoorPairs.Set(pair, DoorPair{})
	if block != "" {
		w.Blocks.Set(pair, block)
	}
	doorA := w.SpawnDoor(a, b, pair, kindA)
	doorB := w.SpawnDoor(b, a, pair, kindB)
	return doorA, doorB, pair
}

// SpawnDoor creates a single door at pos leading to destination.
func (w *World) SpawnDoor(pos, destination Pos, pair Entity, kind DoorKind) Entity {
	e := w.Create()
	w.Doors.Set(e, Door{Destination: destination, Pair: pair, Kind: kind})
	w.Nouns.Set(e, kind.Noun())
	w.Positions.Set(e, pos)
	return e
}

// Noun returns the common noun of a door of this kind.
func (k DoorKind) Noun() Noun {
	switch k {
	case DoorKindPath:
		return Noun{Singular: "path", Plural: "paths"}
	case DoorKindHatch:
		return Noun{Singular: "hatch", Plural: "hatches"}
	case DoorKindDoorway:
		return Noun{Singular: "doorway", Plural: "doorways"}
	default:
		return Noun{Singular: "door", Plural: "doors"}
	}
}
