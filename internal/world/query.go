package world

import (
	"slices"
	"strconv"
	"strings"
)

// IsAlive reports whether e is an actor with health remaining.
func (w *World) IsAlive(e Entity) bool {
	h, ok := w.Healths.Get(e)
	return ok && h.IsAlive()
}

// IsDead reports whether e is an actor with no health remaining.
func (w *World) IsDead(e Entity) bool {
	h, ok := w.Healths.Get(e)
	return ok && h.IsDead()
}

// AreaOf returns the area e is positioned in. Held items report the area of
// their holder.
func (w *World) AreaOf(e Entity) (Entity, bool) {
	if pos, ok := w.Positions.Get(e); ok {
		return pos.Area, true
	}
	if held, ok := w.Held.Get(e); ok {
		return w.AreaOf(held.Holder)
	}
	return 0, false
}

// EntitiesAt returns every entity positioned exactly at pos.
func (w *World) EntitiesAt(pos Pos) []Entity {
	var result []Entity
	for _, e := range w.Positions.Entities() {
		if p, _ := w.Positions.Get(e); p == pos {
			result = append(result, e)
		}
	}
	return result
}

// EntitiesInArea returns every entity positioned in area, in creation order.
func (w *World) EntitiesInArea(area Entity) []Entity {
	var result []Entity
	for _, e := range w.Positions.Entities() {
		if p, _ := w.Positions.Get(e); p.IsIn(area) {
			result = append(result, e)
		}
	}
	return result
}

// ItemsInArea returns the items lying freely in area.
func (w *World) ItemsInArea(area Entity) []Entity {
	var result []Entity
	for _, e := range w.EntitiesInArea(area) {
		if w.Items.Has(e) {
			result = append(result, e)
		}
	}
	return result
}

// DoorsInArea returns the doors positioned in area.
func (w *World) DoorsInArea(area Entity) []Entity {
	var result []Entity
	for _, e := range w.EntitiesInArea(area) {
		if w.Doors.Has(e) {
			result = append(result, e)
		}
	}
	return result
}

// CrewInArea returns the living crew members positioned in area.
func (w *World) CrewInArea(area Entity) []Entity {
	var result []Entity
	for _, e := range w.EntitiesInArea(area) {
		if w.CrewMembers.Has(e) && w.IsAlive(e) {
			result = append(result, e)
		}
	}
	return result
}

// HostilesInArea returns the living hostile creatures positioned in area.
// When aggressiveOnly is set, passive hostiles are left out.
func (w *World) HostilesInArea(area Entity, aggressiveOnly bool) []Entity {
	var result []Entity
	for _, e := range w.EntitiesInArea(area) {
		h, ok := w.Hostiles.Get(e)
		if !ok || !w.IsAlive(e) || (aggressiveOnly && !h.Aggressive) {
			continue
		}
		result = append(result, e)
	}
	return result
}

// CrewMembersOf returns every member of crew, living or not.
func (w *World) CrewMembersOf(crew Entity) []Entity {
	var result []Entity
	for _, e := range w.CrewMembers.Entities() {
		if m, _ := w.CrewMembers.Get(e); m.Crew == crew {
			result = append(result, e)
		}
	}
	return result
}

// LivingCrewOf returns the living members of crew.
func (w *World) LivingCrewOf(crew Entity) []Entity {
	return slices.DeleteFunc(w.CrewMembersOf(crew), func(e Entity) bool {
		return !w.IsAlive(e)
	})
}

// CrewOf returns the crew entity e belongs to.
func (w *World) CrewOf(e Entity) (Entity, bool) {
	m, ok := w.CrewMembers.Get(e)
	return m.Crew, ok
}

// Inventory returns the items held by holder, in hand or not.
func (w *World) Inventory(holder Entity) []Entity {
	var result []Entity
	for _, e := range w.Held.Entities() {
		if h, _ := w.Held.Get(e); h.Holder == holder {
			result = append(result, e)
		}
	}
	return result
}

// HeldOfKind returns the first item of kind held by holder.
func (w *World) HeldOfKind(holder Entity, kind ItemKind) (Entity, bool) {
	for _, e := range w.Inventory(holder) {
		if item, _ := w.Items.Get(e); item.Kind == kind {
			return e, true
		}
	}
	return 0, false
}

// CountHeld returns the number of items of kind held by holder.
func (w *World) CountHeld(holder Entity, kind ItemKind) int {
	count := 0
	for _, e := range w.Inventory(holder) {
		if item, _ := w.Items.Get(e); item.Kind == kind {
			count++
		}
	}
	return count
}

// Wielded returns the item holder has in hand.
func (w *World) Wielded(holder Entity) (Entity, bool) {
	for _, e := range w.Inventory(holder) {
		if h, _ := w.Held.Get(e); h.InHand {
			return e, true
		}
	}
	return 0, false
}

// WeaponDamage returns the damage of the weapon holder has in hand, or the
// barehanded damage.
func (w *World) WeaponDamage(holder Entity) float64 {
	if e, ok := w.Wielded(holder); ok {
		if weapon, ok := w.Weapons.Get(e); ok {
			return weapon.Damage
		}
	}
	return Barehanded
}

// BestWeapon returns the held weapon with the highest damage, preferring the
// oldest item on ties.
func (w *World) BestWeapon(holder Entity) (Entity, float64, bool) {
	var best Entity
	var damage float64
	found := false
	for _, e := range w.Inventory(holder) {
		weapon, ok := w.Weapons.Get(e)
		if ok && (!found || weapon.Damage > damage) {
			best, damage, found = e, weapon.Damage, true
		}
	}
	return best, damage, found
}

// Give moves item into the inventory of holder, removing any free position.
func (w *World) Give(item, holder Entity) {
	w.Positions.Remove(item)
	w.Held.Set(item, Held{Holder: holder})
}

// Drop places item freely at pos.
func (w *World) Drop(item Entity, pos Pos) {
	w.Held.Remove(item)
	w.Positions.Set(item, pos)
}

// Wield puts item in the hand of its holder, returning any previously
// wielded item to the inventory.
func (w *World) Wield(item Entity) {
	held, ok := w.Held.Get(item)
	if !ok {
		return
	}
	if prev, ok := w.Wielded(held.Holder); ok {
		w.Held.Update(prev, func(h *Held) { h.InHand = false })
	}
	w.Held.Update(item, func(h *Held) { h.InHand = true })
}

// Spill drops everything holder carries at the holder's position.
func (w *World) Spill(holder Entity) {
	pos, ok := w.Positions.Get(holder)
	if !ok {
		return
	}
	for _, item := range w.Inventory(holder) {
		w.Drop(item, pos)
	}
}

// Points returns the shared points of crew.
func (w *World) Points(crew Entity) int {
	c, _ := w.Crews.Get(crew)
	return c.Points
}

// ShipArea returns the area carrying the Ship component.
func (w *World) ShipArea() (Entity, bool) {
	ships := w.Ships.Entities()
	if len(ships) == 0 {
		return 0, false
	}
	return ships[0], true
}

// BlockOf returns the block on the pair door belongs to.
func (w *World) BlockOf(door Entity) (BlockType, bool) {
	d, ok := w.Doors.Get(door)
	if !ok {
		return "", false
	}
	return w.Blocks.Get(d.Pair)
}

// NameOf returns how e is referred to mid-sentence: its name when known,
// otherwise "the" and its noun.
func (w *World) NameOf(e Entity) string {
	if name, ok := w.Names.Get(e); ok && name.Known {
		return name.Value
	}
	if noun, ok := w.Nouns.Get(e); ok {
		return "the " + noun.Singular
	}
	return "something"
}

// IndefiniteName returns e's name when known, otherwise its noun with an
// indefinite article.
func (w *World) IndefiniteName(e Entity) string {
	if name, ok := w.Names.Get(e); ok && name.Known {
		return name.Value
	}
	if noun, ok := w.Nouns.Get(e); ok {
		return Indefinite(noun.Singular)
	}
	return "something"
}

// BaseName returns e's known name or its bare noun.
func (w *World) BaseName(e Entity) string {
	if name, ok := w.Names.Get(e); ok && name.Known {
		return name.Value
	}
	if noun, ok := w.Nouns.Get(e); ok {
		return noun.Singular
	}
	return "something"
}

// Indefinite prefixes noun with "a" or "an".
func Indefinite(noun string) string {
	if noun == "" {
		return noun
	}
	if strings.ContainsRune("aeiou", rune(strings.ToLower(noun)[0])) {
		return "an " + noun
	}
	return "a " + noun
}

// CountedNoun renders count items of noun, e.g. "2 fuel cans".
func CountedNoun(count int, noun Noun) string {
	if count == 1 {
		return Indefinite(noun.Singular)
	}
	return strconv.Itoa(count) + " " + noun.Plural
}
