package command

import (
	"fmt"
	"math"

	"github.com/pixil98/go-crew/internal/world"
)

type memberInfo struct {
	Name       string
	Controlled bool
	Health     int
	Stamina    int
	Wielded    string
	Waiting    bool
}

type statusInfo struct {
	Members []memberInfo
	Points  int
	Ship    string
}

func statusText(w *world.World, controlled world.Entity) (string, error) {
	info := statusInfo{}
	if crew, ok := w.CrewOf(controlled); ok {
		info.Points = w.Points(crew)
		for _, m := range w.LivingCrewOf(crew) {
			mi := memberInfo{
				Name:       w.BaseName(m),
				Controlled: m == controlled,
				Health:     healthPercent(w, m),
				Waiting:    w.Waiting.Has(m),
			}
			if st, ok := w.Staminas.Get(m); ok {
				mi.Stamina = st.Value
			}
			if item, ok := w.Wielded(m); ok {
				mi.Wielded = w.IndefiniteName(item)
			}
			info.Members = append(info.Members, mi)
		}
	}
	if area, ok := w.ShipArea(); ok {
		ship, _ := w.Ships.Get(area)
		info.Ship = ship.Status.String()
	}
	return ExpandTemplate(statusTemplate, info)
}

type inventoryInfo struct {
	Name    string
	Items   []string
	Wielded string
}

func inventoryText(w *world.World, holder world.Entity) (string, error) {
	info := inventoryInfo{Name: w.BaseName(holder)}

	counts := map[world.ItemKind]int{}
	var kinds []world.ItemKind
	for _, item := range w.Inventory(holder) {
		held, _ := w.Held.Get(item)
		if held.InHand {
			info.Wielded = w.IndefiniteName(item)
			continue
		}
		it, _ := w.Items.Get(item)
		if counts[it.Kind] == 0 {
			kinds = append(kinds, it.Kind)
		}
		counts[it.Kind]++
	}
	for _, k := range kinds {
		info.Items = append(info.Items, world.CountedNoun(counts[k], k.Noun()))
	}
	return ExpandTemplate(inventoryTemplate, info)
}

type checkInfo struct {
	Name   string
	Damage string
	Price  int
	Health int
}

func checkText(w *world.World, e world.Entity) (string, error) {
	info := checkInfo{Name: w.BaseName(e)}
	if weapon, ok := w.Weapons.Get(e); ok {
		info.Damage = fmt.Sprintf("%g", weapon.Damage)
	}
	if price, ok := w.Prices.Get(e); ok {
		info.Price = price.Value
	}
	if w.IsDead(e) {
		return capitalize(w.NameOf(e)) + " is dead.", nil
	}
	if w.Healths.Has(e) {
		info.Health = healthPercent(w, e)
	}
	return ExpandTemplate(checkTemplate, info)
}

func healthPercent(w *world.World, e world.Entity) int {
	h, _ := w.Healths.Get(e)
	return int(math.Round(max(0, h.Value) * 100))
}
