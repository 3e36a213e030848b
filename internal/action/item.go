package action

import (
	"github.com/pixil98/go-crew/internal/world"
)

const (
	medkitHealing     = 0.5
	foodHealing       = 0.33
	bigEaterFoodBonus = 0.17
)

func takeItem(ctx Context, performer, item world.Entity) (Outcome, error) {
	w := ctx.World
	if !w.Items.Has(item) || !w.Positions.Has(item) {
		return Outcome{}, Fail("%s is not lying around here.", w.NameOf(item))
	}
	dest, err := approachObject(ctx, performer, item)
	if err != nil {
		return Outcome{}, err
	}
	if err := moveTo(ctx, performer, dest); err != nil {
		return Outcome{}, err
	}

	w.Give(item, performer)
	return succeed("%s picked up %s.", w.NameOf(performer), w.NameOf(item))
}

// takeAll picks up the nearest item and marks the performer to repeat the
// action on the next tick while items remain.
func takeAll(ctx Context, performer world.Entity) (Outcome, error) {
	w := ctx.World
	pos, ok := w.Positions.Get(performer)
	if !ok {
		return Outcome{}, Fail("%s is nowhere.", w.NameOf(performer))
	}
	item, ok := nearest(w, performer, w.ItemsInArea(pos.Area))
	if !ok {
		return Outcome{}, Fail("There are no items to take here.")
	}

	outcome, err := takeItem(ctx, performer, item)
	if err != nil {
		return outcome, err
	}
	if len(w.ItemsInArea(pos.Area)) > 0 {
		w.Repeating.Set(performer, world.Repeating{Kind: world.RepeatTakeAll})
	} else {
		w.Repeating.Remove(performer)
	}
	return outcome, nil
}

func wield(ctx Context, performer, item world.Entity) (Outcome, error) {
	w := ctx.World
	if !w.Weapons.Has(item) {
		return Outcome{}, Fail("%s is not a weapon.", w.NameOf(item))
	}

	if held, ok := w.Held.Get(item); ok {
		if held.Holder != performer {
			return Outcome{}, Fail("%s is not carrying %s.", w.NameOf(performer), w.NameOf(item))
		}
		if held.InHand {
			return Outcome{}, Fail("%s is already wielding %s.", w.NameOf(performer), w.NameOf(item))
		}
		w.Wield(item)
		return succeed("%s wielded %s.", w.NameOf(performer), w.NameOf(item))
	}

	dest, err := approachObject(ctx, performer, item)
	if err != nil {
		return Outcome{}, err
	}
	if err := moveTo(ctx, performer, dest); err != nil {
		return Outcome{}, err
	}
	w.Give(item, performer)
	w.Wield(item)
	return succeed("%s picked up and wielded %s.", w.NameOf(performer), w.NameOf(item))
}

func give(ctx Context, performer world.Entity, a Give) (Outcome, error) {
	w := ctx.World
	held, ok := w.Held.Get(a.Item)
	if !ok || held.Holder != performer {
		return Outcome{}, Fail("%s is not carrying %s.", w.NameOf(performer), w.NameOf(a.Item))
	}
	if a.Receiver == performer {
		return Outcome{}, Fail("%s can not give an item to themselves.", w.NameOf(performer))
	}
	performerCrew, _ := w.CrewOf(performer)
	if receiverCrew, ok := w.CrewOf(a.Receiver); !ok || receiverCrew != performerCrew {
		return Outcome{}, Fail("%s is not part of the crew.", w.NameOf(a.Receiver))
	}
	if !w.IsAlive(a.Receiver) {
		return Outcome{}, Fail("%s is dead.", w.NameOf(a.Receiver))
	}
	dest, err := approachActor(ctx, performer, a.Receiver)
	if err != nil {
		return Outcome{}, err
	}
	if err := moveTo(ctx, performer, dest); err != nil {
		return Outcome{}, err
	}
	faceTowards(ctx, performer, a.Receiver)

	w.Give(a.Item, a.Receiver)
	return succeed("%s gave %s %s.", w.NameOf(performer), w.NameOf(a.Receiver), w.IndefiniteName(a.Item))
}

func useMedkit(ctx Context, performer world.Entity) (Outcome, error) {
	w := ctx.World
	medkit, ok := w.HeldOfKind(performer, world.ItemMedkit)
	if !ok {
		return Outcome{}, Fail("%s does not have a medkit.", w.NameOf(performer))
	}
	health, _ := w.Healths.Get(performer)
	if !health.IsHurt() {
		return Outcome{}, Fail("%s is not hurt, and does not need to use the medkit.", w.NameOf(performer))
	}

	w.Destroy(medkit)
	w.Healths.Update(performer, func(h *world.Health) { h.Restore(medkitHealing) })
	return succeed("%s used a medkit and recovered some health.", w.NameOf(performer))
}

func eatFood(ctx Context, performer world.Entity) (Outcome, error) {
	w := ctx.World
	food, ok := w.HeldOfKind(performer, world.ItemFoodRation)
	if !ok {
		return Outcome{}, Fail("%s does not have a food ration.", w.NameOf(performer))
	}
	health, _ := w.Healths.Get(performer)
	if !health.IsHurt() {
		return Outcome{}, Fail("%s is not hurt, and does not need to eat.", w.NameOf(performer))
	}

	amount := foodHealing
	if traits, ok := w.Traits.Get(performer); ok && traits.Has(world.TraitBigEater) {
		amount += bigEaterFoodBonus
	}
	w.Destroy(food)
	w.Healths.Update(performer, func(h *world.Health) { h.Restore(amount) })
	return succeed("%s ate a food ration and recovered some health.", w.NameOf(performer))
}

func openContainer(ctx Context, performer, container world.Entity) (Outcome, error) {
	w := ctx.World
	isChest := w.FortunaChests.Has(container)
	if !isChest && !w.Containers.Has(container) {
		return Outcome{}, Fail("%s can not be opened.", w.NameOf(container))
	}
	dest, err := approachObject(ctx, performer, container)
	if err != nil {
		return Outcome{}, err
	}
	if err := moveTo(ctx, performer, dest); err != nil {
		return Outcome{}, err
	}

	if isChest {
		w.Destroy(container)
		outcome, _ := succeed("%s opened the fortuna chest and found the item that they desired the most.", w.NameOf(performer))
		outcome.Event = EventWin
		return outcome, nil
	}

	c, _ := w.Containers.Get(container)
	pos, _ := w.Positions.Get(container)
	containerName := w.NameOf(container)
	w.Destroy(container)

	if len(c.Items) == 0 {
		return succeed("%s opened %s, but it was empty.", w.NameOf(performer), containerName)
	}
	var names []string
	for _, kind := range c.Items {
		item := w.SpawnItem(kind, pos)
		names = append(names, w.IndefiniteName(item))
	}
	return succeed("%s opened %s and found %s.", w.NameOf(performer), containerName, joinList(names))
}

// joinList joins names as "a, b and c".
func joinList(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	result := names[0]
	for _, n := range names[1 : len(names)-1] {
		result += ", " + n
	}
	return result + " and " + names[len(names)-1]
}
