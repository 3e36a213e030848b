package action

import (
	"github.com/pixil98/go-crew/internal/world"
)

func trade(ctx Context, performer, shopkeeper world.Entity) (Outcome, error) {
	w := ctx.World
	if !w.Shopkeepers.Has(shopkeeper) {
		return Outcome{}, Fail("%s is not selling anything.", w.NameOf(shopkeeper))
	}
	if !w.IsAlive(shopkeeper) {
		return Outcome{}, Fail("%s is dead.", w.NameOf(shopkeeper))
	}
	if w.Trading.Has(performer) {
		return Outcome{}, Fail("%s is already trading.", w.NameOf(performer))
	}
	dest, err := approachActor(ctx, performer, shopkeeper)
	if err != nil {
		return Outcome{}, err
	}
	if err := moveTo(ctx, performer, dest); err != nil {
		return Outcome{}, err
	}
	faceTowards(ctx, performer, shopkeeper)

	w.Trading.Set(performer, world.Trading{Shopkeeper: shopkeeper})
	return succeed("%s started trading with %s.", w.NameOf(performer), w.NameOf(shopkeeper))
}

// shopOf returns the shopkeeper performer is trading with.
func shopOf(w *world.World, performer world.Entity) (world.Entity, world.Shopkeeper, error) {
	t, ok := w.Trading.Get(performer)
	if !ok {
		return 0, world.Shopkeeper{}, Fail("%s is not trading with anyone.", w.NameOf(performer))
	}
	shop, ok := w.Shopkeepers.Get(t.Shopkeeper)
	if !ok {
		return 0, world.Shopkeeper{}, Fail("%s is no longer selling anything.", w.NameOf(t.Shopkeeper))
	}
	return t.Shopkeeper, shop, nil
}

func buy(ctx Context, performer world.Entity, a Buy) (Outcome, error) {
	w := ctx.World
	shopkeeper, shop, err := shopOf(w, performer)
	if err != nil {
		return Outcome{}, err
	}
	if a.Amount < 1 {
		return Outcome{}, Fail("%s can not buy nothing.", w.NameOf(performer))
	}
	idx := -1
	for i, s := range shop.Stock {
		if s.Kind == a.Kind {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Outcome{}, Fail("%s is not selling any %s.", w.NameOf(shopkeeper), a.Kind.Noun().Plural)
	}
	stock := shop.Stock[idx]
	if stock.Quantity >= 0 && stock.Quantity < a.Amount {
		return Outcome{}, Fail("%s does not have %s in stock.", w.NameOf(shopkeeper), world.CountedNoun(a.Amount, a.Kind.Noun()))
	}
	crew, ok := w.CrewOf(performer)
	if !ok {
		return Outcome{}, Fail("%s is not part of a crew.", w.NameOf(performer))
	}
	cost := stock.Price * a.Amount
	if w.Points(crew) < cost {
		return Outcome{}, Fail("The crew can not afford %s.", world.CountedNoun(a.Amount, a.Kind.Noun()))
	}

	w.Crews.Update(crew, func(c *world.Crew) { c.Points -= cost })
	if stock.Quantity >= 0 {
		shop.Stock[idx].Quantity -= a.Amount
		w.Shopkeepers.Set(shopkeeper, shop)
	}
	for range a.Amount {
		w.SpawnHeldItem(a.Kind, performer)
	}
	return succeed("%s bought %s.", w.NameOf(performer), world.CountedNoun(a.Amount, a.Kind.Noun()))
}

func sell(ctx Context, performer world.Entity, items []world.Entity) (Outcome, error) {
	w := ctx.World
	shopkeeper, _, err := shopOf(w, performer)
	if err != nil {
		return Outcome{}, err
	}
	if len(items) == 0 {
		return Outcome{}, Fail("%s has nothing to sell.", w.NameOf(performer))
	}
	crew, ok := w.CrewOf(performer)
	if !ok {
		return Outcome{}, Fail("%s is not part of a crew.", w.NameOf(performer))
	}
	value := 0
	for _, item := range items {
		held, ok := w.Held.Get(item)
		if !ok || held.Holder != performer {
			return Outcome{}, Fail("%s is not carrying %s.", w.NameOf(performer), w.NameOf(item))
		}
		price, ok := w.Prices.Get(item)
		if !ok {
			return Outcome{}, Fail("%s will not buy %s.", w.NameOf(shopkeeper), w.NameOf(item))
		}
		value += price.SellValue()
	}

	var names []string
	for _, item := range items {
		names = append(names, w.IndefiniteName(item))
		w.Destroy(item)
	}
	w.Crews.Update(crew, func(c *world.Crew) { c.Points += value })
	return succeed("%s sold %s for %d points.", w.NameOf(performer), joinList(names), value)
}

func exitTrade(ctx Context, performer world.Entity) (Outcome, error) {
	w := ctx.World
	t, ok := w.Trading.Get(performer)
	if !ok {
		return Outcome{}, Fail("%s is not trading with anyone.", w.NameOf(performer))
	}
	w.Trading.Remove(performer)
	return succeed("%s stopped trading with %s.", w.NameOf(performer), w.NameOf(t.Shopkeeper))
}
