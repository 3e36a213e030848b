package command

import (
	"strconv"
	"strings"

	"github.com/pixil98/go-crew/internal/action"
	"github.com/pixil98/go-crew/internal/world"
)

// amount splits a leading count off in. Without one the count is 1.
func amount(in input) (int, input) {
	first, rest, found := strings.Cut(in.raw(), " ")
	if !found {
		return 1, in
	}
	n, err := strconv.Atoi(first)
	if err != nil {
		return 1, in
	}
	return n, input{text: rest}
}

func matchBuy(s *scope, in input) (Result, bool, error) {
	rest, ok := in.literal("buy")
	if !ok {
		return nil, false, nil
	}
	n, itemIn := amount(rest)
	if itemIn.empty() {
		return reject("Buy what?")
	}
	if n < 1 {
		return reject("%s can not buy nothing.", s.name(s.actor))
	}

	t, _ := s.w.Trading.Get(s.actor)
	shop, _ := s.w.Shopkeepers.Get(t.Shopkeeper)
	for _, stock := range shop.Stock {
		noun := stock.Kind.Noun()
		if strings.EqualFold(noun.Singular, itemIn.name()) || strings.EqualFold(noun.Plural, itemIn.name()) {
			return actionFor(action.Buy{Kind: stock.Kind, Amount: n}, TargetControlled)
		}
	}
	return reject("There is no %s for sale here.", itemIn.name())
}

func matchSell(s *scope, in input) (Result, bool, error) {
	rest, ok := in.literal("sell")
	if !ok {
		return nil, false, nil
	}

	all := false
	if r, ok := rest.literal("all"); ok {
		all, rest = true, r
	}
	n, itemIn := amount(rest)
	if itemIn.empty() {
		return reject("Sell what?")
	}

	items := s.filter(itemIn.name(), s.inventory())
	if len(items) == 0 {
		return reject("%s does not have any %s.", s.name(s.actor), itemIn.name())
	}
	if !all {
		if n > len(items) {
			return reject("%s does not have %s.", s.name(s.actor), countedOf(s.w, items[0], n))
		}
		items = items[:n]
	}
	for _, item := range items {
		if !s.w.Prices.Has(item) {
			return reject("%s can not be sold.", s.name(item))
		}
	}
	return actionFor(action.Sell{Items: items}, TargetControlled)
}

func matchExit(_ *scope, in input) (Result, bool, error) {
	rest, ok := in.literals("exit", "leave")
	if !ok || !rest.empty() {
		return nil, false, nil
	}
	return actionFor(action.ExitTrade{}, TargetControlled)
}

func countedOf(w *world.World, item world.Entity, n int) string {
	noun, _ := w.Nouns.Get(item)
	return world.CountedNoun(n, noun)
}
