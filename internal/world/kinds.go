package world

import (
	"fmt"
	"strings"
)

// ItemKind identifies a type of item.
type ItemKind string

const (
	ItemFuelCan     ItemKind = "fuel_can"
	ItemFoodRation  ItemKind = "food_ration"
	ItemCrowbar     ItemKind = "crowbar"
	ItemBlowtorch   ItemKind = "blowtorch"
	ItemKeycard     ItemKind = "keycard"
	ItemMedkit      ItemKind = "medkit"
	ItemKnife       ItemKind = "knife"
	ItemBat         ItemKind = "bat"
	ItemSword       ItemKind = "sword"
	ItemAncientCoin ItemKind = "ancient_coin"
)

type itemInfo struct {
	symbol   rune
	singular string
	plural   string
	price    int
	damage   float64
}

var itemKinds = map[ItemKind]itemInfo{
	ItemFuelCan:     {symbol: 'f', singular: "fuel can", plural: "fuel cans", price: 3500},
	ItemFoodRation:  {symbol: '%', singular: "food ration", plural: "food rations", price: 500},
	ItemCrowbar:     {symbol: 'c', singular: "crowbar", plural: "crowbars", price: 2000, damage: 3},
	ItemBlowtorch:   {symbol: 'b', singular: "blowtorch", plural: "blowtorches", price: 6000},
	ItemKeycard:     {symbol: 'k', singular: "keycard", plural: "keycards", price: 3000},
	ItemMedkit:      {symbol: '+', singular: "medkit", plural: "medkits", price: 4000},
	ItemKnife:       {symbol: 'K', singular: "knife", plural: "knives", price: 300, damage: 3},
	ItemBat:         {symbol: 'B', singular: "bat", plural: "bats", price: 1000, damage: 4},
	ItemSword:       {symbol: 's', singular: "sword", plural: "swords", price: 5000, damage: 5},
	ItemAncientCoin: {symbol: 'o', singular: "ancient coin", plural: "ancient coins", price: 500},
}

// ParseItemKind converts an asset identifier into an ItemKind.
func ParseItemKind(s string) (ItemKind, error) {
	k := ItemKind(strings.ToLower(s))
	if _, ok := itemKinds[k]; !ok {
		return "", fmt.Errorf("unknown item %q", s)
	}
	return k, nil
}

// Symbol is the character used for the item in area views.
func (k ItemKind) Symbol() rune {
	return itemKinds[k].symbol
}

func (k ItemKind) Noun() Noun {
	info := itemKinds[k]
	return Noun{Singular: info.singular, Plural: info.plural}
}

// Price is zero for items that cannot be traded.
func (k ItemKind) Price() int {
	return itemKinds[k].price
}

// WeaponDamage is zero for items that are not weapons.
func (k ItemKind) WeaponDamage() float64 {
	return itemKinds[k].damage
}

// Barehanded is the damage dealt without a wielded weapon.
const Barehanded = 2.0

// CreatureKind identifies a type of creature.
type CreatureKind string

const (
	CreatureGoblin        CreatureKind = "goblin"
	CreatureEyesaur       CreatureKind = "eyesaur"
	CreatureAzureclops    CreatureKind = "azureclops"
	CreatureScarvie       CreatureKind = "scarvie"
	CreatureVoraciousFrog CreatureKind = "voracious_frog"
	CreatureBloodMantis   CreatureKind = "blood_mantis"
)

type creatureInfo struct {
	symbol     rune
	singular   string
	plural     string
	stats      Stats
	aggressive bool
	tameable   bool
}

var creatureKinds = map[CreatureKind]creatureInfo{
	CreatureGoblin: {
		symbol:   'G',
		singular: "goblin", plural: "goblins",
		stats:    Stats{Strength: 2, Endurance: 4, Agility: 10, Luck: 2},
		tameable: true,
	},
	CreatureEyesaur: {
		symbol:   'E',
		singular: "eyesaur", plural: "eyesaurs",
		stats:    Stats{Strength: 7, Endurance: 7, Agility: 4, Luck: 0},
		tameable: true,
	},
	CreatureAzureclops: {
		symbol:   'Z',
		singular: "azureclops", plural: "azureclopses",
		stats:      Stats{Strength: 15, Endurance: 10, Agility: 4, Luck: 2},
		aggressive: true,
	},
	CreatureScarvie: {
		symbol:   'S',
		singular: "scarvie", plural: "scarvies",
		stats:      Stats{Strength: 3, Endurance: 2, Agility: 6, Luck: 0},
		aggressive: true,
	},
	CreatureVoraciousFrog: {
		symbol:   'F',
		singular: "voracious frog", plural: "voracious frogs",
		stats:      Stats{Strength: 8, Endurance: 6, Agility: 3, Luck: 0},
		aggressive: true,
	},
	CreatureBloodMantis: {
		symbol:   'M',
		singular: "blood mantis", plural: "blood mantes",
		stats:      Stats{Strength: 15, Endurance: 5, Agility: 10, Luck: 5},
		aggressive: true,
	},
}

// ParseCreatureKind converts an asset identifier into a CreatureKind.
func ParseCreatureKind(s string) (CreatureKind, error) {
	k := CreatureKind(strings.ToLower(s))
	if _, ok := creatureKinds[k]; !ok {
		return "", fmt.Errorf("unknown creature %q", s)
	}
	return k, nil
}

func (k CreatureKind) Symbol() rune {
	return creatureKinds[k].symbol
}

func (k CreatureKind) Noun() Noun {
	info := creatureKinds[k]
	return Noun{Singular: info.singular, Plural: info.plural}
}

func (k CreatureKind) Stats() Stats {
	return creatureKinds[k].stats
}

func (k CreatureKind) Aggressive() bool {
	return creatureKinds[k].aggressive
}

func (k CreatureKind) Tameable() bool {
	return creatureKinds[k].tameable
}
