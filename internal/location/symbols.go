package location

import (
	"fmt"

	"github.com/pixil98/go-crew/internal/storage"
	"github.com/pixil98/go-crew/internal/world"
	"github.com/pixil98/go-errors"
)

type SymbolType string

const (
	SymbolEntry        SymbolType = "entry"
	SymbolItem         SymbolType = "item"
	SymbolLoot         SymbolType = "loot"
	SymbolCreature     SymbolType = "creature"
	SymbolDoor         SymbolType = "door"
	SymbolContainer    SymbolType = "container"
	SymbolCharacter    SymbolType = "character"
	SymbolShopkeeper   SymbolType = "shopkeeper"
	SymbolFortunaChest SymbolType = "fortuna_chest"
)

// SymbolSpec is what a single template character places at its coordinate.
// Which fields apply depends on Type.
type SymbolSpec struct {
	Type SymbolType `json:"type"`

	Item world.ItemKind `json:"item,omitempty"`

	Creature  world.CreatureKind `json:"creature,omitempty"`
	Wandering bool               `json:"wandering,omitempty"`

	Pair     string         `json:"pair,omitempty"`
	DoorKind world.DoorKind `json:"door_kind,omitempty"`

	// Noun names a container, e.g. "crate".
	Noun  string                    `json:"noun,omitempty"`
	Items []world.ItemKind          `json:"items,omitempty"`
	Loot  []storage.Ref[*LootTable] `json:"loot,omitempty"`

	Profile     *world.CharacterProfile `json:"profile,omitempty"`
	Recruitable bool                    `json:"recruitable,omitempty"`
	Lines       []string                `json:"lines,omitempty"`
	Stock       []world.StockItem       `json:"stock,omitempty"`
}

func (s SymbolSpec) Validate() error {
	el := errors.NewErrorList()

	switch s.Type {
	case SymbolEntry, SymbolFortunaChest:
	case SymbolItem:
		if _, err := world.ParseItemKind(string(s.Item)); err != nil {
			el.Add(err)
		}
	case SymbolLoot:
		if len(s.Loot) != 1 {
			el.Add(fmt.Errorf("loot symbols need exactly one loot table"))
		}
		for _, l := range s.Loot {
			el.Add(l.Validate())
		}
	case SymbolCreature:
		if _, err := world.ParseCreatureKind(string(s.Creature)); err != nil {
			el.Add(err)
		}
	case SymbolDoor:
		if s.Pair == "" {
			el.Add(fmt.Errorf("pair is required"))
		}
		switch s.DoorKind {
		case "", world.DoorKindDoor, world.DoorKindPath, world.DoorKindHatch, world.DoorKindDoorway:
		default:
			el.Add(fmt.Errorf("invalid door_kind %q", s.DoorKind))
		}
	case SymbolContainer:
		for _, item := range s.Items {
			if _, err := world.ParseItemKind(string(item)); err != nil {
				el.Add(err)
			}
		}
		for _, l := range s.Loot {
			el.Add(l.Validate())
		}
	case SymbolCharacter, SymbolShopkeeper:
		if s.Profile == nil || s.Profile.Name == "" {
			el.Add(fmt.Errorf("profile with a name is required"))
		}
		if s.Type == SymbolShopkeeper && len(s.Stock) == 0 {
			el.Add(fmt.Errorf("shopkeepers need stock"))
		}
		for _, st := range s.Stock {
			if _, err := world.ParseItemKind(string(st.Kind)); err != nil {
				el.Add(err)
			}
		}
	case "":
		el.Add(fmt.Errorf("type is required"))
	default:
		el.Add(fmt.Errorf("invalid type %q", s.Type))
	}

	return el.Err()
}

// builtinSymbols are available in every template without being declared.
// Template symbols with the same character take precedence.
func builtinSymbols() map[rune]SymbolSpec {
	symbols := map[rune]SymbolSpec{
		'v': {Type: SymbolEntry},
	}
	for _, kind := range []world.ItemKind{
		world.ItemFuelCan, world.ItemFoodRation, world.ItemCrowbar, world.ItemBlowtorch,
		world.ItemKeycard, world.ItemMedkit, world.ItemKnife, world.ItemBat,
		world.ItemSword, world.ItemAncientCoin,
	} {
		symbols[kind.Symbol()] = SymbolSpec{Type: SymbolItem, Item: kind}
	}
	for _, kind := range []world.CreatureKind{
		world.CreatureGoblin, world.CreatureEyesaur, world.CreatureAzureclops,
		world.CreatureScarvie, world.CreatureVoraciousFrog, world.CreatureBloodMantis,
	} {
		symbols[kind.Symbol()] = SymbolSpec{Type: SymbolCreature, Creature: kind}
	}
	return symbols
}
