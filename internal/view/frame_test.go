package view

import (
	"strings"
	"testing"

	"github.com/pixil98/go-crew/internal/world"
	"github.com/pixil98/go-testutil"
)

func TestAreaFrame(t *testing.T) {
	w := world.NewWorld()
	room := w.SpawnArea("storage room", 5, "facility")
	other := w.SpawnArea("office", 3, "")
	crew := w.SpawnCrew(3500)
	mint := w.SpawnCrewMember(crew, world.CharacterProfile{Name: "Mint"}, world.Pos{Area: room, Coord: 0})
	w.Wield(w.SpawnHeldItem(world.ItemCrowbar, mint))
	w.SpawnHeldItem(world.ItemFuelCan, mint)
	w.SpawnItem(world.ItemMedkit, world.Pos{Area: room, Coord: 2})
	w.SpawnCreature(world.CreatureGoblin, world.Pos{Area: room, Coord: 3}, false)
	w.SpawnDoorPair(world.Pos{Area: room, Coord: 4}, world.Pos{Area: other, Coord: 0}, world.DoorKindDoor, world.DoorKindDoor, world.BlockSealed)

	f := AreaFrame(w, mint, []string{"mint looked around."})

	testutil.AssertEqual(t, "kind", f.Kind, KindArea)
	testutil.AssertEqual(t, "label", f.Area.Label, "storage room")
	testutil.AssertEqual(t, "objects", len(f.Area.Objects), 4)
	testutil.AssertEqual(t, "crew symbol", f.Area.Objects[0].Symbol, "M")
	testutil.AssertEqual(t, "door name", f.Area.Objects[3].Name, "door (sealed shut)")
	testutil.AssertEqual(t, "goblin faces left", f.Area.Objects[2].FacesLeft, true)
	testutil.AssertEqual(t, "points", f.Status.Points, 3500)
	testutil.AssertEqual(t, "wielded", f.Status.Wielded, "crowbar")
	testutil.AssertEqual(t, "inventory", strings.Join(f.Status.Inventory, ","), "fuel can")

	out := Render(f, 40)
	for _, exp := range []string{
		"Storage Room:",
		"|M +G^|",
		"G: goblin",
		"Crew points: 3,500",
		"Mint looked around.",
	} {
		if !strings.Contains(out, exp) {
			t.Errorf("render %q does not contain %q", out, exp)
		}
	}
}

func TestRender(t *testing.T) {
	tests := map[string]struct {
		frame Frame
		exp   []string
	}{
		"store": {
			frame: Frame{Kind: KindStore, Store: &StoreView{
				Shopkeeper: "the aftik",
				Points:     12000,
				Stock: []StockLine{
					{Item: "fuel can", Price: 3500, Quantity: -1},
					{Item: "medkit", Price: 4000, Quantity: 2},
				},
			}},
			exp: []string{"The aftik is selling:", "Fuel Can", "3,500 points | unlimited", "2 left", "Crew points: 12,000"},
		},
		"choice": {
			frame: ChoiceFrame([]string{"Forest", "Village"}, nil),
			exp:   []string{"Choose where to go next:", " 1. Forest", " 2. Village"},
		},
		"dialogue": {
			frame: DialogueFrame("plum", []string{"Hello."}, nil),
			exp:   []string{"Plum:", `"Hello."`},
		},
		"info": {
			frame: InfoFrame("Crew:\n  Mint: 100% health"),
			exp:   []string{"Crew:\n  Mint: 100% health\n"},
		},
		"ending": {
			frame: EndingFrame(true, "", []string{"the ship flew away."}),
			exp:   []string{"Congratulations, you won!", "The ship flew away."},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out := Render(tt.frame, 42)
			for _, exp := range tt.exp {
				if !strings.Contains(out, exp) {
					t.Errorf("render %q does not contain %q", out, exp)
				}
			}
		})
	}
}

func TestRender_WrapsMessages(t *testing.T) {
	out := Render(ErrorFrame("mint is blocked by the goblin and can not get past it without a fight."), 42)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	testutil.AssertEqual(t, "lines", len(lines), 2)
	for _, l := range lines {
		if len(l) > 42 {
			t.Errorf("line %q is wider than 42", l)
		}
	}
	testutil.AssertEqual(t, "capitalized", strings.HasPrefix(out, "Mint is blocked"), true)
}
