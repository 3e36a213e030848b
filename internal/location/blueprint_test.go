package location

import (
	"maps"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/pixil98/go-crew/internal/storage"
	"github.com/pixil98/go-crew/internal/world"
	"github.com/pixil98/go-testutil"
)

type mapStore[T storage.ValidatingSpec] map[string]T

func (m mapStore[T]) Get(id string) T      { return m[id] }
func (m mapStore[T]) GetAll() map[string]T { return m }
func (m mapStore[T]) Ids() []string {
	ids := slices.Collect(maps.Keys(m))
	slices.Sort(ids)
	return ids
}

func twoRooms(objectsA, objectsB []string) *Template {
	return &Template{
		Areas: []AreaSpec{
			{Name: "Hall", Objects: objectsA},
			{Name: "Vault", Objects: objectsB},
		},
		DoorPairs: map[string]DoorPairSpec{
			"vault": {BlockType: world.BlockStuck},
		},
		Symbols: map[string]SymbolSpec{
			"^": {Type: SymbolDoor, Pair: "vault"},
			"x": {Type: SymbolContainer, Noun: "crate", Items: []world.ItemKind{world.ItemMedkit}, Loot: []storage.Ref[*LootTable]{storage.NewRef[*LootTable]("junk")}},
		},
	}
}

func testLoot() mapStore[*LootTable] {
	return mapStore[*LootTable]{
		"junk": {Entries: []LootEntry{{Item: world.ItemAncientCoin, Weight: 1}}},
	}
}

func TestCompile(t *testing.T) {
	tests := map[string]struct {
		template *Template
		expErr   string
	}{
		"valid": {
			template: twoRooms([]string{"v", "", "^f"}, []string{"^", "x"}),
		},
		"door placed once": {
			template: twoRooms([]string{"v", "", "^"}, []string{"", "x"}),
			expErr:   `door pair "vault" not fully placed`,
		},
		"door placed three times": {
			template: twoRooms([]string{"v^", "", "^"}, []string{"^", "x"}),
			expErr:   `door pair "vault" placed 3 times`,
		},
		"no entry": {
			template: twoRooms([]string{"", "", "^"}, []string{"^"}),
			expErr:   "location has no entry point",
		},
		"unknown symbol": {
			template: twoRooms([]string{"v", "?", "^"}, []string{"^"}),
			expErr:   `unknown symbol '?'`,
		},
		"unknown loot table": {
			template: &Template{
				Areas: []AreaSpec{{Name: "Hall", Objects: []string{"vl"}}},
				Symbols: map[string]SymbolSpec{
					"l": {Type: SymbolLoot, Loot: []storage.Ref[*LootTable]{storage.NewRef[*LootTable]("missing")}},
				},
			},
			expErr: `LootTable "missing" not found`,
		},
		"no areas": {
			template: &Template{},
			expErr:   "at least one area is required",
		},
		"symbol with unknown pair": {
			template: &Template{
				Areas:   []AreaSpec{{Name: "Hall", Objects: []string{"v"}}},
				Symbols: map[string]SymbolSpec{"^": {Type: SymbolDoor, Pair: "nowhere"}},
			},
			expErr: `unknown door pair "nowhere"`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			bp, err := Compile("test", tt.template, testLoot())

			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "areas", len(bp.areas), 2)
		})
	}
}

func TestSpawn_DoorPairsPointAtEachOther(t *testing.T) {
	bp, err := Compile("test", twoRooms([]string{"v", "", "^"}, []string{"^", "x"}), testLoot())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := world.NewWorld()
	ship := w.SpawnShip(3)

	bp.Spawn(w, rand.New(rand.NewPCG(1, 2)), ship)

	var placed []world.Entity
	for _, d := range w.Doors.Entities() {
		if pos, _ := w.Positions.Get(d); !pos.IsIn(ship) {
			if door, _ := w.Doors.Get(d); !door.Destination.IsIn(ship) {
				placed = append(placed, d)
			}
		}
	}
	testutil.AssertEqual(t, "doors", len(placed), 2)

	a, _ := w.Doors.Get(placed[0])
	b, _ := w.Doors.Get(placed[1])
	posA, _ := w.Positions.Get(placed[0])
	posB, _ := w.Positions.Get(placed[1])
	testutil.AssertEqual(t, "a leads to b", a.Destination, posB)
	testutil.AssertEqual(t, "b leads to a", b.Destination, posA)
	testutil.AssertEqual(t, "shared pair", a.Pair, b.Pair)

	block, ok := w.BlockOf(placed[0])
	testutil.AssertEqual(t, "blocked", ok, true)
	testutil.AssertEqual(t, "block", block, world.BlockStuck)
}

func TestSpawn_LinksShipAndFillsContainers(t *testing.T) {
	bp, err := Compile("test", twoRooms([]string{"v", "v", "^"}, []string{"^", "x"}), testLoot())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := world.NewWorld()
	ship := w.SpawnShip(3)

	entry := bp.Spawn(w, rand.New(rand.NewPCG(3, 4)), ship)

	s, _ := w.Ships.Get(ship)
	exit, ok := w.Doors.Get(s.Exit)
	if !ok {
		t.Fatal("expected the ship to have an exit")
	}
	testutil.AssertEqual(t, "exit leads to entry", exit.Destination, entry)
	testutil.AssertEqual(t, "entry coordinate", entry.Coord < 2, true)

	outside, ok := shipDoorIn(w, entry.Area)
	testutil.AssertEqual(t, "ship door placed", ok, true)
	testutil.AssertEqual(t, "ship door name", w.NameOf(outside), "the ship")

	containers := w.Containers.Entities()
	testutil.AssertEqual(t, "containers", len(containers), 1)
	c, _ := w.Containers.Get(containers[0])
	testutil.AssertEqual(t, "container items", len(c.Items), 2)
	testutil.AssertEqual(t, "fixed item", c.Items[0], world.ItemMedkit)
	testutil.AssertEqual(t, "loot item", c.Items[1], world.ItemAncientCoin)
}

// shipDoorIn finds the door in area leading into the ship.
func shipDoorIn(w *world.World, area world.Entity) (world.Entity, bool) {
	for _, d := range w.DoorsInArea(area) {
		door, _ := w.Doors.Get(d)
		if w.Ships.Has(door.Destination.Area) {
			return d, true
		}
	}
	return 0, false
}

func TestDespawn(t *testing.T) {
	bp, err := Compile("test", twoRooms([]string{"vG", "f", "^"}, []string{"^", "x"}), testLoot())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := world.NewWorld()
	ship := w.SpawnShip(3)
	crew := w.SpawnCrew(100)
	inside := w.SpawnCrewMember(crew, world.CharacterProfile{Name: "Mint"}, world.Pos{Area: ship, Coord: 1})
	kept := w.SpawnHeldItem(world.ItemCrowbar, inside)
	cargo := w.SpawnItem(world.ItemFuelCan, world.Pos{Area: ship, Coord: 2})

	entry := bp.Spawn(w, rand.New(rand.NewPCG(5, 6)), ship)
	outside := w.SpawnCrewMember(crew, world.CharacterProfile{Name: "Mack"}, entry)
	lost := w.SpawnHeldItem(world.ItemSword, outside)

	Despawn(w, ship)

	for name, tt := range map[string]struct {
		e   world.Entity
		exp bool
	}{
		"ship":         {e: ship, exp: true},
		"crew":         {e: crew, exp: true},
		"crew in ship": {e: inside, exp: true},
		"held in ship": {e: kept, exp: true},
		"cargo":        {e: cargo, exp: true},
		"crew outside": {e: outside, exp: false},
		"held outside": {e: lost, exp: false},
	} {
		testutil.AssertEqual(t, name, w.Exists(tt.e), tt.exp)
	}

	s, _ := w.Ships.Get(ship)
	testutil.AssertEqual(t, "exit cleared", s.Exit, world.Entity(0))
	testutil.AssertEqual(t, "doors", w.Doors.Len(), 0)
	testutil.AssertEqual(t, "creatures", w.Creatures.Len(), 0)
	testutil.AssertEqual(t, "areas", w.Areas.Len(), 1)
}
