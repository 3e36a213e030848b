package action

import (
	"testing"

	"github.com/pixil98/go-crew/internal/world"
	"github.com/pixil98/go-testutil"
)

func TestRecruit(t *testing.T) {
	tests := map[string]struct {
		crewSize int
		expErr   string
	}{
		"room in the crew": {crewSize: 1},
		"crew is full":     {crewSize: CrewLimit, expErr: "not enough room"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture("")
			for i := 1; i < tt.crewSize; i++ {
				f.w.SpawnCrewMember(f.crew, world.CharacterProfile{Name: "Extra"}, world.Pos{Area: f.ship, Coord: 1})
			}
			plum := f.w.SpawnCharacter(world.CharacterProfile{Name: "Plum"}, world.Pos{Area: f.room, Coord: 4})
			f.w.Recruitables.Set(plum, world.Recruitable{})

			outcome, err := f.perform(t, Recruit{Target: plum})

			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				testutil.AssertEqual(t, "member", f.w.CrewMembers.Has(plum), false)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "message", messages(outcome), "Plum joined the crew!")
			crew, _ := f.w.CrewOf(plum)
			testutil.AssertEqual(t, "crew", crew, f.crew)
		})
	}
}

func TestTalk_RevealsName(t *testing.T) {
	f := newFixture("")
	plum := f.w.SpawnCharacter(world.CharacterProfile{Name: "Plum"}, world.Pos{Area: f.room, Coord: 6})
	f.w.Talkers.Set(plum, world.Talker{Lines: []string{"Hello there."}})

	outcome, err := f.perform(t, Talk{Target: plum})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "message", messages(outcome), "Mint talked to Plum.")
	testutil.AssertEqual(t, "name", f.w.NameOf(plum), "Plum")
	if outcome.Dialogue == nil {
		t.Fatal("expected dialogue")
	}
	testutil.AssertEqual(t, "speaker", outcome.Dialogue.Speaker, "Plum")
	testutil.AssertEqual(t, "line", outcome.Dialogue.Lines[0], "Hello there.")
}

func TestTameAndName(t *testing.T) {
	f := newFixture("")
	goblin := f.w.SpawnCreature(world.CreatureGoblin, world.Pos{Area: f.room, Coord: 4}, true)

	_, err := f.perform(t, Tame{Target: goblin})
	testutil.AssertErrorContains(t, err, "needs a food ration")

	_, err = f.perform(t, Name{Target: goblin, Name: "Bob"})
	testutil.AssertErrorContains(t, err, "can not be named")

	f.w.SpawnHeldItem(world.ItemFoodRation, f.mint)
	if _, err := f.perform(t, Tame{Target: goblin}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "hostile", f.w.Hostiles.Has(goblin), false)
	testutil.AssertEqual(t, "wandering", f.w.Wanderers.Has(goblin), false)
	testutil.AssertEqual(t, "food eaten", f.w.CountHeld(f.mint, world.ItemFoodRation), 0)

	outcome, err := f.perform(t, Name{Target: goblin, Name: "Bob"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "message", messages(outcome), `Mint named the goblin "Bob".`)
	testutil.AssertEqual(t, "name", f.w.NameOf(goblin), "Bob")
}

func TestTame_Aggressive(t *testing.T) {
	f := newFixture("")
	goblin := f.w.SpawnCreature(world.CreatureGoblin, world.Pos{Area: f.room, Coord: 4}, false)
	f.w.Hostiles.Set(goblin, world.Hostile{Aggressive: true})
	f.w.SpawnHeldItem(world.ItemFoodRation, f.mint)

	_, err := f.perform(t, Tame{Target: goblin})
	testutil.AssertErrorContains(t, err, "too aggressive")
	testutil.AssertEqual(t, "food kept", f.w.CountHeld(f.mint, world.ItemFoodRation), 1)
}

func TestTellWaitAndFollow(t *testing.T) {
	f := newFixture("")
	mack := f.w.SpawnCrewMember(f.crew, world.CharacterProfile{Name: "Mack"}, world.Pos{Area: f.room, Coord: 3})

	if _, err := f.perform(t, TellWait{Target: mack}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "waiting", f.w.Waiting.Has(mack), true)

	_, err := f.perform(t, TellWait{Target: mack})
	testutil.AssertErrorContains(t, err, "already waiting")

	outcome, err := f.perform(t, TellFollow{Target: mack})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "message", messages(outcome), "Mack will follow Mint.")
	testutil.AssertEqual(t, "waiting", f.w.Waiting.Has(mack), false)
}

func TestTrade(t *testing.T) {
	f := newFixture("")
	keeper := f.w.SpawnCharacter(world.CharacterProfile{Name: "Cerulean"}, world.Pos{Area: f.room, Coord: 7})
	f.w.Shopkeepers.Set(keeper, world.Shopkeeper{Stock: []world.StockItem{
		{Kind: world.ItemFuelCan, Price: 3500, Quantity: -1},
		{Kind: world.ItemMedkit, Price: 4000, Quantity: 1},
	}})

	_, err := f.perform(t, Buy{Kind: world.ItemFuelCan, Amount: 1})
	testutil.AssertErrorContains(t, err, "not trading")

	if _, err := f.perform(t, Trade{Shopkeeper: keeper}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name      string
		act       Action
		expErr    string
		expPoints int
	}{
		{name: "buy fuel", act: Buy{Kind: world.ItemFuelCan, Amount: 1}, expPoints: 1500},
		{name: "too expensive", act: Buy{Kind: world.ItemMedkit, Amount: 1}, expErr: "can not afford", expPoints: 1500},
		{name: "not in stock", act: Buy{Kind: world.ItemSword, Amount: 1}, expErr: "not selling any swords", expPoints: 1500},
	}
	for _, tt := range tests {
		_, err := f.perform(t, tt.act)
		if tt.expErr != "" {
			testutil.AssertErrorContains(t, err, tt.expErr)
		} else if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		testutil.AssertEqual(t, tt.name+" points", f.w.Points(f.crew), tt.expPoints)
	}

	can, _ := f.w.HeldOfKind(f.mint, world.ItemFuelCan)
	outcome, err := f.perform(t, Sell{Items: []world.Entity{can}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "message", messages(outcome), "Mint sold a fuel can for 1750 points.")
	testutil.AssertEqual(t, "points after sale", f.w.Points(f.crew), 3250)

	if _, err := f.perform(t, ExitTrade{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "trading", f.w.Trading.Has(f.mint), false)
}
