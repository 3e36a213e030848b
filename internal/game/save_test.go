package game

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-crew/internal/storage"
	"github.com/pixil98/go-crew/internal/view"
	"github.com/pixil98/go-crew/internal/world"
	"github.com/pixil98/go-testutil"
)

func TestSaveLoad(t *testing.T) {
	content := testContent(category("Forest", "forest"))
	g := newTestGame(t, Config{Locations: 1}, content)

	data, err := g.Save()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loaded, err := Load(data, content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "id", loaded.State().Id, g.State().Id)
	testutil.AssertEqual(t, "phase", loaded.Phase().Kind, g.Phase().Kind)
	testutil.AssertEqual(t, "controlled", loaded.State().Controlled, g.State().Controlled)
	testutil.AssertEqual(t, "area", areaLabel(loaded, loaded.State().Controlled), "Forest")
	testutil.AssertEqual(t, "tracker", loaded.State().Tracker, g.State().Tracker)
	testutil.AssertEqual(t, "random", loaded.State().Rand.Uint64(), g.State().Rand.Uint64())

	for _, game := range []*Game{g, loaded} {
		if err := game.HandleInput("take all"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	testutil.AssertEqual(t, "same result",
		loaded.State().World.CountHeld(loaded.State().Controlled, world.ItemFuelCan),
		g.State().World.CountHeld(g.State().Controlled, world.ItemFuelCan))
}

func TestLoad_Errors(t *testing.T) {
	content := testContent(category("Forest", "forest"))
	g := newTestGame(t, Config{Locations: 1}, content)
	data, err := g.Save()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := map[string]struct {
		field     string
		value     string
		expErr    string
		expRecomm string
		expPhase  bool
	}{
		"older minor": {
			field: "version",
			value: `{"major":2,"minor":0}`,
		},
		"newer minor": {
			field:     "version",
			value:     `{"major":2,"minor":9}`,
			expErr:    "save file version 2.9 is not supported by version 2.1",
			expRecomm: "use a newer version of the game to load this save",
		},
		"newer major": {
			field:     "version",
			value:     `{"major":3,"minor":0}`,
			expErr:    "save file version 3.0",
			expRecomm: "use a newer version of the game to load this save",
		},
		"older major": {
			field:     "version",
			value:     `{"major":1,"minor":4}`,
			expErr:    "save file version 1.4",
			expRecomm: "the save is too old, start a new game",
		},
		"invalid phase": {
			field:    "phase",
			value:    `{"kind":"invalid"}`,
			expErr:   "invalid game phase",
			expPhase: true,
		},
		"choice without options": {
			field:    "phase",
			value:    `{"kind":"choose_location"}`,
			expErr:   "invalid game phase",
			expPhase: true,
		},
		"broken state": {
			field:  "state",
			value:  `{"world":{},"rand":"","ship":1}`,
			expErr: "world is missing its next entity id",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc := map[string]json.RawMessage{}
			if err := json.Unmarshal(data, &doc); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			doc[tt.field] = json.RawMessage(tt.value)
			edited, err := json.Marshal(doc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			_, err = Load(edited, content)
			if tt.expErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			testutil.AssertErrorContains(t, err, tt.expErr)

			var verErr *VersionError
			testutil.AssertEqual(t, "version error", errors.As(err, &verErr), tt.expRecomm != "")
			if verErr != nil {
				testutil.AssertEqual(t, "recommendation", verErr.Recommendation(), tt.expRecomm)
			}
			testutil.AssertEqual(t, "phase error", errors.Is(err, ErrInvalidPhase), tt.expPhase)
		})
	}
}

func TestSaveStores(t *testing.T) {
	tests := map[string]struct {
		open func(t *testing.T) storage.SaveStore
	}{
		"file": {
			open: func(t *testing.T) storage.SaveStore {
				s, err := storage.NewFileSaveStore(t.TempDir())
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return s
			},
		},
		"sqlite": {
			open: func(t *testing.T) storage.SaveStore {
				s, err := storage.OpenSqliteSaveStore(filepath.Join(t.TempDir(), "saves.db"))
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return s
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			saves := tt.open(t)
			defer saves.Close()

			content := testContent(category("Forest", "forest"))
			g := newTestGame(t, Config{Locations: 1}, content)
			if err := SaveTo(ctx, saves, "slot-1", g); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			loaded, err := LoadFrom(ctx, saves, "slot-1", content)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "id", loaded.State().Id, g.State().Id)
			frames := loaded.Frames()
			testutil.AssertEqual(t, "resumed frames", len(frames), 1)
			testutil.AssertEqual(t, "resumed frame", frames[0].Kind, view.KindArea)

			_, err = LoadFrom(ctx, saves, "missing", content)
			if !errors.Is(err, storage.ErrSlotNotFound) {
				t.Errorf("expected ErrSlotNotFound, got %v", err)
			}
		})
	}
}
