package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

func TestSaveStores(t *testing.T) {
	tests := map[string]struct {
		open func(t *testing.T) SaveStore
	}{
		"file": {
			open: func(t *testing.T) SaveStore {
				s, err := NewFileSaveStore(filepath.Join(t.TempDir(), "saves"))
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return s
			},
		},
		"sqlite": {
			open: func(t *testing.T) SaveStore {
				s, err := OpenSqliteSaveStore(filepath.Join(t.TempDir(), "saves.db"))
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
			store := tt.open(t)
			defer func() { _ = store.Close() }()

			_, err := store.Get(ctx, "slot-1")
			if !errors.Is(err, ErrSlotNotFound) {
				t.Fatalf("expected ErrSlotNotFound, got %v", err)
			}

			info := SaveInfo{Slot: "slot-1", GameID: "abc", Major: 2, Minor: 1}
			if err := store.Put(ctx, info, []byte(`{"first":true}`)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err := store.Put(ctx, info, []byte(`{"second":true}`)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			data, err := store.Get(ctx, "slot-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "data", string(data), `{"second":true}`)

			err = store.Put(ctx, SaveInfo{Slot: "../escape"}, []byte(`{}`))
			testutil.AssertErrorContains(t, err, "invalid save slot")
		})
	}
}

func TestSqliteSaveStore_Info(t *testing.T) {
	ctx := context.Background()
	store, err := OpenSqliteSaveStore(filepath.Join(t.TempDir(), "saves.db"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = store.Close() }()

	savedAt := time.UnixMilli(1700000000000).UTC()
	err = store.Put(ctx, SaveInfo{Slot: "main", GameID: "game-1", Major: 2, Minor: 1, SavedAt: savedAt}, []byte(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := store.Info(ctx, "main")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "game id", info.GameID, "game-1")
	testutil.AssertEqual(t, "major", info.Major, 2)
	testutil.AssertEqual(t, "minor", info.Minor, 1)
	testutil.AssertEqual(t, "saved at", info.SavedAt.Equal(savedAt), true)

	_, err = store.Info(ctx, "other")
	if !errors.Is(err, ErrSlotNotFound) {
		t.Fatalf("expected ErrSlotNotFound, got %v", err)
	}
}
