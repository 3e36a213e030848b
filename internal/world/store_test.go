package world

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestStore_SetGetRemove(t *testing.T) {
	s := NewStore[Health]()

	s.Set(3, Health{Value: 0.5})
	s.Set(1, Health{Value: 1})
	s.Set(3, Health{Value: 0.25})

	got, ok := s.Get(3)
	testutil.AssertEqual(t, "found", ok, true)
	testutil.AssertEqual(t, "value", got.Value, 0.25)
	testutil.AssertEqual(t, "len", s.Len(), 2)
	assertEntities(t, "entities", s.Entities(), []Entity{1, 3})

	s.Remove(3)
	s.Remove(42)
	testutil.AssertEqual(t, "has removed", s.Has(3), false)
	assertEntities(t, "entities after remove", s.Entities(), []Entity{1})
}

func TestStore_Update(t *testing.T) {
	tests := map[string]struct {
		entity Entity
		expOk  bool
		expVal int
	}{
		"existing component": {entity: 1, expOk: true, expVal: 3},
		"missing component":  {entity: 2, expOk: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewStore[Stamina]()
			s.Set(1, Stamina{Value: 5, Max: 5})

			ok := s.Update(tt.entity, func(st *Stamina) { st.Value -= 2 })
			testutil.AssertEqual(t, "ok", ok, tt.expOk)

			got, _ := s.Get(tt.entity)
			testutil.AssertEqual(t, "value", got.Value, tt.expVal)
		})
	}
}

func TestStore_JSON(t *testing.T) {
	s := NewStore[Item]()
	s.Set(7, Item{Kind: ItemCrowbar})
	s.Set(2, Item{Kind: ItemMedkit})

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded := NewStore[Item]()
	if err := json.Unmarshal(data, loaded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertEntities(t, "entities", loaded.Entities(), []Entity{2, 7})
	got, _ := loaded.Get(7)
	testutil.AssertEqual(t, "kind", got.Kind, ItemCrowbar)
}

func TestStore_UnmarshalNull(t *testing.T) {
	s := NewStore[Item]()
	if err := json.Unmarshal([]byte("null"), s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Set(1, Item{Kind: ItemBat})
	testutil.AssertEqual(t, "len", s.Len(), 1)
}

func assertEntities(t *testing.T, name string, got, want []Entity) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Errorf("%s: got %v, want %v", name, got, want)
	}
}
