package location

import (
	"fmt"
	"math/rand/v2"

	"github.com/pixil98/go-crew/internal/world"
	"github.com/pixil98/go-errors"
)

// LootTable is a weighted list of items. Each draw picks one entry.
type LootTable struct {
	Entries []LootEntry `json:"entries"`
}

type LootEntry struct {
	Item   world.ItemKind `json:"item"`
	Weight int            `json:"weight"`
}

func (l *LootTable) Validate() error {
	el := errors.NewErrorList()

	if len(l.Entries) == 0 {
		el.Add(fmt.Errorf("at least one entry is required"))
	}
	for i, e := range l.Entries {
		if _, err := world.ParseItemKind(string(e.Item)); err != nil {
			el.Add(fmt.Errorf("entry %d: %w", i, err))
		}
		if e.Weight <= 0 {
			el.Add(fmt.Errorf("entry %d: weight must be positive", i))
		}
	}

	return el.Err()
}

// Pick draws one item.
func (l *LootTable) Pick(rng *rand.Rand) world.ItemKind {
	total := 0
	for _, e := range l.Entries {
		total += e.Weight
	}
	roll := rng.IntN(total)
	for _, e := range l.Entries {
		if roll < e.Weight {
			return e.Item
		}
		roll -= e.Weight
	}
	return l.Entries[len(l.Entries)-1].Item
}
