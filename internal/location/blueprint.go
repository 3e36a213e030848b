package location

import (
	"fmt"

	"github.com/pixil98/go-crew/internal/storage"
	"github.com/pixil98/go-crew/internal/world"
	"github.com/pixil98/go-errors"
)

// Blueprint is a template whose symbols, door pairs and loot tables have all
// been checked and resolved. Spawning a blueprint cannot fail.
type Blueprint struct {
	Name string

	areas []areaPlan
	pairs map[string]world.BlockType
}

type areaPlan struct {
	name       string
	background string
	cells      [][]SymbolSpec
}

// Compile checks t as a whole and resolves its loot tables from loot.
func Compile(name string, t *Template, loot storage.Storer[*LootTable]) (*Blueprint, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("location %q: %w", name, err)
	}

	symbols := builtinSymbols()
	for key, sym := range t.Symbols {
		symbols[[]rune(key)[0]] = sym
	}

	el := errors.NewErrorList()
	bp := &Blueprint{Name: name, pairs: map[string]world.BlockType{}}
	placed := map[string]int{}
	entries := 0

	for _, a := range t.Areas {
		plan := areaPlan{name: a.Name, background: a.Background}
		for coord, cell := range a.Objects {
			var specs []SymbolSpec
			for _, r := range cell {
				sym, ok := symbols[r]
				if !ok {
					el.Add(fmt.Errorf("area %q coordinate %d: unknown symbol %q", a.Name, coord, r))
					continue
				}
				switch sym.Type {
				case SymbolEntry:
					entries++
				case SymbolDoor:
					placed[sym.Pair]++
				}
				resolved, err := resolveLoot(sym, loot)
				if err != nil {
					el.Add(fmt.Errorf("area %q coordinate %d: %w", a.Name, coord, err))
					continue
				}
				specs = append(specs, resolved)
			}
			plan.cells = append(plan.cells, specs)
		}
		bp.areas = append(bp.areas, plan)
	}

	for id, pair := range t.DoorPairs {
		switch count := placed[id]; {
		case count == 1:
			el.Add(fmt.Errorf("door pair %q not fully placed", id))
		case count > 2:
			el.Add(fmt.Errorf("door pair %q placed %d times", id, count))
		}
		bp.pairs[id] = pair.BlockType
	}
	if entries == 0 {
		el.Add(fmt.Errorf("location has no entry point"))
	}

	if err := el.Err(); err != nil {
		return nil, fmt.Errorf("location %q: %w", name, err)
	}
	return bp, nil
}

// resolveLoot returns a copy of sym with its loot tables bound.
func resolveLoot(sym SymbolSpec, loot storage.Storer[*LootTable]) (SymbolSpec, error) {
	if len(sym.Loot) == 0 {
		return sym, nil
	}
	if loot == nil {
		return sym, fmt.Errorf("no loot tables are available")
	}
	resolved := make([]storage.Ref[*LootTable], len(sym.Loot))
	copy(resolved, sym.Loot)
	for i := range resolved {
		if err := resolved[i].Resolve(loot); err != nil {
			return sym, err
		}
	}
	sym.Loot = resolved
	return sym, nil
}
