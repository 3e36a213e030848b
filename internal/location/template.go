// Package location turns declarative location templates into world entities
// and tracks which locations the crew visits.
package location

import (
	"fmt"
	"unicode/utf8"

	"github.com/pixil98/go-crew/internal/storage"
	"github.com/pixil98/go-crew/internal/world"
	"github.com/pixil98/go-errors"
)

// Template describes a location as a list of areas. Each entry of an area's
// Objects is one coordinate, holding zero or more symbols.
type Template struct {
	Areas     []AreaSpec              `json:"areas"`
	DoorPairs map[string]DoorPairSpec `json:"door_pairs,omitempty"`
	Symbols   map[string]SymbolSpec   `json:"symbols,omitempty"`
}

type AreaSpec struct {
	Name       string   `json:"name"`
	Background string   `json:"background,omitempty"`
	Objects    []string `json:"objects"`
}

type DoorPairSpec struct {
	BlockType world.BlockType `json:"block_type,omitempty"`
}

// Validate satisfies storage.ValidatingSpec. Checks that need the whole
// template, such as door placement, happen in Compile.
func (t *Template) Validate() error {
	el := errors.NewErrorList()

	if len(t.Areas) == 0 {
		el.Add(fmt.Errorf("at least one area is required"))
	}
	for i, a := range t.Areas {
		if a.Name == "" {
			el.Add(fmt.Errorf("area %d: name is required", i))
		}
		if len(a.Objects) == 0 {
			el.Add(fmt.Errorf("area %d: objects must have at least one coordinate", i))
		}
	}

	for id, pair := range t.DoorPairs {
		switch pair.BlockType {
		case "", world.BlockStuck, world.BlockSealed, world.BlockLocked:
		default:
			el.Add(fmt.Errorf("door pair %q: invalid block_type %q", id, pair.BlockType))
		}
	}

	for key, sym := range t.Symbols {
		if utf8.RuneCountInString(key) != 1 {
			el.Add(fmt.Errorf("symbol %q must be a single character", key))
		}
		if err := sym.Validate(); err != nil {
			el.Add(fmt.Errorf("symbol %q: %w", key, err))
		}
		if sym.Type == SymbolDoor {
			if _, ok := t.DoorPairs[sym.Pair]; !ok {
				el.Add(fmt.Errorf("symbol %q: unknown door pair %q", key, sym.Pair))
			}
		}
	}

	return el.Err()
}

// Category groups locations of a similar theme offered together when the
// crew picks its next destination.
type Category struct {
	Name      string                   `json:"name"`
	Locations []storage.Ref[*Template] `json:"locations"`
}

func (c *Category) Validate() error {
	el := errors.NewErrorList()

	if c.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	if len(c.Locations) == 0 {
		el.Add(fmt.Errorf("at least one location is required"))
	}
	for _, l := range c.Locations {
		el.Add(l.Validate())
	}

	return el.Err()
}
