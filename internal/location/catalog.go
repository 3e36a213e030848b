package location

import (
	"fmt"

	"github.com/pixil98/go-crew/internal/storage"
)

// Catalog provides location content by name.
type Catalog interface {
	Blueprint(name string) (*Blueprint, error)
	Categories() []*Category
}

// StoreCatalog is a Catalog backed by asset stores.
type StoreCatalog struct {
	locations  storage.Storer[*Template]
	categories storage.Storer[*Category]
	loot       storage.Storer[*LootTable]
}

// NewStoreCatalog checks that every category refers to a known location.
func NewStoreCatalog(locations storage.Storer[*Template], categories storage.Storer[*Category], loot storage.Storer[*LootTable]) (*StoreCatalog, error) {
	for id, c := range categories.GetAll() {
		for i := range c.Locations {
			if err := c.Locations[i].Resolve(locations); err != nil {
				return nil, fmt.Errorf("category %s: %w", id, err)
			}
		}
	}
	return &StoreCatalog{locations: locations, categories: categories, loot: loot}, nil
}

func (c *StoreCatalog) Blueprint(name string) (*Blueprint, error) {
	t := c.locations.Get(name)
	if t == nil {
		return nil, fmt.Errorf("location %q not found", name)
	}
	return Compile(name, t, c.loot)
}

// Categories are returned in id order.
func (c *StoreCatalog) Categories() []*Category {
	ids := c.categories.Ids()
	result := make([]*Category, 0, len(ids))
	for _, id := range ids {
		result = append(result, c.categories.Get(id))
	}
	return result
}
