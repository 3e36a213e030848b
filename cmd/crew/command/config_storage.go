package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-crew/internal/location"
	"github.com/pixil98/go-crew/internal/storage"
	"github.com/pixil98/go-errors"
)

type StorageConfig struct {
	Locations  AssetConfig[*location.Template]  `json:"locations"`
	Categories AssetConfig[*location.Category]  `json:"categories"`
	LootTables AssetConfig[*location.LootTable] `json:"loot_tables"`
}

// BuildCatalog loads every asset and checks the references between them.
func (c *StorageConfig) BuildCatalog() (*location.StoreCatalog, error) {
	locations, err := c.Locations.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating location store: %w", err)
	}
	categories, err := c.Categories.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating category store: %w", err)
	}
	loot, err := c.LootTables.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating loot table store: %w", err)
	}

	catalog, err := location.NewStoreCatalog(locations, categories, loot)
	if err != nil {
		return nil, fmt.Errorf("resolving references: %w", err)
	}
	return catalog, nil
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Locations.Validate("locations"))
	el.Add(c.Categories.Validate("categories"))
	el.Add(c.LootTables.Validate("loot_tables"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
