package location

import (
	"path/filepath"
	"testing"

	"github.com/pixil98/go-crew/internal/storage"
	"github.com/pixil98/go-testutil"
)

func TestStoreCatalog_Assets(t *testing.T) {
	dir := filepath.Join("..", "..", "assets")

	locations, err := storage.NewFileStore[*Template](filepath.Join(dir, "locations"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	categories, err := storage.NewFileStore[*Category](filepath.Join(dir, "categories"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loot, err := storage.NewFileStore[*LootTable](filepath.Join(dir, "loot_tables"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	catalog, err := NewStoreCatalog(locations, categories, loot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "categories", len(catalog.Categories()), 3)

	for _, name := range locations.Ids() {
		t.Run(name, func(t *testing.T) {
			if _, err := catalog.Blueprint(name); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}

	if locations.Get(DefaultFinal) == nil {
		t.Errorf("final location %q is missing", DefaultFinal)
	}
}
