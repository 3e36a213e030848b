package command

import (
	"fmt"

	"github.com/pixil98/go-crew/internal/storage"
	"github.com/pixil98/go-errors"
)

const defaultSlot = "autosave"

type SaveBackend int

const (
	SaveBackendFile SaveBackend = iota
	SaveBackendSqlite
)

func (b *SaveBackend) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "file":
		*b = SaveBackendFile
	case "sqlite":
		*b = SaveBackendSqlite
	default:
		return fmt.Errorf("unknown save backend: %s", text)
	}
	return nil
}

type SavesConfig struct {
	Backend SaveBackend `json:"backend" env:"CREW_SAVE_BACKEND"`
	// Path is a directory for the file backend and a database file for
	// sqlite. Saving is disabled when empty.
	Path string `json:"path" env:"CREW_SAVE_PATH"`
	Slot string `json:"slot"`
}

func (c *SavesConfig) validate() error {
	el := errors.NewErrorList()

	if c.Slot != "" && c.Path == "" {
		el.Add(fmt.Errorf("saves: path is required when a slot is set"))
	}

	return el.Err()
}

func (c *SavesConfig) slot() string {
	if c.Slot == "" {
		return defaultSlot
	}
	return c.Slot
}

// BuildSaveStore returns nil when saving is disabled.
func (c *SavesConfig) BuildSaveStore() (storage.SaveStore, error) {
	if c.Path == "" {
		return nil, nil
	}
	switch c.Backend {
	case SaveBackendSqlite:
		return storage.OpenSqliteSaveStore(c.Path)
	default:
		return storage.NewFileSaveStore(c.Path)
	}
}
