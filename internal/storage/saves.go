package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// ErrSlotNotFound is returned when loading a slot that has never been saved.
var ErrSlotNotFound = errors.New("save slot not found")

var slotPattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

// SaveInfo describes a stored save without its payload.
type SaveInfo struct {
	Slot    string
	GameID  string
	Major   int
	Minor   int
	SavedAt time.Time
}

// SaveStore persists encoded game saves by slot name.
type SaveStore interface {
	Put(ctx context.Context, info SaveInfo, data []byte) error
	Get(ctx context.Context, slot string) ([]byte, error)
	Close() error
}

func validateSlot(slot string) error {
	if !slotPattern.MatchString(slot) {
		return fmt.Errorf("invalid save slot %q", slot)
	}
	return nil
}

// FileSaveStore keeps one JSON file per slot in a directory.
type FileSaveStore struct {
	path string
}

func NewFileSaveStore(path string) (*FileSaveStore, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("creating save directory: %w", err)
	}
	return &FileSaveStore{path: path}, nil
}

func (s *FileSaveStore) Put(ctx context.Context, info SaveInfo, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateSlot(info.Slot); err != nil {
		return err
	}
	return atomicWrite(s.filePath(info.Slot), data, 0644)
}

func (s *FileSaveStore) Get(ctx context.Context, slot string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateSlot(slot); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.filePath(slot))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading save: %w", err)
	}
	return data, nil
}

func (s *FileSaveStore) Close() error {
	return nil
}

func (s *FileSaveStore) filePath(slot string) string {
	return filepath.Join(s.path, fmt.Sprintf("%s.json", slot))
}

// atomicWrite writes to a temp file and renames it over path, so an
// interrupted save never leaves a truncated file behind.
func atomicWrite(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		if removeErr := os.Remove(tmp); removeErr != nil {
			slog.Warn("failed to remove temp file after rename failure", "path", tmp, "error", removeErr)
		}
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
