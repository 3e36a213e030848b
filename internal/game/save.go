package game

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pixil98/go-crew/internal/location"
	"github.com/pixil98/go-crew/internal/storage"
)

const (
	SaveMajor = 2
	SaveMinor = 1
)

// CurrentVersion is the save format written by this build.
var CurrentVersion = Version{Major: SaveMajor, Minor: SaveMinor}

// Version of a save file. A save can be loaded when the major versions match
// and the saved minor version is not newer.
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

func (v Version) compatible() bool {
	return v.Major == CurrentVersion.Major && v.Minor <= CurrentVersion.Minor
}

type saveHeader struct {
	Version Version   `json:"version"`
	Id      uuid.UUID `json:"id"`
}

type saveFile struct {
	saveHeader
	Phase Phase      `json:"phase"`
	State *GameState `json:"state"`
}

// Save encodes the game so it can be resumed with Load.
func (g *Game) Save() ([]byte, error) {
	if !g.phase.valid() {
		return nil, fmt.Errorf("%w: can not save in phase %q", ErrInvalidPhase, g.phase.Kind)
	}
	return json.Marshal(saveFile{
		saveHeader: saveHeader{Version: CurrentVersion, Id: g.state.Id},
		Phase:      g.phase,
		State:      g.state,
	})
}

// Load restores a game written by Save. The version is checked before the
// rest of the document is decoded.
func Load(data []byte, content location.Catalog) (*Game, error) {
	var header saveHeader
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("reading save header: %w", err)
	}
	if !header.Version.compatible() {
		return nil, &VersionError{Saved: header.Version, Supported: CurrentVersion}
	}

	sf := saveFile{State: &GameState{}}
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("reading save: %w", err)
	}
	if !sf.Phase.valid() {
		return nil, fmt.Errorf("%w: saved phase %q", ErrInvalidPhase, sf.Phase.Kind)
	}
	sf.State.Id = header.Id

	g := newGame(sf.State, content)
	g.phase = sf.Phase
	return g, nil
}

// SaveTo writes the game to slot in saves.
func SaveTo(ctx context.Context, saves storage.SaveStore, slot string, g *Game) error {
	data, err := g.Save()
	if err != nil {
		return err
	}
	info := storage.SaveInfo{
		Slot:    slot,
		GameID:  g.state.Id.String(),
		Major:   CurrentVersion.Major,
		Minor:   CurrentVersion.Minor,
		SavedAt: time.Now(),
	}
	if err := saves.Put(ctx, info, data); err != nil {
		return fmt.Errorf("saving to slot %q: %w", slot, err)
	}
	slog.Info("game saved", "game", g.state.Id, "slot", slot)
	return nil
}

// LoadFrom restores the game stored in slot. The game is resumed from the
// phase it was saved in, re-showing the current situation when the player
// was being asked for input.
func LoadFrom(ctx context.Context, saves storage.SaveStore, slot string, content location.Catalog) (*Game, error) {
	data, err := saves.Get(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("loading slot %q: %w", slot, err)
	}
	g, err := Load(data, content)
	if err != nil {
		return nil, err
	}
	slog.Info("game loaded", "game", g.state.Id, "slot", slot, "phase", g.phase.Kind)
	return g, g.Resume()
}
