package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidPhase means the game reached a state it can not continue
	// from. It always points at a defect rather than bad input.
	ErrInvalidPhase = errors.New("invalid game phase")
	ErrGameOver     = errors.New("the game is over")
)

// RejectError is returned when player input was not accepted. The game did
// not change.
type RejectError struct {
	Messages []string
}

func (e *RejectError) Error() string {
	return strings.Join(e.Messages, " ")
}

func reject(messages ...string) *RejectError {
	return &RejectError{Messages: messages}
}

// VersionError is returned when a save was written by an incompatible
// version of the game.
type VersionError struct {
	Saved     Version
	Supported Version
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("save file version %s is not supported by version %s: %s", e.Saved, e.Supported, e.Recommendation())
}

// Recommendation tells the player what to do about the mismatch.
func (e *VersionError) Recommendation() string {
	if e.Saved.Major < e.Supported.Major {
		return "the save is too old, start a new game"
	}
	return "use a newer version of the game to load this save"
}
