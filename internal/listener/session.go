// Package listener accepts remote connections over telnet and ssh. Every
// connection plays its own game.
package listener

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/pixil98/go-crew/internal/location"
	"github.com/pixil98/go-crew/internal/player"
	"github.com/pixil98/go-crew/internal/storage"
)

// SessionManager starts a player for each accepted connection.
type SessionManager struct {
	start   player.Starter
	content location.Catalog
	saves   storage.SaveStore
	opts    []player.PlayerOpt
}

// NewSessionManager creates a SessionManager. saves may be nil, in which case
// remote players can not save.
func NewSessionManager(start player.Starter, content location.Catalog, saves storage.SaveStore, opts ...player.PlayerOpt) *SessionManager {
	return &SessionManager{
		start:   start,
		content: content,
		saves:   saves,
		opts:    opts,
	}
}

// AcceptConnection plays on conn until the player leaves. Named connections
// save to a slot of their own.
func (m *SessionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter, name string) {
	m.play(ctx, conn, sessionSlot(name))
}

// play runs one game on conn. An empty slot plays without saving.
func (m *SessionManager) play(ctx context.Context, conn io.ReadWriter, slot string) {
	opts := m.opts
	if m.saves != nil && slot != "" {
		opts = append(opts[:len(opts):len(opts)], player.WithSaves(m.saves, slot))
	}

	slog.InfoContext(ctx, "session started", "slot", slot)
	if err := player.NewPlayer(conn, m.start, m.content, opts...).Play(ctx); err != nil {
		slog.WarnContext(ctx, "player session", "slot", slot, "error", err)
		return
	}
	slog.InfoContext(ctx, "session ended", "slot", slot)
}

// sessionSlot turns a connection name into a save slot. Characters a slot can
// not hold are dropped.
func sessionSlot(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "remote-" + b.String()
}
