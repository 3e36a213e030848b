// Package player plays a game over a line based connection, such as the
// terminal. Input can also arrive from other sources through Submit.
package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pixil98/go-crew/internal/game"
	"github.com/pixil98/go-crew/internal/location"
	"github.com/pixil98/go-crew/internal/storage"
	"github.com/pixil98/go-crew/internal/view"
)

const remoteBuffer = 16

// FrameSink receives every frame shown to the player.
type FrameSink interface {
	PublishFrame(f view.Frame) error
}

// Starter creates a new game.
type Starter func() (*game.Game, error)

type Player struct {
	conn    io.ReadWriter
	start   Starter
	content location.Catalog
	game    *game.Game

	saves storage.SaveStore
	slot  string
	width int
	sinks []FrameSink

	remote chan string
}

func NewPlayer(conn io.ReadWriter, start Starter, content location.Catalog, opts ...PlayerOpt) *Player {
	p := &Player{
		conn:    conn,
		start:   start,
		content: content,
		width:   view.DefaultWidth,
		remote:  make(chan string, remoteBuffer),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Submit queues a line of input as if it was typed on the connection. Lines
// are dropped while the queue is full.
func (p *Player) Submit(line string) {
	select {
	case p.remote <- line:
	default:
		slog.Warn("dropping remote input", "line", line)
	}
}

// Play runs a game until the player quits, the connection closes, or ctx is
// done.
func (p *Player) Play(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	// Start goroutine to read input lines into a channel
	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	go func() {
		defer close(inputChan)
		scanner := bufio.NewScanner(p.conn)
		for scanner.Scan() {
			select {
			case inputChan <- scanner.Text():
			case <-done:
				return
			}
		}
		inputErrChan <- scanner.Err()
	}()

	if err := p.newGame(); err != nil {
		return err
	}
	if err := p.prompt(); err != nil {
		return err
	}

	for {
		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()

		case line = <-p.remote:

		case in, ok := <-inputChan:
			if !ok {
				select {
				case err := <-inputErrChan:
					return err
				default:
					return nil
				}
			}
			line = in
		}

		quit, err := p.handle(ctx, line)
		if err != nil {
			return err
		}
		if quit {
			return p.writeLine("Goodbye!")
		}
		if err := p.prompt(); err != nil {
			return err
		}
	}
}

func (p *Player) handle(ctx context.Context, line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}

	switch strings.ToLower(line) {
	case "quit":
		return true, nil
	case "new game":
		return false, p.newGame()
	case "save":
		return false, p.save(ctx)
	case "load":
		return false, p.load(ctx)
	}

	err := p.game.HandleInput(line)
	var rejected *game.RejectError
	switch {
	case err == nil:
	case errors.As(err, &rejected):
		if err := p.show(view.ErrorFrame(rejected.Messages...)); err != nil {
			return false, err
		}
	case errors.Is(err, game.ErrGameOver):
		if err := p.writeLine(`The game is over. Type "new game" to play again or "quit" to leave.`); err != nil {
			return false, err
		}
	case errors.Is(err, game.ErrInvalidPhase):
		return false, fmt.Errorf("handling input: %w", err)
	default:
		slog.Error("input failed", "input", line, "error", err)
		if err := p.writeLine(view.Capitalize(err.Error()) + "."); err != nil {
			return false, err
		}
	}
	return false, p.flush()
}

func (p *Player) newGame() error {
	g, err := p.start()
	if err != nil {
		return fmt.Errorf("starting game: %w", err)
	}
	p.game = g
	return p.flush()
}

func (p *Player) save(ctx context.Context) error {
	if p.saves == nil {
		return p.writeLine("Saving is not available.")
	}
	if err := game.SaveTo(ctx, p.saves, p.slot, p.game); err != nil {
		slog.Error("save failed", "slot", p.slot, "error", err)
		return p.writeLine(fmt.Sprintf("The game could not be saved: %v.", err))
	}
	return p.writeLine(fmt.Sprintf("Saved the game to slot %q.", p.slot))
}

func (p *Player) load(ctx context.Context) error {
	if p.saves == nil {
		return p.writeLine("Loading is not available.")
	}
	g, err := game.LoadFrom(ctx, p.saves, p.slot, p.content)
	if err != nil {
		var verErr *game.VersionError
		switch {
		case errors.As(err, &verErr):
			return p.writeLine(fmt.Sprintf("This save can not be loaded: %s.", verErr.Recommendation()))
		case errors.Is(err, storage.ErrSlotNotFound):
			return p.writeLine(fmt.Sprintf("There is no save in slot %q.", p.slot))
		default:
			slog.Error("load failed", "slot", p.slot, "error", err)
			return p.writeLine(fmt.Sprintf("The game could not be loaded: %v.", err))
		}
	}
	p.game = g
	return p.flush()
}

// flush shows the frames the game has queued.
func (p *Player) flush() error {
	for _, f := range p.game.Frames() {
		if err := p.show(f); err != nil {
			return err
		}
	}
	return nil
}

func (p *Player) show(f view.Frame) error {
	for _, sink := range p.sinks {
		if err := sink.PublishFrame(f); err != nil {
			slog.Warn("failed to publish frame", "kind", f.Kind, "error", err)
		}
	}
	_, err := io.WriteString(p.conn, view.Render(f, p.width))
	return err
}

func (p *Player) prompt() error {
	_, err := io.WriteString(p.conn, "> ")
	return err
}

func (p *Player) writeLine(s string) error {
	_, err := io.WriteString(p.conn, view.Wrap(s, p.width)+"\n")
	return err
}
