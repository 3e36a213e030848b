package player

import "github.com/pixil98/go-crew/internal/storage"

type PlayerOpt func(*Player)

// WithSaves enables the save and load commands using slot in saves.
func WithSaves(saves storage.SaveStore, slot string) PlayerOpt {
	return func(p *Player) {
		p.saves = saves
		p.slot = slot
	}
}

// WithWidth sets the width frames are wrapped to.
func WithWidth(width int) PlayerOpt {
	return func(p *Player) {
		if width > 0 {
			p.width = width
		}
	}
}

// WithFrameSink also sends every frame to sink.
func WithFrameSink(sink FrameSink) PlayerOpt {
	return func(p *Player) {
		p.sinks = append(p.sinks, sink)
	}
}
