// Package view builds read-only frames from the world for presentation
// layers, and renders them as text.
package view

import (
	"strings"
	"unicode"

	"github.com/pixil98/go-crew/internal/world"
)

type Kind string

const (
	KindArea     Kind = "area"
	KindDialogue Kind = "dialogue"
	KindStore    Kind = "store"
	KindChoice   Kind = "location_choice"
	KindEnding   Kind = "ending"
	KindInfo     Kind = "info"
	KindError    Kind = "error"
)

// Frame is a snapshot of what a presentation layer should show. Only the
// part matching Kind is set.
type Frame struct {
	Kind     Kind     `json:"kind"`
	Messages []string `json:"messages,omitempty"`
	Text     string   `json:"text,omitempty"`

	Area     *AreaView     `json:"area,omitempty"`
	Status   *StatusView   `json:"status,omitempty"`
	Dialogue *DialogueView `json:"dialogue,omitempty"`
	Store    *StoreView    `json:"store,omitempty"`
	Choice   *ChoiceView   `json:"choice,omitempty"`
	Ending   *EndingView   `json:"ending,omitempty"`
}

type AreaView struct {
	Label      string       `json:"label"`
	Size       uint         `json:"size"`
	Background string       `json:"background,omitempty"`
	Objects    []ObjectView `json:"objects"`
}

type ObjectView struct {
	Coord     uint   `json:"coord"`
	Symbol    string `json:"symbol"`
	Name      string `json:"name"`
	FacesLeft bool   `json:"faces_left,omitempty"`
}

type StatusView struct {
	Name      string   `json:"name"`
	Health    float64  `json:"health"`
	Stamina   int      `json:"stamina"`
	Points    int      `json:"points"`
	Wielded   string   `json:"wielded,omitempty"`
	Inventory []string `json:"inventory,omitempty"`
}

type DialogueView struct {
	Speaker string   `json:"speaker"`
	Lines   []string `json:"lines"`
}

type StoreView struct {
	Shopkeeper string      `json:"shopkeeper"`
	Points     int         `json:"points"`
	Stock      []StockLine `json:"stock"`
	Sellable   []string    `json:"sellable,omitempty"`
}

type StockLine struct {
	Item     string `json:"item"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

type ChoiceView struct {
	Options []string `json:"options"`
}

type EndingView struct {
	Win  bool   `json:"win"`
	Text string `json:"text"`
}

// AreaFrame shows the area controlled is in, along with its status.
func AreaFrame(w *world.World, controlled world.Entity, messages []string) Frame {
	f := Frame{Kind: KindArea, Messages: messages, Status: status(w, controlled)}

	pos, ok := w.Positions.Get(controlled)
	if !ok {
		return f
	}
	area, _ := w.Areas.Get(pos.Area)
	av := &AreaView{Label: area.Label, Size: area.Size, Background: area.Background}
	for _, e := range w.EntitiesInArea(pos.Area) {
		p, _ := w.Positions.Get(e)
		dir, _ := w.Directions.Get(e)
		av.Objects = append(av.Objects, ObjectView{
			Coord:     p.Coord,
			Symbol:    string(symbolOf(w, e)),
			Name:      objectName(w, e),
			FacesLeft: dir == world.DirectionLeft,
		})
	}
	f.Area = av
	return f
}

func status(w *world.World, e world.Entity) *StatusView {
	s := &StatusView{Name: w.NameOf(e)}
	if h, ok := w.Healths.Get(e); ok {
		s.Health = h.Value
	}
	if st, ok := w.Staminas.Get(e); ok {
		s.Stamina = st.Value
	}
	if crew, ok := w.CrewOf(e); ok {
		s.Points = w.Points(crew)
	}
	if item, ok := w.Wielded(e); ok {
		s.Wielded = w.BaseName(item)
	}
	for _, item := range w.Inventory(e) {
		held, _ := w.Held.Get(item)
		if !held.InHand {
			s.Inventory = append(s.Inventory, w.BaseName(item))
		}
	}
	return s
}

// DialogueFrame shows a conversation.
func DialogueFrame(speaker string, lines []string, messages []string) Frame {
	return Frame{
		Kind:     KindDialogue,
		Messages: messages,
		Dialogue: &DialogueView{Speaker: speaker, Lines: lines},
	}
}

// StoreFrame shows the stock of the shopkeeper performer is trading with.
func StoreFrame(w *world.World, performer, shopkeeper world.Entity, messages []string) Frame {
	sv := &StoreView{Shopkeeper: w.NameOf(shopkeeper)}
	if crew, ok := w.CrewOf(performer); ok {
		sv.Points = w.Points(crew)
	}
	shop, _ := w.Shopkeepers.Get(shopkeeper)
	for _, s := range shop.Stock {
		sv.Stock = append(sv.Stock, StockLine{Item: s.Kind.Noun().Singular, Price: s.Price, Quantity: s.Quantity})
	}
	for _, item := range w.Inventory(performer) {
		if w.Prices.Has(item) {
			sv.Sellable = append(sv.Sellable, w.BaseName(item))
		}
	}
	return Frame{Kind: KindStore, Messages: messages, Store: sv}
}

// ChoiceFrame offers the next destinations.
func ChoiceFrame(options []string, messages []string) Frame {
	return Frame{Kind: KindChoice, Messages: messages, Choice: &ChoiceView{Options: options}}
}

func EndingFrame(win bool, text string, messages []string) Frame {
	return Frame{Kind: KindEnding, Messages: messages, Ending: &EndingView{Win: win, Text: text}}
}

// InfoFrame carries preformatted text, such as a status report.
func InfoFrame(text string) Frame {
	return Frame{Kind: KindInfo, Text: text}
}

// ErrorFrame carries rejection messages. The world did not change.
func ErrorFrame(messages ...string) Frame {
	return Frame{Kind: KindError, Messages: messages}
}

// symbolOf is the character an entity is drawn with in an area view.
func symbolOf(w *world.World, e world.Entity) rune {
	switch {
	case w.Items.Has(e):
		item, _ := w.Items.Get(e)
		return item.Kind.Symbol()
	case w.Creatures.Has(e):
		c, _ := w.Creatures.Get(e)
		return c.Kind.Symbol()
	case w.Doors.Has(e):
		door, _ := w.Doors.Get(e)
		if w.Ships.Has(door.Destination.Area) {
			return 'v'
		}
		return '^'
	case w.FortunaChests.Has(e):
		return '*'
	case w.Containers.Has(e):
		return 'x'
	}
	if name, ok := w.Names.Get(e); ok && name.Value != "" {
		return unicode.ToUpper([]rune(name.Value)[0])
	}
	return '?'
}

func objectName(w *world.World, e world.Entity) string {
	name := w.BaseName(e)
	if w.IsDead(e) {
		name += " (dead)"
	}
	if door, ok := w.Doors.Get(e); ok {
		if block, ok := w.Blocks.Get(door.Pair); ok {
			name += " (" + strings.ToLower(block.Description()) + ")"
		}
	}
	return name
}
