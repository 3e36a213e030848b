package view

import (
	"fmt"
	"slices"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DefaultWidth = 80

// titled and number build a new caser and printer per call. Neither may be
// shared between sessions.
func titled(s string) string {
	return cases.Title(language.English).String(s)
}

func number(n int) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// Wrap word-wraps text to width, preserving ANSI escape sequences.
func Wrap(text string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	return wordwrap.String(text, width)
}

// Capitalize returns s with its first character uppercased.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Render draws f as plain text no wider than width.
func Render(f Frame, width int) string {
	var sb strings.Builder

	switch f.Kind {
	case KindArea:
		renderArea(&sb, f.Area)
		renderStatus(&sb, f.Status)
	case KindDialogue:
		fmt.Fprintf(&sb, "%s:\n", titled(f.Dialogue.Speaker))
		for _, line := range f.Dialogue.Lines {
			fmt.Fprintf(&sb, "  %q\n", line)
		}
	case KindStore:
		renderStore(&sb, f.Store)
	case KindChoice:
		sb.WriteString("Choose where to go next:\n")
		for i, o := range f.Choice.Options {
			fmt.Fprintf(&sb, "%2d. %s\n", i+1, o)
		}
	case KindEnding:
		if f.Ending.Win {
			sb.WriteString("Congratulations, you won!\n")
		} else {
			sb.WriteString("You lost.\n")
		}
		if f.Ending.Text != "" {
			sb.WriteString(f.Ending.Text + "\n")
		}
	case KindInfo:
		sb.WriteString(f.Text + "\n")
	}

	for _, m := range f.Messages {
		sb.WriteString(Wrap(Capitalize(m), width))
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderArea(sb *strings.Builder, a *AreaView) {
	if a == nil {
		return
	}
	fmt.Fprintf(sb, "%s:\n", titled(a.Label))

	row := []rune(strings.Repeat(" ", int(a.Size)))
	var legend []string
	seen := map[string]bool{}
	for _, o := range a.Objects {
		if o.Coord < a.Size && row[o.Coord] == ' ' {
			row[o.Coord] = []rune(o.Symbol)[0]
		}
		entry := o.Symbol + ": " + o.Name
		if !seen[entry] {
			seen[entry] = true
			legend = append(legend, entry)
		}
	}
	fmt.Fprintf(sb, "|%s|\n", string(row))
	slices.Sort(legend)
	for _, l := range legend {
		sb.WriteString(l + "\n")
	}
}

func renderStatus(sb *strings.Builder, s *StatusView) {
	if s == nil {
		return
	}
	fmt.Fprintf(sb, "%s: health %d%%, stamina %d. Crew points: %s\n",
		s.Name, int(s.Health*100), s.Stamina, number(s.Points))
	if s.Wielded != "" {
		fmt.Fprintf(sb, "Wielding: %s\n", s.Wielded)
	}
	if len(s.Inventory) > 0 {
		fmt.Fprintf(sb, "Inventory: %s\n", strings.Join(s.Inventory, ", "))
	}
}

func renderStore(sb *strings.Builder, s *StoreView) {
	fmt.Fprintf(sb, "%s is selling:\n", Capitalize(s.Shopkeeper))
	for _, line := range s.Stock {
		qty := "unlimited"
		if line.Quantity >= 0 {
			qty = number(line.Quantity) + " left"
		}
		fmt.Fprintf(sb, "  %-14s | %s points | %s\n", titled(line.Item), number(line.Price), qty)
	}
	fmt.Fprintf(sb, "Crew points: %s\n", number(s.Points))
	if len(s.Sellable) > 0 {
		fmt.Fprintf(sb, "Sellable: %s\n", strings.Join(s.Sellable, ", "))
	}
}
