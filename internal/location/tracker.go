package location

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// DefaultFinal is the location visited after all others.
const DefaultFinal = "fortuna"

// maxOptions is how many categories are offered per choice.
const maxOptions = 3

// Tracker records how far the crew is through its journey.
type Tracker struct {
	Remaining int    `json:"remaining"`
	Final     string `json:"final"`
	Finished  bool   `json:"finished"`
}

func NewTracker(count int, final string) Tracker {
	if final == "" {
		final = DefaultFinal
	}
	return Tracker{Remaining: count, Final: final}
}

// Option is one destination offered to the player.
type Option struct {
	Category string `json:"category"`
	Location string `json:"location"`
}

// Choice is a set of destinations the player picks from.
type Choice struct {
	Options []Option `json:"options"`
}

// Resolve matches input against the options, either by number starting at 1
// or by category name.
func (c Choice) Resolve(input string) (string, error) {
	input = strings.TrimSpace(input)
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(c.Options) {
			return "", fmt.Errorf("choose a number between 1 and %d", len(c.Options))
		}
		return c.Options[n-1].Location, nil
	}
	for _, o := range c.Options {
		if strings.EqualFold(o.Category, input) {
			return o.Location, nil
		}
	}
	return "", fmt.Errorf("%q is not one of the choices", input)
}

// Next decides where the crew goes after leaving its current location.
// When more than one destination is possible a Choice is returned and name
// is empty. ok is false once the final location has been left.
func (t *Tracker) Next(rng *rand.Rand, categories []*Category) (choice Choice, name string, ok bool) {
	if t.Finished {
		return Choice{}, "", false
	}
	if t.Remaining <= 0 || len(categories) == 0 {
		t.Finished = true
		return Choice{}, t.Final, true
	}
	t.Remaining--

	for _, i := range rng.Perm(len(categories))[:min(maxOptions, len(categories))] {
		c := categories[i]
		loc := c.Locations[rng.IntN(len(c.Locations))]
		choice.Options = append(choice.Options, Option{Category: c.Name, Location: loc.Key()})
	}
	if len(choice.Options) == 1 {
		return Choice{}, choice.Options[0].Location, true
	}
	return choice, "", true
}
