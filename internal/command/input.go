package command

import "strings"

// input is the unparsed remainder of a command line. Whitespace is
// collapsed and matching is case insensitive.
type input struct {
	text string
}

func newInput(s string) input {
	return input{text: strings.Join(strings.Fields(s), " ")}
}

// literal consumes word when it is the whole remainder or is followed by a
// space.
func (in input) literal(word string) (input, bool) {
	lower := strings.ToLower(in.text)
	if lower == word {
		return input{}, true
	}
	if strings.HasPrefix(lower, word+" ") {
		return input{text: in.text[len(word)+1:]}, true
	}
	return in, false
}

// literals tries each word in turn, consuming the first that matches.
func (in input) literals(words ...string) (input, bool) {
	for _, w := range words {
		if rest, ok := in.literal(w); ok {
			return rest, true
		}
	}
	return in, false
}

// split divides the remainder around the last occurrence of the separator
// word, so "give fuel can to mint" splits "fuel can" from "mint".
func (in input) split(sep string) (input, input, bool) {
	lower := strings.ToLower(in.text)
	i := strings.LastIndex(lower, " "+sep+" ")
	if i < 0 {
		return in, input{}, false
	}
	return input{text: in.text[:i]}, input{text: in.text[i+len(sep)+2:]}, true
}

func (in input) empty() bool {
	return in.text == ""
}

// name is the remainder as a lookup key, without a leading article.
func (in input) name() string {
	lower := strings.ToLower(in.text)
	for _, article := range []string{"the ", "a ", "an "} {
		if rest, ok := strings.CutPrefix(lower, article); ok {
			return rest
		}
	}
	return lower
}

// raw is the remainder as typed.
func (in input) raw() string {
	return in.text
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
