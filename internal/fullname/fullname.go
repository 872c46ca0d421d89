// Package fullname enumerates the human-readable ways a person's full name
// is commonly written, e.g. "Bond, James H", including the informal variants
// of their first name.
package fullname

import (
	"fmt"

	"github.com/zarlcorp/zbeacon/internal/normalize"
	"github.com/zarlcorp/zbeacon/internal/variant"
)

// Siblings resolves a first name to its other informal variants.
// *nickname.Store satisfies it.
type Siblings interface {
	Siblings(name string) []string
}

type role int

const (
	first role = iota
	middle
	last
)

// layout is one way of writing a name: the parts in order and the text
// between each pair of neighbors.
type layout struct {
	roles []role
	seps  []string
}

// twoPart layouts apply to everybody.
var twoPart = []layout{
	{[]role{first, last}, []string{" "}},  // James Bond
	{[]role{last, first}, []string{" "}},  // Bond James
	{[]role{last, first}, []string{", "}}, // Bond, James
}

// threePart layouts apply only when there is a middle name; each is emitted
// with the full middle name and with its initial.
var threePart = []layout{
	{[]role{first, middle, last}, []string{" ", " "}},   // James Herbert Bond
	{[]role{middle, last, first}, []string{" ", " "}},   // Herbert Bond James
	{[]role{last, first, middle}, []string{" ", " "}},   // Bond James Herbert
	{[]role{first, middle, last}, []string{", ", ", "}}, // James, Herbert, Bond
	{[]role{middle, last, first}, []string{", ", ", "}}, // Herbert, Bond, James
	{[]role{last, first, middle}, []string{", ", ", "}}, // Bond, James, Herbert
	{[]role{last, first, middle}, []string{", ", " "}},  // Bond, James Herbert
}

// Generator produces full-name variants.
type Generator struct {
	nicknames Siblings
}

// New creates a generator. A nil nicknames disables first-name expansion.
func New(nicknames Siblings) *Generator {
	return &Generator{nicknames: nicknames}
}

// Generate returns every full-name variant of first, middle and last.
// An empty middle means the person has no middle name. first and last are
// required.
func (g *Generator) Generate(firstName, middleName, lastName string) (variant.Set, error) {
	f := normalize.Title(firstName)
	l := normalize.Title(lastName)
	if f == "" || l == "" {
		return nil, fmt.Errorf("full name variants: first and last name required: %w", variant.ErrEmptyName)
	}

	var middles []string
	if m := normalize.Title(middleName); m != "" {
		middles = []string{m, variant.Initial(m)}
	}

	firsts := []string{f}
	if g.nicknames != nil {
		firsts = append(firsts, g.nicknames.Siblings(f)...)
	}

	out := variant.NewSet()
	for _, fn := range firsts {
		for _, ly := range twoPart {
			out.Add(ly.render(fn, "", l))
		}
		for _, mn := range middles {
			for _, ly := range threePart {
				out.Add(ly.render(fn, mn, l))
			}
		}
	}
	return out, nil
}

func (ly layout) render(f, m, l string) string {
	parts := make([]string, len(ly.roles))
	for i, r := range ly.roles {
		switch r {
		case first:
			parts[i] = f
		case middle:
			parts[i] = m
		case last:
			parts[i] = l
		}
	}
	return variant.Join(parts, ly.seps)
}
