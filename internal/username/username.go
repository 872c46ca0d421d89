// Package username derives account-name guesses from a person's name parts.
//
// Candidates only use [A-Za-z0-9._], the characters accepted by the big mail
// and social services, and never begin or end with a separator.
package username

import (
	"fmt"
	"strings"

	"github.com/zarlcorp/zbeacon/internal/normalize"
	"github.com/zarlcorp/zbeacon/internal/variant"
)

// Separators are placed between name parts; "" glues them together.
var Separators = []string{".", "_", ""}

// Generator produces username candidates. It holds no state and is safe for
// concurrent use.
type Generator struct {
	separators []string
}

// New creates a generator using the default separators.
func New() *Generator {
	return &Generator{separators: Separators}
}

// Generate returns every username candidate for the name parts. An empty
// middle means the person has no middle name. Every supplied part must keep
// at least one latin letter or digit once diacritics and symbols are removed.
func (g *Generator) Generate(first, middle, last string) (variant.Set, error) {
	f, err := part("first", first)
	if err != nil {
		return nil, err
	}
	l, err := part("last", last)
	if err != nil {
		return nil, err
	}

	var m string
	if strings.TrimSpace(middle) != "" {
		if m, err = part("middle", middle); err != nil {
			return nil, err
		}
	}

	out := variant.NewSet()
	for _, t := range Orderings(f, m, l) {
		out.Union(g.expand(t))
	}
	return out, nil
}

// expand joins every initial variant of t with every separator choice.
func (g *Generator) expand(t variant.Tuple) variant.Set {
	out := variant.NewSet()
	for _, v := range variant.Initials(t) {
		out.Add(variant.Joins(v, g.separators)...)
	}
	return out
}

// Orderings lists the part orders usernames are built from: first-last and
// last-first, plus, with a middle name, the three rotations first-middle-last,
// last-first-middle and middle-last-first. Other permutations such as
// last-middle-first are not used.
func Orderings(first, middle, last string) []variant.Tuple {
	out := []variant.Tuple{
		{first, last},
		{last, first},
	}
	if middle != "" {
		out = append(out,
			variant.Tuple{first, middle, last},
			variant.Tuple{last, first, middle},
			variant.Tuple{middle, last, first},
		)
	}
	return out
}

func part(label, s string) (string, error) {
	p := normalize.Identifier(s)
	if p == "" {
		return "", fmt.Errorf("username candidates: %s name %q has no usable characters: %w", label, s, variant.ErrEmptyName)
	}
	return p, nil
}
