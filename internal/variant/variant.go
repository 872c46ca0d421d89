// Package variant holds the combinators shared by the name and username
// generators: a string set, initial substitution and separator joining.
package variant

import (
	"errors"
	"sort"
	"strings"
	"unicode/utf8"
)

// ErrEmptyName is returned when a required name part is empty.
var ErrEmptyName = errors.New("empty name part")

// Set is an unordered collection of unique strings.
type Set map[string]struct{}

// NewSet creates a set holding items.
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	s.Add(items...)
	return s
}

// Add inserts items into the set.
func (s Set) Add(items ...string) {
	for _, v := range items {
		s[v] = struct{}{}
	}
}

// Has reports whether v is in the set.
func (s Set) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of items.
func (s Set) Len() int {
	return len(s)
}

// Union adds every item of o to s.
func (s Set) Union(o Set) {
	for v := range o {
		s[v] = struct{}{}
	}
}

// Sorted returns the items in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Tuple is an ordered list of name parts, e.g. (last, first, middle).
type Tuple []string

// Initial returns the first character of s, or "" for an empty string.
func Initial(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}

// Initials expands t into itself followed by every variant where a non-empty
// subset of its parts is reduced to an initial. A tuple of n parts yields 2^n
// tuples.
func Initials(t Tuple) []Tuple {
	n := len(t)
	out := make([]Tuple, 0, 1<<n)
	for mask := range 1 << n {
		v := make(Tuple, n)
		for i, part := range t {
			if mask&(1<<i) != 0 {
				v[i] = Initial(part)
			} else {
				v[i] = part
			}
		}
		out = append(out, v)
	}
	return out
}

// Join concatenates parts with seps[i] between parts[i] and parts[i+1].
// seps must hold exactly len(parts)-1 entries.
func Join(parts []string, seps []string) string {
	if len(parts) == 0 {
		return ""
	}
	if len(seps) != len(parts)-1 {
		panic("variant: separator count does not match parts")
	}

	var b strings.Builder
	b.WriteString(parts[0])
	for i, sep := range seps {
		b.WriteString(sep)
		b.WriteString(parts[i+1])
	}
	return b.String()
}

// Joins returns t joined once for every way of choosing a separator from
// choices for each gap between parts: len(choices)^(len(t)-1) strings.
func Joins(t Tuple, choices []string) []string {
	if len(t) == 0 {
		return nil
	}
	gaps := len(t) - 1

	total := 1
	for range gaps {
		total *= len(choices)
	}

	out := make([]string, 0, total)
	seps := make([]string, gaps)
	for n := range total {
		// n in base len(choices) picks one separator per gap
		k := n
		for g := gaps - 1; g >= 0; g-- {
			seps[g] = choices[k%len(choices)]
			k /= len(choices)
		}
		out = append(out, Join(t, seps))
	}
	return out
}
