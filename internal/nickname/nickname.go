// Package nickname resolves a first name to its family of informal variants
// (James, Jim, Jimmy, Jimmie, Jamie).
//
// A Store is built once from a stream of (nickname, canonical name) records
// and is read-only afterwards, so it can be shared between goroutines without
// locking. Families are undirected: querying a nickname returns the canonical
// name and every other nickname of the same family.
package nickname

import "github.com/zarlcorp/zbeacon/internal/normalize"

// Store answers family queries over a fully loaded set of name records.
type Store struct {
	// families maps a title-cased name to its sorted family, itself included.
	// members of one family share the same slice.
	families map[string][]string
}

// Siblings returns every other name in the same family as name, sorted.
// The lookup is case-insensitive. Unknown names yield nil.
func (s *Store) Siblings(name string) []string {
	key := normalize.Title(name)
	family := s.lookup(key)
	if len(family) < 2 {
		return nil
	}

	out := make([]string, 0, len(family)-1)
	for _, n := range family {
		if n != key {
			out = append(out, n)
		}
	}
	return out
}

// Family returns the whole family name belongs to, name included, sorted.
// Unknown names yield nil.
func (s *Store) Family(name string) []string {
	family := s.lookup(normalize.Title(name))
	if family == nil {
		return nil
	}
	return append([]string(nil), family...)
}

// Len returns the number of distinct names in the store.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.families)
}

func (s *Store) lookup(key string) []string {
	if s == nil || key == "" {
		return nil
	}
	return s.families[key]
}
