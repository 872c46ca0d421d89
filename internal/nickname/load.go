package nickname

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/zarlcorp/zbeacon/internal/normalize"
)

// ErrMalformedRecord is returned when a record lacks a name or carries an
// unreadable weight. A malformed record aborts the whole load.
var ErrMalformedRecord = errors.New("malformed nickname record")

// Record links a nickname to the name it is short for.
type Record struct {
	Nickname  string
	Canonical string
	// Weight is the likelihood that Nickname stands for Canonical, 0..1.
	Weight float64
	// Line is the position in the source, for error messages. Zero if unknown.
	Line int
}

// Source yields records until it returns io.EOF.
type Source interface {
	Next() (Record, error)
}

// Option configures a load.
type Option func(*loadConfig)

type loadConfig struct {
	minWeight float64
}

// WithMinWeight skips records whose weight is below w.
func WithMinWeight(w float64) Option {
	return func(c *loadConfig) {
		c.minWeight = w
	}
}

// Load drains src and builds a Store. Records are merged transitively: two
// records sharing any name end up in one family regardless of load order.
func Load(src Source, opts ...Option) (*Store, error) {
	var cfg loadConfig
	for _, o := range opts {
		o(&cfg)
	}

	f := newForest()
	for {
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("load nicknames: %w", err)
		}

		nick := normalize.Title(rec.Nickname)
		canonical := normalize.Title(rec.Canonical)
		if nick == "" || canonical == "" {
			return nil, fmt.Errorf("load nicknames: line %d: %w", rec.Line, ErrMalformedRecord)
		}
		if rec.Weight < cfg.minWeight {
			continue
		}

		f.union(canonical, nick)
	}

	return &Store{families: f.families()}, nil
}

// sliceSource replays a fixed list of records.
type sliceSource struct {
	records []Record
	pos     int
}

// Records returns a Source over recs.
func Records(recs ...Record) Source {
	return &sliceSource{records: recs}
}

func (s *sliceSource) Next() (Record, error) {
	if s.pos >= len(s.records) {
		return Record{}, io.EOF
	}
	r := s.records[s.pos]
	s.pos++
	if r.Line == 0 {
		r.Line = s.pos
	}
	return r, nil
}

// forest is a union-find over title-cased names.
type forest struct {
	parent map[string]string
	size   map[string]int
}

func newForest() *forest {
	return &forest{
		parent: make(map[string]string),
		size:   make(map[string]int),
	}
}

func (f *forest) add(k string) {
	if _, ok := f.parent[k]; !ok {
		f.parent[k] = k
		f.size[k] = 1
	}
}

func (f *forest) find(k string) string {
	root := k
	for f.parent[root] != root {
		root = f.parent[root]
	}
	// path compression
	for k != root {
		next := f.parent[k]
		f.parent[k] = root
		k = next
	}
	return root
}

func (f *forest) union(a, b string) {
	f.add(a)
	f.add(b)

	ra, rb := f.find(a), f.find(b)
	if ra == rb {
		return
	}
	if f.size[ra] < f.size[rb] {
		ra, rb = rb, ra
	}
	f.parent[rb] = ra
	f.size[ra] += f.size[rb]
}

// families groups every name by root and returns name -> sorted family.
func (f *forest) families() map[string][]string {
	groups := make(map[string][]string)
	for name := range f.parent {
		root := f.find(name)
		groups[root] = append(groups[root], name)
	}

	out := make(map[string][]string, len(f.parent))
	for _, members := range groups {
		sort.Strings(members)
		for _, name := range members {
			out[name] = members
		}
	}
	return out
}
