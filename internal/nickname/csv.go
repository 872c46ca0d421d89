package nickname

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// csvSource reads "nickname,canonical[,weight]" rows. Lines starting with #
// are comments; blank lines are skipped.
type csvSource struct {
	r *csv.Reader
}

// NewCSVSource returns a Source reading CSV rows from r.
func NewCSVSource(r io.Reader) Source {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	return &csvSource{r: cr}
}

func (s *csvSource) Next() (Record, error) {
	row, err := s.r.Read()
	if errors.Is(err, io.EOF) {
		return Record{}, io.EOF
	}
	if err != nil {
		return Record{}, fmt.Errorf("read csv: %w", err)
	}

	line, _ := s.r.FieldPos(0)
	if len(row) < 2 {
		return Record{}, fmt.Errorf("line %d: want at least 2 fields, got %d: %w", line, len(row), ErrMalformedRecord)
	}

	weight := 1.0
	if len(row) > 2 {
		w, ok := parseWeight(row[2])
		if !ok {
			return Record{}, fmt.Errorf("line %d: weight %q: %w", line, row[2], ErrMalformedRecord)
		}
		weight = w
	}

	return Record{
		Nickname:  row[0],
		Canonical: row[1],
		Weight:    weight,
		Line:      line,
	}, nil
}

// parseWeight reads the optional weight column. Empty means certain.
func parseWeight(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 1, true
	}
	w, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return w, true
}
