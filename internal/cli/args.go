package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/zarlcorp/zbeacon/internal/identity"
)

// ErrUsage is returned when a command's arguments are wrong.
var ErrUsage = errors.New("usage")

// args is a parsed command line: positional arguments, repeatable value
// flags and boolean switches.
type args struct {
	pos    []string
	values map[string][]string
	flags  map[string]bool
}

// parseArgs splits in into positionals and flags. switches are the boolean
// "--x" flags the command accepts; names in valued take a value, either as
// the next argument or after "=". Any other flag is a usage error.
func parseArgs(in []string, switches, valued []string) (args, error) {
	a := args{values: make(map[string][]string), flags: make(map[string]bool)}

	for i := 0; i < len(in); i++ {
		s := in[i]
		if !strings.HasPrefix(s, "--") || s == "--" {
			a.pos = append(a.pos, s)
			continue
		}

		name, val, hasVal := strings.Cut(s[2:], "=")
		name = strings.ToLower(name)
		switch {
		case slices.Contains(switches, name):
			if hasVal {
				return args{}, fmt.Errorf("--%s takes no value: %w", name, ErrUsage)
			}
			a.flags["--"+name] = true
			continue
		case !slices.Contains(valued, name):
			return args{}, fmt.Errorf("unknown flag --%s: %w", name, ErrUsage)
		}

		if !hasVal {
			if i+1 >= len(in) {
				return args{}, fmt.Errorf("--%s needs a value: %w", name, ErrUsage)
			}
			i++
			val = in[i]
		}
		a.values[name] = append(a.values[name], val)
	}
	return a, nil
}

// value returns the last value given for name.
func (a args) value(name string) string {
	v := a.values[name]
	if len(v) == 0 {
		return ""
	}
	return v[len(v)-1]
}

func (a args) has(flag string) bool {
	return a.flags[flag]
}

// person reads "<first> [middle] <last>" from the positionals.
func (a args) person() (identity.Person, error) {
	switch len(a.pos) {
	case 2:
		return identity.Person{FirstName: a.pos[0], LastName: a.pos[1]}, nil
	case 3:
		return identity.Person{FirstName: a.pos[0], MiddleName: a.pos[1], LastName: a.pos[2]}, nil
	default:
		return identity.Person{}, fmt.Errorf("want <first> [middle] <last>, got %d names: %w", len(a.pos), ErrUsage)
	}
}
