package nickname

import (
	"bytes"
	_ "embed"
	"fmt"
)

//go:embed nicknames.csv
var defaultData []byte

// FileReader reads a named file. zfilesystem filesystems satisfy it.
type FileReader interface {
	ReadFile(name string) ([]byte, error)
}

// Default loads the bundled nickname dataset.
func Default(opts ...Option) (*Store, error) {
	return Load(NewCSVSource(bytes.NewReader(defaultData)), opts...)
}

// LoadFile loads a CSV nickname file from fsys.
func LoadFile(fsys FileReader, name string, opts ...Option) (*Store, error) {
	data, err := fsys.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read nickname file %s: %w", name, err)
	}

	s, err := Load(NewCSVSource(bytes.NewReader(data)), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}
