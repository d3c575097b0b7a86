// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/vm/memory"
)

// ErrEmptyROM is returned for ROM files without any content.
var ErrEmptyROM = errors.New("ROM is empty")

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the raw CHIP-8 ROM image from the given file.
// ROMs that do not fit into program space are rejected with an error
// wrapping memory.ErrROMTooLarge.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return l.Read(file)
}

// Read reads a raw CHIP-8 ROM image from the reader.
func (l *Loader) Read(reader io.Reader) ([]byte, error) {
	// one byte more than fits to detect oversized ROMs without reading them fully
	data, err := io.ReadAll(io.LimitReader(reader, memory.MaxROMSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading ROM: %w", err)
	}

	switch {
	case len(data) == 0:
		return nil, ErrEmptyROM
	case len(data) > memory.MaxROMSize:
		return nil, fmt.Errorf("%w: more than %d bytes", memory.ErrROMTooLarge, memory.MaxROMSize)
	}
	return data, nil
}
