// SPDX-License-Identifier: MIT

package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/grassmann/core"
)

// Format names an interchange format.
type Format string

const (
	FormatGraphML Format = "graphml"
	FormatYAML    Format = "yaml"
)

var (
	// ErrUnknownFormat indicates a path extension or format name with no encoder.
	ErrUnknownFormat = errors.New("export: unknown format")

	// ErrGraphNil indicates a nil graph was passed to an encoder.
	ErrGraphNil = errors.New("export: graph is nil")

	// ErrMalformed indicates input that decodes but does not describe a graph.
	ErrMalformed = errors.New("export: malformed document")
)

// FormatFromPath picks the format from the file extension (case-insensitive).
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".graphml", ".xml":
		return FormatGraphML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}
}

// ParseFormat resolves a format name ("graphml", "yaml"/"yml").
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "graphml", "xml":
		return FormatGraphML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnknownFormat)
	}
}

// Write encodes g to w in the given format.
func Write(w io.Writer, g *core.Graph, f Format) error {
	if g == nil {
		return ErrGraphNil
	}
	switch f {
	case FormatGraphML:
		return writeGraphML(w, g)
	case FormatYAML:
		return writeYAML(w, g)
	default:
		return fmt.Errorf("Write(%q): %w", f, ErrUnknownFormat)
	}
}

// Read decodes a graph from r in the given format.
func Read(r io.Reader, f Format) (*core.Graph, error) {
	switch f {
	case FormatGraphML:
		return readGraphML(r)
	case FormatYAML:
		return readYAML(r)
	default:
		return nil, fmt.Errorf("Read(%q): %w", f, ErrUnknownFormat)
	}
}

// WriteFile creates (or truncates) path and writes g in the format implied by
// its extension.
func WriteFile(path string, g *core.Graph) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if g == nil {
		return ErrGraphNil
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return Write(out, g, f)
}

// ReadFile reads path in the format implied by its extension.
func ReadFile(path string) (*core.Graph, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer in.Close()

	return Read(in, f)
}
