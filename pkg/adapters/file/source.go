// Package file provides a PieceSource that reads piece definitions from a
// directory of YAML documents, one piece per file.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/arbaregni/pentominoes/pkg/grid"
	"github.com/arbaregni/pentominoes/pkg/ports"
)

// pieceDoc mirrors the on-disk document: a piece name and the row strings
// of its layout ('X' filled, '.' empty). Unknown keys are rejected at
// decode time so typos don't silently vanish.
type pieceDoc struct {
	Name string   `mapstructure:"name"`
	Rows []string `mapstructure:"rows"`
}

// Source implements ports.PieceSource over a directory of *.yaml / *.yml
// files. The directory is read once at construction and the source is
// immutable afterwards, so later edits to the files are not observed.
type Source struct {
	names  []string
	shapes map[string]grid.Shape
}

var _ ports.PieceSource = (*Source)(nil)

// New reads every YAML document under dir and parses each into a named
// shape. Files with other extensions and subdirectories are ignored.
func New(dir string) (*Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read piece directory: %w", err)
	}

	src := &Source{shapes: make(map[string]grid.Shape)}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		name, shape, err := ReadPiece(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		if _, dup := src.shapes[name]; dup {
			return nil, fmt.Errorf("%s: duplicate piece %q", entry.Name(), name)
		}
		src.shapes[name] = shape
		src.names = append(src.names, name)
	}
	sort.Strings(src.names)
	return src, nil
}

// ReadPiece parses a single piece document and returns its name and
// canonical shape.
func ReadPiece(path string) (string, grid.Shape, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", grid.Shape{}, fmt.Errorf("failed to read piece file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return "", grid.Shape{}, fmt.Errorf("failed to parse piece file: %w", err)
	}

	var doc pieceDoc
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &doc,
		ErrorUnused: true,
	})
	if err != nil {
		return "", grid.Shape{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return "", grid.Shape{}, fmt.Errorf("failed to decode piece document: %w", err)
	}

	if doc.Name == "" {
		return "", grid.Shape{}, fmt.Errorf("piece document missing name")
	}
	if len(doc.Rows) == 0 {
		return "", grid.Shape{}, fmt.Errorf("piece %q has no rows", doc.Name)
	}
	shape, err := grid.Parse(doc.Rows...)
	if err != nil {
		return "", grid.Shape{}, fmt.Errorf("piece %q: %w", doc.Name, err)
	}
	return doc.Name, shape, nil
}

// Names returns the sorted names of every piece found in the directory.
func (s *Source) Names() ([]string, error) {
	return append([]string(nil), s.names...), nil
}

// Shape returns the canonical shape loaded for name.
func (s *Source) Shape(name string) (grid.Shape, error) {
	shape, ok := s.shapes[name]
	if !ok {
		return grid.Shape{}, fmt.Errorf("piece %q: %w", name, ports.ErrPieceNotFound)
	}
	return shape, nil
}
