// Package inmemory provides a PieceSource backed by definitions supplied
// directly in code, for tests and for callers assembling custom piece sets
// at runtime.
package inmemory

import (
	"errors"
	"fmt"
	"sort"

	"github.com/arbaregni/pentominoes/pkg/grid"
	"github.com/arbaregni/pentominoes/pkg/ports"
)

// Def is a single piece definition: a name and the row strings of its
// layout, using 'X' for filled cells and '.' for empty ones.
type Def struct {
	Name string
	Rows []string
}

// Source is an immutable in-memory PieceSource.
type Source struct {
	names  []string
	shapes map[string]grid.Shape
}

var _ ports.PieceSource = (*Source)(nil)

// New builds a Source from the given definitions. Every layout is parsed
// and normalized up front, so lookups never fail on malformed data. Names
// must be non-empty and unique.
func New(defs ...Def) (*Source, error) {
	src := &Source{
		names:  make([]string, 0, len(defs)),
		shapes: make(map[string]grid.Shape, len(defs)),
	}
	for _, d := range defs {
		if d.Name == "" {
			return nil, errors.New("piece name must not be empty")
		}
		if _, dup := src.shapes[d.Name]; dup {
			return nil, fmt.Errorf("duplicate piece %q", d.Name)
		}
		shape, err := grid.Parse(d.Rows...)
		if err != nil {
			return nil, fmt.Errorf("piece %q: %w", d.Name, err)
		}
		src.shapes[d.Name] = shape
		src.names = append(src.names, d.Name)
	}
	sort.Strings(src.names)
	return src, nil
}

// Names returns the sorted piece names.
func (s *Source) Names() ([]string, error) {
	return append([]string(nil), s.names...), nil
}

// Shape returns the canonical shape registered under name.
func (s *Source) Shape(name string) (grid.Shape, error) {
	shape, ok := s.shapes[name]
	if !ok {
		return grid.Shape{}, fmt.Errorf("piece %q: %w", name, ports.ErrPieceNotFound)
	}
	return shape, nil
}
