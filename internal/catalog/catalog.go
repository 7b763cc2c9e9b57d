// Package catalog embeds the default piece set: the 12 classic pentominoes,
// compiled into the binary so the tool works with no configuration at all.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/arbaregni/pentominoes/pkg/grid"
	"github.com/arbaregni/pentominoes/pkg/ports"
)

//go:embed pieces.yaml
var piecesYAML []byte

type pieceDoc struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

type catalogDoc struct {
	Pieces []pieceDoc `yaml:"pieces"`
}

// Source is the PieceSource backed by the embedded piece data.
type Source struct {
	names  []string
	shapes map[string]grid.Shape
}

var _ ports.PieceSource = (*Source)(nil)

// Embedded parses the built-in piece data. The data ships inside the
// binary, so an error here means a broken build, not bad user input.
func Embedded() (*Source, error) {
	var doc catalogDoc
	if err := yaml.Unmarshal(piecesYAML, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse embedded piece data: %w", err)
	}

	src := &Source{
		names:  make([]string, 0, len(doc.Pieces)),
		shapes: make(map[string]grid.Shape, len(doc.Pieces)),
	}
	for _, p := range doc.Pieces {
		if p.Name == "" {
			return nil, fmt.Errorf("embedded piece with empty name")
		}
		if _, dup := src.shapes[p.Name]; dup {
			return nil, fmt.Errorf("embedded piece %q defined twice", p.Name)
		}
		shape, err := grid.Parse(p.Rows...)
		if err != nil {
			return nil, fmt.Errorf("embedded piece %q: %w", p.Name, err)
		}
		src.shapes[p.Name] = shape
		src.names = append(src.names, p.Name)
	}
	sort.Strings(src.names)
	return src, nil
}

// Names returns the piece names in letter order.
func (s *Source) Names() ([]string, error) {
	return append([]string(nil), s.names...), nil
}

// Shape returns the canonical shape of the named piece.
func (s *Source) Shape(name string) (grid.Shape, error) {
	shape, ok := s.shapes[name]
	if !ok {
		return grid.Shape{}, fmt.Errorf("piece %q: %w", name, ports.ErrPieceNotFound)
	}
	return shape, nil
}
