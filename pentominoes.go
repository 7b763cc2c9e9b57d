package pentominoes

import (
	"fmt"

	"github.com/arbaregni/pentominoes/internal/catalog"
	"github.com/arbaregni/pentominoes/pkg/grid"
	"github.com/arbaregni/pentominoes/pkg/ports"
	"github.com/arbaregni/pentominoes/pkg/symmetry"
)

// Piece is a named entry of the catalog together with its canonical shape.
// The zero Piece is empty but safe to use.
type Piece struct {
	name  string
	shape grid.Shape
}

// Name returns the piece's catalog name.
func (p Piece) Name() string { return p.name }

// Shape returns the piece's canonical shape.
func (p Piece) Shape() grid.Shape { return p.shape }

// Orientations enumerates every geometrically distinct orientation of the
// piece, the piece's own canonical form first.
func (p Piece) Orientations() []grid.Shape {
	return symmetry.Orientations(p.shape)
}

// Catalog is the high-level entry point for the pentominoes library: an
// immutable, name-indexed set of pieces loaded from a PieceSource.
type Catalog struct {
	source ports.PieceSource
	pieces []Piece
	byName map[string]Piece
}

// Option defines a functional option for configuring Load.
type Option func(*Catalog)

// WithSource injects a custom PieceSource, bypassing the embedded default
// catalog. Useful for tests and for applications with their own piece sets.
func WithSource(src ports.PieceSource) Option {
	return func(c *Catalog) {
		c.source = src
	}
}

// Load builds a Catalog from the configured source, defaulting to the
// embedded set of the 12 classic pentominoes. Every listed piece is resolved
// eagerly, so a loaded Catalog never fails on lookup of a listed name.
func Load(opts ...Option) (*Catalog, error) {
	c := &Catalog{}
	for _, opt := range opts {
		opt(c)
	}

	if c.source == nil {
		src, err := catalog.Embedded()
		if err != nil {
			return nil, fmt.Errorf("failed to load embedded catalog: %w", err)
		}
		c.source = src
	}

	names, err := c.source.Names()
	if err != nil {
		return nil, fmt.Errorf("failed to list pieces: %w", err)
	}

	c.pieces = make([]Piece, 0, len(names))
	c.byName = make(map[string]Piece, len(names))
	for _, name := range names {
		if _, dup := c.byName[name]; dup {
			return nil, fmt.Errorf("source listed piece %q twice", name)
		}
		shape, err := c.source.Shape(name)
		if err != nil {
			return nil, fmt.Errorf("failed to load piece %q: %w", name, err)
		}
		p := Piece{name: name, shape: shape}
		c.pieces = append(c.pieces, p)
		c.byName[name] = p
	}
	return c, nil
}

// Pieces returns all pieces in source order.
func (c *Catalog) Pieces() []Piece {
	return append([]Piece(nil), c.pieces...)
}

// Names returns the piece names in source order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.pieces))
	for i, p := range c.pieces {
		names[i] = p.Name()
	}
	return names
}

// Get returns the piece registered under name.
func (c *Catalog) Get(name string) (Piece, error) {
	p, ok := c.byName[name]
	if !ok {
		return Piece{}, fmt.Errorf("piece %q: %w", name, ports.ErrPieceNotFound)
	}
	return p, nil
}

// Len returns the number of pieces in the catalog.
func (c *Catalog) Len() int {
	return len(c.pieces)
}

// Source returns the underlying PieceSource used by the catalog.
func (c *Catalog) Source() ports.PieceSource {
	return c.source
}
