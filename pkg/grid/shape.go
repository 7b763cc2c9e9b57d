package grid

import (
	"fmt"
	"sort"
	"strings"
)

// Tile marks a single cell of a rectangular layout.
type Tile uint8

const (
	// Empty marks a cell that is not part of a shape.
	Empty Tile = iota
	// Filled marks a cell occupied by a shape.
	Filled
)

// Marker runes for the textual layout form accepted by Parse and produced
// by Shape.Rows.
const (
	markerFilled = 'X'
	markerEmpty  = '.'
)

// Shape is a finite set of filled cells on the unbounded grid, held in
// canonical form: cells are translated so that the minimum X and minimum Y
// are both exactly zero, sorted by (X, Y) ascending, and deduplicated.
// Two shapes that differ only by translation are therefore equal in value,
// while any rotation or reflection that changes the cell pattern is not.
//
// A Shape is immutable once constructed. The zero value is the empty shape,
// which is a valid shape with no cells.
type Shape struct {
	cells []Point
}

// NewShape builds the canonical shape covering the given cells. Input
// order, duplicate entries and the quadrant the cells occupy do not matter;
// the result always satisfies the canonical-form invariant.
func NewShape(cells ...Point) Shape {
	if len(cells) == 0 {
		return Shape{}
	}

	minX, minY := cells[0].X, cells[0].Y
	for _, c := range cells[1:] {
		if c.X < minX {
			minX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
	}

	normalized := make([]Point, len(cells))
	for i, c := range cells {
		normalized[i] = Point{X: c.X - minX, Y: c.Y - minY}
	}

	sort.Slice(normalized, func(i, j int) bool {
		if normalized[i].X != normalized[j].X {
			return normalized[i].X < normalized[j].X
		}
		return normalized[i].Y < normalized[j].Y
	})

	// Compact exact duplicates in place; the slice is already sorted.
	deduped := normalized[:1]
	for _, c := range normalized[1:] {
		if c != deduped[len(deduped)-1] {
			deduped = append(deduped, c)
		}
	}

	return Shape{cells: deduped}
}

// FromTiles builds a shape from a rectangular grid of markers. The row
// index becomes the Y coordinate and the column index the X coordinate, so
// the first row of the layout is the top of the shape.
func FromTiles(rows [][]Tile) Shape {
	var cells []Point
	for y, row := range rows {
		for x, t := range row {
			if t == Filled {
				cells = append(cells, Point{X: x, Y: y})
			}
		}
	}
	return NewShape(cells...)
}

// Parse builds a shape from marker strings, one string per grid row:
// 'X' is a filled cell and '.' an empty one. It is the textual counterpart
// of FromTiles and fails only on an unexpected character.
func Parse(rows ...string) (Shape, error) {
	var cells []Point
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case markerFilled:
				cells = append(cells, Point{X: x, Y: y})
			case markerEmpty:
			default:
				return Shape{}, fmt.Errorf("row %d: unexpected character %q (want %q or %q)",
					y, row[x], markerFilled, markerEmpty)
			}
		}
	}
	return NewShape(cells...), nil
}

// MustParse is Parse for known-good layout literals; it panics on error.
func MustParse(rows ...string) Shape {
	s, err := Parse(rows...)
	if err != nil {
		panic(err)
	}
	return s
}

// Cells returns the filled cells in canonical order. The returned slice is
// a copy; mutating it does not affect the shape.
func (s Shape) Cells() []Point {
	out := make([]Point, len(s.cells))
	copy(out, s.cells)
	return out
}

// Len returns the number of filled cells.
func (s Shape) Len() int {
	return len(s.cells)
}

// Contains reports whether the cell at p is filled.
func (s Shape) Contains(p Point) bool {
	for _, c := range s.cells {
		if c == p {
			return true
		}
		// Cells are sorted by (X, Y); nothing after this can match.
		if c.X > p.X || (c.X == p.X && c.Y > p.Y) {
			return false
		}
	}
	return false
}

// At returns the marker at p: Filled exactly when the cell belongs to the
// shape. It is a convenience view over Contains for callers that walk
// rectangular regions.
func (s Shape) At(p Point) Tile {
	if s.Contains(p) {
		return Filled
	}
	return Empty
}

// Equal reports whether both shapes fill exactly the same cells. Because
// both sides are canonical, this is a plain sequence comparison.
func (s Shape) Equal(t Shape) bool {
	if len(s.cells) != len(t.cells) {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != t.cells[i] {
			return false
		}
	}
	return true
}

// Width returns the horizontal extent of the bounding box, zero for the
// empty shape.
func (s Shape) Width() int {
	if len(s.cells) == 0 {
		return 0
	}
	// Canonical order sorts by X first, so the last cell has the maximum X.
	return s.cells[len(s.cells)-1].X + 1
}

// Height returns the vertical extent of the bounding box, zero for the
// empty shape.
func (s Shape) Height() int {
	max := -1
	for _, c := range s.cells {
		if c.Y > max {
			max = c.Y
		}
	}
	return max + 1
}

// Rows returns the shape as marker strings, the inverse of Parse. The
// empty shape yields no rows.
func (s Shape) Rows() []string {
	h := s.Height()
	w := s.Width()
	rows := make([]string, 0, h)
	for y := 0; y < h; y++ {
		var b strings.Builder
		for x := 0; x < w; x++ {
			if s.Contains(Point{X: x, Y: y}) {
				b.WriteByte(markerFilled)
			} else {
				b.WriteByte(markerEmpty)
			}
		}
		rows = append(rows, b.String())
	}
	return rows
}

// String returns the canonical cell list, e.g. "(0,0),(1,0),(1,1)". Two
// shapes are equal exactly when their String forms are equal, which makes
// the result usable as a deduplication key.
func (s Shape) String() string {
	var b strings.Builder
	for i, c := range s.cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(c.String())
	}
	return b.String()
}
