// Package symmetry implements the rigid symmetries of the integer grid
// plane: the 8-element dihedral group of rotations and reflections that fix
// the origin, and the orbit of a shape under that group.
package symmetry

import (
	"fmt"

	"github.com/arbaregni/pentominoes/pkg/grid"
)

// groupOrder is the number of rigid symmetries of the square grid.
const groupOrder = 8

// Transform is a rigid symmetry of the grid plane: a linear map that fixes
// the origin and preserves grid adjacency. It is stored as a 3x3 homogeneous
// integer matrix whose third row is always [0 0 1]; the translation column
// is unused by the canonical symmetries but keeps the representation closed
// under future affine composition.
//
// Transform is a comparable value type: two transforms are equal exactly
// when their matrices are equal.
type Transform struct {
	m [3][3]int
}

// Identity returns the transform that leaves every point in place.
func Identity() Transform {
	return Transform{m: [3][3]int{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

// MirrorHorizontal returns the left-right reflection, mapping (x, y) to
// (-x, y).
func MirrorHorizontal() Transform {
	return Transform{m: [3][3]int{
		{-1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

// MirrorVertical returns the top-bottom reflection, mapping (x, y) to
// (x, -y).
func MirrorVertical() Transform {
	return Transform{m: [3][3]int{
		{1, 0, 0},
		{0, -1, 0},
		{0, 0, 1},
	}}
}

// MirrorDiagonal returns the reflection across the falling diagonal,
// mapping (x, y) to (-y, -x).
func MirrorDiagonal() Transform {
	return Transform{m: [3][3]int{
		{0, -1, 0},
		{-1, 0, 0},
		{0, 0, 1},
	}}
}

// MirrorDiagonal2 returns the reflection across the rising diagonal,
// mapping (x, y) to (y, x).
func MirrorDiagonal2() Transform {
	return Transform{m: [3][3]int{
		{0, 1, 0},
		{1, 0, 0},
		{0, 0, 1},
	}}
}

// Rotate90 returns the quarter turn counterclockwise about the origin.
// Y grows downward on this grid, so the map is (x, y) to (y, -x).
func Rotate90() Transform {
	return Transform{m: [3][3]int{
		{0, 1, 0},
		{-1, 0, 0},
		{0, 0, 1},
	}}
}

// Rotate180 returns the half turn about the origin, mapping (x, y) to
// (-x, -y).
func Rotate180() Transform {
	return Transform{m: [3][3]int{
		{-1, 0, 0},
		{0, -1, 0},
		{0, 0, 1},
	}}
}

// Rotate270 returns the three-quarter turn counterclockwise about the
// origin, mapping (x, y) to (-y, x).
func Rotate270() Transform {
	return Transform{m: [3][3]int{
		{0, -1, 0},
		{1, 0, 0},
		{0, 0, 1},
	}}
}

// Symmetries returns all 8 rigid symmetries of the grid: the identity, the
// four reflections, and the three non-trivial rotations. The identity comes
// first and the order is fixed, so callers may rely on it for deterministic
// enumeration.
func Symmetries() []Transform {
	return []Transform{
		Identity(),
		MirrorHorizontal(),
		MirrorVertical(),
		MirrorDiagonal(),
		MirrorDiagonal2(),
		Rotate90(),
		Rotate180(),
		Rotate270(),
	}
}

// String returns the conventional name of a canonical symmetry, or the raw
// matrix for any other transform.
func (t Transform) String() string {
	switch t {
	case Identity():
		return "Identity"
	case MirrorHorizontal():
		return "MirrorHorizontal"
	case MirrorVertical():
		return "MirrorVertical"
	case MirrorDiagonal():
		return "MirrorDiagonal"
	case MirrorDiagonal2():
		return "MirrorDiagonal2"
	case Rotate90():
		return "Rotate90"
	case Rotate180():
		return "Rotate180"
	case Rotate270():
		return "Rotate270"
	}
	return fmt.Sprintf("Transform(%v)", t.m)
}

// Apply maps a single point through the transform using exact integer
// arithmetic.
func (t Transform) Apply(p grid.Point) grid.Point {
	return grid.Point{
		X: t.m[0][0]*p.X + t.m[0][1]*p.Y + t.m[0][2],
		Y: t.m[1][0]*p.X + t.m[1][1]*p.Y + t.m[1][2],
	}
}

// Then composes two transforms in application order: the result applies t
// first and then u. Composition is matrix multiplication, so it is
// associative, and composing any two canonical symmetries yields another
// canonical symmetry (the group is closed).
func (t Transform) Then(u Transform) Transform {
	var out Transform
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0
			for k := 0; k < 3; k++ {
				sum += u.m[i][k] * t.m[k][j]
			}
			out.m[i][j] = sum
		}
	}
	return out
}

// ApplyShape maps every filled cell of s through the transform and returns
// the canonical result. Re-normalization is required because a rotation or
// reflection generally moves the bounding box away from the origin. The
// empty shape maps to itself.
func (t Transform) ApplyShape(s grid.Shape) grid.Shape {
	cells := s.Cells()
	for i, c := range cells {
		cells[i] = t.Apply(c)
	}
	return grid.NewShape(cells...)
}
