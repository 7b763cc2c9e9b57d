package grid

import "fmt"

// Point is a position on the unbounded integer grid.
// X grows to the right and Y grows downward (screen convention), matching
// how rectangular layouts are indexed: row = Y, column = X.
type Point struct {
	X int
	Y int
}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Origin returns the point (0,0).
func Origin() Point {
	return Point{}
}

// Add returns the point shifted by the displacement v.
func (p Point) Add(v Vec) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the displacement that carries q onto p.
func (p Point) Sub(q Point) Vec {
	return Vec{X: p.X - q.X, Y: p.Y - q.Y}
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Vec is a displacement between two grid points.
type Vec struct {
	X int
	Y int
}

// Add returns the sum of two displacements.
func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two displacements.
func (v Vec) Sub(w Vec) Vec {
	return Vec{X: v.X - w.X, Y: v.Y - w.Y}
}
