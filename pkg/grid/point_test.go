package grid_test

import (
	"testing"

	"github.com/arbaregni/pentominoes/pkg/grid"
	"github.com/stretchr/testify/assert"
)

func TestPointAdd(t *testing.T) {
	p := grid.Pt(3, 5)
	v := grid.Vec{X: -1, Y: 7}

	assert.Equal(t, grid.Pt(2, 12), p.Add(v))
}

func TestPointSub(t *testing.T) {
	p := grid.Pt(3, 5)
	q := grid.Pt(-1, 7)

	assert.Equal(t, grid.Vec{X: 4, Y: -2}, p.Sub(q))
}

func TestPointSubThenAddRoundTrips(t *testing.T) {
	p := grid.Pt(-4, 9)
	q := grid.Pt(7, -2)

	assert.Equal(t, p, q.Add(p.Sub(q)))
}

func TestVecArithmetic(t *testing.T) {
	v := grid.Vec{X: 2, Y: -3}
	w := grid.Vec{X: -5, Y: 1}

	assert.Equal(t, grid.Vec{X: -3, Y: -2}, v.Add(w))
	assert.Equal(t, grid.Vec{X: 7, Y: -4}, v.Sub(w))
}

func TestOrigin(t *testing.T) {
	assert.Equal(t, grid.Pt(0, 0), grid.Origin())
	assert.Equal(t, "(0,0)", grid.Origin().String())
	assert.Equal(t, "(-2,13)", grid.Pt(-2, 13).String())
}
