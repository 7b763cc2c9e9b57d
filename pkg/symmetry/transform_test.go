package symmetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbaregni/pentominoes/pkg/grid"
	"github.com/arbaregni/pentominoes/pkg/symmetry"
)

func TestApplyPoint(t *testing.T) {
	tests := []struct {
		name string
		tr   symmetry.Transform
		in   grid.Point
		want grid.Point
	}{
		{"identity", symmetry.Identity(), grid.Pt(1, 2), grid.Pt(1, 2)},
		{"mirror horizontal", symmetry.MirrorHorizontal(), grid.Pt(1, 2), grid.Pt(-1, 2)},
		{"mirror vertical", symmetry.MirrorVertical(), grid.Pt(1, 2), grid.Pt(1, -2)},
		{"mirror diagonal", symmetry.MirrorDiagonal(), grid.Pt(1, 2), grid.Pt(-2, -1)},
		{"mirror diagonal 2", symmetry.MirrorDiagonal2(), grid.Pt(1, 2), grid.Pt(2, 1)},
		{"rotate 90", symmetry.Rotate90(), grid.Pt(1, 2), grid.Pt(2, -1)},
		{"rotate 90 sends down to right", symmetry.Rotate90(), grid.Pt(0, 1), grid.Pt(1, 0)},
		{"rotate 90 sends right to up", symmetry.Rotate90(), grid.Pt(1, 0), grid.Pt(0, -1)},
		{"rotate 180", symmetry.Rotate180(), grid.Pt(1, 2), grid.Pt(-1, -2)},
		{"rotate 270", symmetry.Rotate270(), grid.Pt(1, 2), grid.Pt(-2, 1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.tr.Apply(tc.in))
		})
	}
}

func TestApplyPointFixesOrigin(t *testing.T) {
	for _, tr := range symmetry.Symmetries() {
		assert.Equal(t, grid.Origin(), tr.Apply(grid.Origin()))
	}
}

func TestApplyShape(t *testing.T) {
	// An L shaped tetromino: no reflection or rotation maps it onto itself,
	// so every symmetry produces a recognizably different picture.
	ell := grid.MustParse(
		"X.",
		"X.",
		"XX",
	)
	tests := []struct {
		name string
		tr   symmetry.Transform
		want grid.Shape
	}{
		{"identity", symmetry.Identity(), grid.MustParse(
			"X.",
			"X.",
			"XX",
		)},
		{"mirror horizontal", symmetry.MirrorHorizontal(), grid.MustParse(
			".X",
			".X",
			"XX",
		)},
		{"mirror vertical", symmetry.MirrorVertical(), grid.MustParse(
			"XX",
			"X.",
			"X.",
		)},
		{"mirror diagonal", symmetry.MirrorDiagonal(), grid.MustParse(
			"X..",
			"XXX",
		)},
		{"mirror diagonal 2", symmetry.MirrorDiagonal2(), grid.MustParse(
			"XXX",
			"..X",
		)},
		{"rotate 90", symmetry.Rotate90(), grid.MustParse(
			"..X",
			"XXX",
		)},
		{"rotate 180", symmetry.Rotate180(), grid.MustParse(
			"XX",
			".X",
			".X",
		)},
		{"rotate 270", symmetry.Rotate270(), grid.MustParse(
			"XXX",
			"X..",
		)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.tr.ApplyShape(ell))
		})
	}
}

func TestApplyShapeEmpty(t *testing.T) {
	for _, tr := range symmetry.Symmetries() {
		got := tr.ApplyShape(grid.Shape{})
		assert.Equal(t, 0, got.Len())
	}
}

func TestApplyShapeResultIsCanonical(t *testing.T) {
	s := grid.MustParse(
		"XX",
		"X.",
	)
	for _, tr := range symmetry.Symmetries() {
		got := tr.ApplyShape(s)
		// Re-normalizing must be a no-op on an already canonical shape.
		assert.Equal(t, got, grid.NewShape(got.Cells()...))
	}
}

func TestCompositionIdentities(t *testing.T) {
	r := symmetry.Rotate90()
	h := symmetry.MirrorHorizontal()

	assert.Equal(t, symmetry.Rotate180(), r.Then(r))
	assert.Equal(t, symmetry.Rotate270(), r.Then(r).Then(r))
	assert.Equal(t, symmetry.Identity(), r.Then(r).Then(r).Then(r))
	assert.Equal(t, symmetry.Identity(), h.Then(h))
	assert.Equal(t, symmetry.MirrorDiagonal(), r.Then(h))
	assert.Equal(t, symmetry.MirrorVertical(), r.Then(r).Then(h))
	assert.Equal(t, symmetry.MirrorDiagonal2(), r.Then(r).Then(r).Then(h))
}

func TestThenAppliesLeftOperandFirst(t *testing.T) {
	// Reflections and rotations do not commute, so the order of
	// composition is observable on any off-axis point.
	r := symmetry.Rotate90()
	h := symmetry.MirrorHorizontal()
	p := grid.Pt(1, 2)

	assert.Equal(t, h.Apply(r.Apply(p)), r.Then(h).Apply(p))
	assert.Equal(t, r.Apply(h.Apply(p)), h.Then(r).Apply(p))
	assert.NotEqual(t, r.Then(h), h.Then(r))
}

func TestGroupClosure(t *testing.T) {
	all := symmetry.Symmetries()
	require.Len(t, all, 8)

	samples := []grid.Point{
		grid.Origin(),
		grid.Pt(1, 0),
		grid.Pt(0, 1),
		grid.Pt(3, -2),
	}
	for _, a := range all {
		for _, b := range all {
			c := a.Then(b)
			assert.Contains(t, all, c)
			for _, p := range samples {
				assert.Equal(t, b.Apply(a.Apply(p)), c.Apply(p))
			}
		}
	}
}

func TestEverySymmetryHasAnInverse(t *testing.T) {
	all := symmetry.Symmetries()
	for _, a := range all {
		found := false
		for _, b := range all {
			if a.Then(b) == symmetry.Identity() {
				found = true
				break
			}
		}
		assert.True(t, found, "no inverse for %v", a)
	}
}

func TestSymmetriesOrder(t *testing.T) {
	all := symmetry.Symmetries()
	require.Len(t, all, 8)
	assert.Equal(t, symmetry.Identity(), all[0])

	want := []symmetry.Transform{
		symmetry.Identity(),
		symmetry.MirrorHorizontal(),
		symmetry.MirrorVertical(),
		symmetry.MirrorDiagonal(),
		symmetry.MirrorDiagonal2(),
		symmetry.Rotate90(),
		symmetry.Rotate180(),
		symmetry.Rotate270(),
	}
	assert.Equal(t, want, all)
}

func TestSymmetriesDistinct(t *testing.T) {
	all := symmetry.Symmetries()
	for i, a := range all {
		for j, b := range all {
			if i == j {
				continue
			}
			assert.NotEqual(t, a, b, "symmetries %d and %d coincide", i, j)
		}
	}
}

func TestTransformString(t *testing.T) {
	names := make(map[string]struct{})
	for _, tr := range symmetry.Symmetries() {
		name := tr.String()
		assert.NotEmpty(t, name)
		assert.NotContains(t, name, "Transform(")
		names[name] = struct{}{}
	}
	assert.Len(t, names, 8, "every symmetry should have a distinct name")

	assert.Equal(t, "Rotate90", symmetry.Rotate90().String())
	assert.Equal(t, "MirrorDiagonal2", symmetry.MirrorDiagonal2().String())
}
