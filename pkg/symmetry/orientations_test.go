package symmetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbaregni/pentominoes/pkg/grid"
	"github.com/arbaregni/pentominoes/pkg/symmetry"
)

func TestOrientationsAsymmetricShape(t *testing.T) {
	ell := grid.MustParse(
		"X.",
		"X.",
		"XX",
	)
	got := symmetry.Orientations(ell)

	require.Len(t, got, 8)
	assert.Equal(t, ell, got[0])
	assertAllDistinct(t, got)
}

func TestOrientationsFullySymmetricShape(t *testing.T) {
	square := grid.MustParse(
		"XX",
		"XX",
	)
	got := symmetry.Orientations(square)

	require.Len(t, got, 1)
	assert.Equal(t, square, got[0])
}

func TestOrientationsLineShape(t *testing.T) {
	line := grid.MustParse(
		"X",
		"X",
		"X",
	)
	got := symmetry.Orientations(line)

	require.Len(t, got, 2)
	assert.Equal(t, line, got[0])
	assert.Equal(t, grid.MustParse("XXX"), got[1])
}

func TestOrientationsMirrorSymmetricShape(t *testing.T) {
	tee := grid.MustParse(
		"XXX",
		".X.",
	)
	got := symmetry.Orientations(tee)

	require.Len(t, got, 4)
	assert.Equal(t, tee, got[0])
	assertAllDistinct(t, got)
}

func TestOrientationsPlusShape(t *testing.T) {
	plus := grid.MustParse(
		".X.",
		"XXX",
		".X.",
	)
	got := symmetry.Orientations(plus)

	require.Len(t, got, 1)
	assert.Equal(t, plus, got[0])
}

func TestOrientationsSingleCell(t *testing.T) {
	got := symmetry.Orientations(grid.NewShape(grid.Origin()))
	require.Len(t, got, 1)
}

func TestOrientationsEmptyShape(t *testing.T) {
	got := symmetry.Orientations(grid.Shape{})
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].Len())
}

func TestOrientationCountDividesGroupOrder(t *testing.T) {
	shapes := []grid.Shape{
		{},
		grid.NewShape(grid.Origin()),
		grid.MustParse("XX"),
		grid.MustParse("X.", "XX"),
		grid.MustParse("X.", "X.", "XX"),
		grid.MustParse("XXX", ".X."),
		grid.MustParse(".X.", "XXX", ".X."),
		grid.MustParse("XX.", ".X.", ".XX"),
		grid.MustParse("X..", "XX.", ".XX"),
		grid.MustParse(".XX", "XX.", ".X."),
	}
	for _, s := range shapes {
		n := len(symmetry.Orientations(s))
		assert.Zerof(t, 8%n, "orbit of %q has size %d", s, n)
	}
}

func TestOrientationsDeterministic(t *testing.T) {
	s := grid.MustParse(
		".XX",
		"XX.",
		".X.",
	)
	first := symmetry.Orientations(s)
	second := symmetry.Orientations(s)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i], second[i])
	}
}

func TestOrientationsPreserveCellCount(t *testing.T) {
	s := grid.MustParse(
		"X..",
		"XX.",
		".XX",
	)
	for _, o := range symmetry.Orientations(s) {
		assert.Equal(t, s.Len(), o.Len())
	}
}

func assertAllDistinct(t *testing.T, shapes []grid.Shape) {
	t.Helper()
	seen := make(map[string]struct{}, len(shapes))
	for _, s := range shapes {
		key := s.String()
		_, dup := seen[key]
		assert.Falsef(t, dup, "duplicate orientation %q", key)
		seen[key] = struct{}{}
	}
}
