package ports

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbaregni/pentominoes/pkg/grid"
)

// RunPieceSourceContract runs a suite of tests to verify that a PieceSource
// implementation adheres to the defined interface contract: sorted names,
// canonical shapes, and ErrPieceNotFound for unknown names.
func RunPieceSourceContract(t *testing.T, src PieceSource) {
	t.Run("Names Sorted", func(t *testing.T) {
		names, err := src.Names()
		require.NoError(t, err)
		assert.Truef(t, sort.StringsAreSorted(names), "names must be sorted: %v", names)
	})

	t.Run("Every Listed Name Resolves", func(t *testing.T) {
		names, err := src.Names()
		require.NoError(t, err)
		for _, name := range names {
			shape, err := src.Shape(name)
			require.NoErrorf(t, err, "listed piece %q must resolve", name)
			// Shapes come back canonical, so rebuilding one from its own
			// cells must be a no-op.
			assert.Equal(t, shape, grid.NewShape(shape.Cells()...))
		}
	})

	t.Run("Unknown Name", func(t *testing.T) {
		_, err := src.Shape("no-such-piece")
		assert.ErrorIs(t, err, ErrPieceNotFound)
	})
}
