package inmemory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbaregni/pentominoes/pkg/adapters/inmemory"
	"github.com/arbaregni/pentominoes/pkg/grid"
	"github.com/arbaregni/pentominoes/pkg/ports"
)

func TestNewAndLookup(t *testing.T) {
	src, err := inmemory.New(
		inmemory.Def{Name: "domino", Rows: []string{"XX"}},
		inmemory.Def{Name: "corner", Rows: []string{"X.", "XX"}},
	)
	require.NoError(t, err)

	names, err := src.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"corner", "domino"}, names)

	shape, err := src.Shape("corner")
	require.NoError(t, err)
	assert.Equal(t, grid.MustParse("X.", "XX"), shape)
}

func TestShapeUnknownName(t *testing.T) {
	src, err := inmemory.New(
		inmemory.Def{Name: "domino", Rows: []string{"XX"}},
	)
	require.NoError(t, err)

	_, err = src.Shape("monomino")
	require.Error(t, err)
	assert.ErrorIs(t, err, ports.ErrPieceNotFound)
	assert.Contains(t, err.Error(), "monomino")
}

func TestNewRejectsEmptyName(t *testing.T) {
	_, err := inmemory.New(inmemory.Def{Name: "", Rows: []string{"X"}})
	assert.Error(t, err)
}

func TestNewRejectsDuplicateName(t *testing.T) {
	_, err := inmemory.New(
		inmemory.Def{Name: "twin", Rows: []string{"X"}},
		inmemory.Def{Name: "twin", Rows: []string{"XX"}},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "twin")
}

func TestNewRejectsMalformedLayout(t *testing.T) {
	_, err := inmemory.New(inmemory.Def{Name: "bad", Rows: []string{"X?"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad")
}

func TestNamesReturnsCopy(t *testing.T) {
	src, err := inmemory.New(
		inmemory.Def{Name: "a", Rows: []string{"X"}},
		inmemory.Def{Name: "b", Rows: []string{"XX"}},
	)
	require.NoError(t, err)

	names, err := src.Names()
	require.NoError(t, err)
	names[0] = "mutated"

	again, err := src.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, again)
}

func TestEmptySource(t *testing.T) {
	src, err := inmemory.New()
	require.NoError(t, err)

	names, err := src.Names()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestSource_Contract(t *testing.T) {
	src, err := inmemory.New(
		inmemory.Def{Name: "domino", Rows: []string{"XX"}},
		inmemory.Def{Name: "corner", Rows: []string{"X.", "XX"}},
	)
	require.NoError(t, err)
	ports.RunPieceSourceContract(t, src)
}
