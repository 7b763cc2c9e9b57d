package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbaregni/pentominoes/pkg/grid"
)

func TestRenderShapePlain(t *testing.T) {
	s := grid.MustParse(
		"X.",
		"XX",
	)
	assert.Equal(t, "X.\nXX", RenderShape(s, StylePlain))
}

func TestRenderShapePlainEmpty(t *testing.T) {
	assert.Equal(t, "", RenderShape(grid.Shape{}, StylePlain))
}

func TestRenderShapeLineCount(t *testing.T) {
	s := grid.MustParse(
		".X.",
		"XXX",
		".X.",
	)
	for _, style := range []Style{StylePlain, StyleColor} {
		out := RenderShape(s, style)
		assert.Equal(t, s.Height(), len(strings.Split(out, "\n")))
	}
}

func TestRendererHook(t *testing.T) {
	render := Renderer(StylePlain)
	out, err := render(grid.MustParse("XX"))
	require.NoError(t, err)
	assert.Equal(t, "XX", out)
}

func TestSheetMarkdown(t *testing.T) {
	entries := []SheetEntry{
		{Name: "X", Shape: grid.MustParse(".X.", "XXX", ".X.")},
		{Name: "I", Shape: grid.MustParse("X", "X", "X", "X", "X")},
	}
	md := sheetMarkdown(entries)

	assert.Contains(t, md, "# Pentomino Reference")
	assert.Contains(t, md, "2 pieces.")
	assert.Contains(t, md, "## X")
	assert.Contains(t, md, "5 cells, 1 distinct orientations.")
	assert.Contains(t, md, "## I")
	assert.Contains(t, md, "5 cells, 2 distinct orientations.")
	assert.Contains(t, md, ".X.\nXXX\n.X.\n")
}

func TestSheetRenders(t *testing.T) {
	entries := []SheetEntry{
		{Name: "U", Shape: grid.MustParse("X.X", "XXX")},
	}
	out, err := Sheet(entries)
	require.NoError(t, err)
	assert.Contains(t, out, "U")
}

func TestNewRendererPreservesContent(t *testing.T) {
	render := NewRenderer()
	out, err := render("# Reference\n\nplain body text\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Reference")
	assert.Contains(t, out, "plain body text")
}
