// Package tui renders shapes and catalog reference sheets for terminal
// display.
package tui

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/arbaregni/pentominoes/pkg/grid"
)

// Style selects how a shape's cells are drawn.
type Style int

const (
	// StyleColor draws filled cells as colored blocks when the terminal
	// profile supports it.
	StyleColor Style = iota
	// StylePlain draws the plain 'X' / '.' markers; safe for pipes,
	// redirects, and tests.
	StylePlain
)

// cellColor is the block color for filled cells (indigo).
const cellColor = "#818cf8"

// RenderShape returns a multi-line drawing of the shape, one line per grid
// row. Colored output uses two-column blocks so cells come out roughly
// square; when the terminal reports no color support the plain markers are
// used regardless of style.
func RenderShape(s grid.Shape, style Style) string {
	rows := s.Rows()
	if style == StylePlain {
		return strings.Join(rows, "\n")
	}

	p := termenv.ColorProfile()
	if p == termenv.Ascii {
		return strings.Join(rows, "\n")
	}

	block := p.Color(cellColor)
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, marker := range row {
			if marker == 'X' {
				b.WriteString(termenv.String("██").Foreground(block).String())
			} else {
				b.WriteString("  ")
			}
		}
	}
	return b.String()
}

// Renderer adapts RenderShape to the reporter's renderer hook.
func Renderer(style Style) func(grid.Shape) (string, error) {
	return func(s grid.Shape) (string, error) {
		return RenderShape(s, style), nil
	}
}
