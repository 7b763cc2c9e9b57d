package tui

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/arbaregni/pentominoes/pkg/grid"
	"github.com/arbaregni/pentominoes/pkg/symmetry"
)

// SheetEntry is one row of the reference sheet.
type SheetEntry struct {
	Name  string
	Shape grid.Shape
}

// Sheet renders a markdown reference card for the given pieces, styled for
// the current terminal.
func Sheet(entries []SheetEntry) (string, error) {
	render := NewRenderer()
	out, err := render(sheetMarkdown(entries))
	if err != nil {
		return "", fmt.Errorf("failed to render reference sheet: %w", err)
	}
	return out, nil
}

// sheetMarkdown builds the markdown document behind the sheet: one section
// per piece with its orientation count and layout.
func sheetMarkdown(entries []SheetEntry) string {
	var b strings.Builder
	b.WriteString("# Pentomino Reference\n\n")
	fmt.Fprintf(&b, "%d pieces.\n\n", len(entries))
	for _, e := range entries {
		count := len(symmetry.Orientations(e.Shape))
		fmt.Fprintf(&b, "## %s\n\n", e.Name)
		fmt.Fprintf(&b, "%d cells, %d distinct orientations.\n\n", e.Shape.Len(), count)
		b.WriteString("```\n")
		for _, row := range e.Shape.Rows() {
			b.WriteString(row)
			b.WriteByte('\n')
		}
		b.WriteString("```\n\n")
	}
	return b.String()
}

// terminalWidth reports the stdout width, falling back to 80 columns when
// stdout is not a terminal.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
