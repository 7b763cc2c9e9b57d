package pentominoes

import (
	"fmt"
	"io"
	"strings"

	"github.com/arbaregni/pentominoes/pkg/grid"
	"github.com/arbaregni/pentominoes/pkg/symmetry"
)

// Reporter writes orientation reports to the provided output. Keeping the
// writer and renderer injectable allows for easy testing and integration
// with different frontends (plain CLI, colored TUI).
type Reporter struct {
	Output   io.Writer
	Renderer ShapeRenderer
}

// ShapeRenderer turns a shape into displayable text. It decouples terminal
// styling from the core package; when nil, shapes are printed as their
// plain marker rows.
type ShapeRenderer func(grid.Shape) (string, error)

// NewReporter creates a Reporter writing plain marker rows to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{Output: w}
}

// Describe prints, for each piece, how many distinct orientations it has,
// followed by each orientation as a numbered grid.
func (r *Reporter) Describe(pieces ...Piece) error {
	for _, p := range pieces {
		if err := r.report(p.Name(), p.Orientations()); err != nil {
			return err
		}
	}
	return nil
}

// DescribeShape prints the same report for a single ad-hoc shape.
func (r *Reporter) DescribeShape(label string, s grid.Shape) error {
	return r.report(label, symmetry.Orientations(s))
}

func (r *Reporter) report(label string, orientations []grid.Shape) error {
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}

	if _, err := fmt.Fprintf(r.Output, "%s has %d distinct orientations\n", label, len(orientations)); err != nil {
		return err
	}
	for i, o := range orientations {
		text, err := r.render(o)
		if err != nil {
			return fmt.Errorf("failed to render orientation %d of %s: %w", i+1, label, err)
		}
		if _, err := fmt.Fprintf(r.Output, "%d:\n%s\n\n", i+1, text); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reporter) render(s grid.Shape) (string, error) {
	if r.Renderer != nil {
		return r.Renderer(s)
	}
	return strings.Join(s.Rows(), "\n"), nil
}
