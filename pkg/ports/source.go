// Package ports defines the boundary interfaces between the pentomino
// catalog and the adapters that supply it with piece definitions.
package ports

import (
	"errors"

	"github.com/arbaregni/pentominoes/pkg/grid"
)

// ErrPieceNotFound indicates the requested piece doesn't exist in the
// source. Implementations wrap it with the offending name.
var ErrPieceNotFound = errors.New("piece not found")

// PieceSource supplies named shapes to a catalog. Implementations decide
// where the definitions live: embedded data, files on disk, or memory.
type PieceSource interface {
	// Names returns the name of every piece the source knows, sorted
	// lexicographically.
	Names() ([]string, error)

	// Shape resolves a piece name to its canonical shape. Unknown names
	// yield an error matching ErrPieceNotFound.
	Shape(name string) (grid.Shape, error)
}
