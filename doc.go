/*
Package pentominoes enumerates the geometrically distinct orientations of
polyomino-style shapes on an integer grid, and ships a catalog of the 12
classic pentomino pieces.

# Concept

A shape is a finite set of filled grid cells, stored in a canonical,
translation-invariant form: shifted against the origin, sorted, and
deduplicated. Two shapes that differ only by translation are therefore the
same value. The rigid symmetries of the grid (4 rotations and 4
reflections, the dihedral group of order 8) are applied to a shape and the
results collapsed through that canonical equality, which yields every
orientation that is genuinely different on the board.

The heavy lifting lives in two small pure packages: pkg/grid (points,
vectors, canonical shapes) and pkg/symmetry (the transform group and the
orientation enumerator). This package wraps them behind a catalog of named
pieces so hosts can stay ignorant of the geometry. Piece data is loaded
through a PieceSource port; the default source embeds the classic 12
pentominoes, and adapters exist for YAML files on disk and for in-memory
definitions.

# Key Features

  - Canonical shapes: translation never creates a "new" shape.
  - Exact integer transforms: the full symmetry group with no floating point.
  - Deterministic enumeration: orientations come back in a fixed order.
  - Hexagonal piece loading: swap the embedded catalog for your own source.

# Usage

Load the default catalog and describe a piece:

	package main

	import (
		"log"
		"os"

		"github.com/arbaregni/pentominoes"
	)

	func main() {
		cat, err := pentominoes.Load()
		if err != nil {
			log.Fatal(err)
		}

		piece, err := cat.Get("F")
		if err != nil {
			log.Fatal(err)
		}

		reporter := pentominoes.NewReporter(os.Stdout)
		if err := reporter.Describe(piece); err != nil {
			log.Fatal(err)
		}
	}
*/
package pentominoes
