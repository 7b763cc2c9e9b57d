package symmetry

import (
	"github.com/arbaregni/pentominoes/pkg/grid"
)

// Orientations returns every distinct shape reachable from s by a rigid
// symmetry of the grid, in the order the symmetries first produce them
// (so the canonical form of s itself always comes first). Because shapes
// are compared in canonical form, orientations that coincide up to
// translation collapse to a single entry; the result has between 1 and 8
// elements, and its length always divides 8.
func Orientations(s grid.Shape) []grid.Shape {
	seen := make(map[string]struct{}, groupOrder)
	out := make([]grid.Shape, 0, groupOrder)
	for _, t := range Symmetries() {
		o := t.ApplyShape(s)
		key := o.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, o)
	}
	return out
}
