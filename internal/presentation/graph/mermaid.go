package graph

import (
	"fmt"
	"strings"

	"github.com/arbaregni/pentominoes/pkg/grid"
	"github.com/arbaregni/pentominoes/pkg/symmetry"
)

// GenerateMermaid produces a Mermaid flowchart (graph TD) of a shape's
// orientation orbit. The base shape is drawn as a circle; every further
// distinct orientation is a rectangle, reached by an edge labeled with the
// first transform that produces it. Orientations that coincide with an
// earlier one are folded into a single node, so a fully symmetric shape
// renders as a lone circle.
func GenerateMermaid(label string, s grid.Shape) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	base := sanitizeMermaidID(label)
	sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", base, nodeLabel(label, s)))

	seen := map[string]string{s.String(): base}
	count := 0
	for _, tr := range symmetry.Symmetries() {
		o := tr.ApplyShape(s)
		if _, ok := seen[o.String()]; ok {
			continue
		}
		count++

		id := fmt.Sprintf("%s_o%d", base, count)
		seen[o.String()] = id
		title := fmt.Sprintf("o%d", count)

		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", id, nodeLabel(title, o)))
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", base, tr, id))
	}

	// Highlight the base node. Force black text (color:#000) for high
	// contrast regardless of theme (Light/Dark).
	sb.WriteString("\n    classDef base fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
	sb.WriteString(fmt.Sprintf("    class %s base;\n", base))

	return sb.String()
}

// nodeLabel renders a title plus the shape's rows for a Mermaid node label.
func nodeLabel(title string, s grid.Shape) string {
	if s.Len() == 0 {
		return title
	}
	return title + "<br/>" + strings.Join(s.Rows(), "<br/>")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
