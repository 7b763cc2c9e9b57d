package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arbaregni/pentominoes/pkg/adapters/file"
	"github.com/arbaregni/pentominoes/pkg/grid"
	"github.com/arbaregni/pentominoes/pkg/symmetry"
)

// ValidatePieces crawls a directory of piece documents and reports every
// problem found, not just the first one: unreadable or malformed documents,
// duplicate names, empty layouts, and pieces that are the same shape as an
// earlier piece up to rotation and reflection.
func ValidatePieces(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read piece directory: %w", err)
	}

	var problems []string

	// name -> defining file, signature -> first congruent piece
	owners := make(map[string]string)
	congruent := make(map[string]string)

	seen := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		seen++

		name, shape, err := file.ReadPiece(filepath.Join(dir, entry.Name()))
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", entry.Name(), err))
			continue
		}

		if prev, dup := owners[name]; dup {
			problems = append(problems, fmt.Sprintf("duplicate piece name '%s' (%s and %s)", name, prev, entry.Name()))
			continue
		}
		owners[name] = entry.Name()

		if shape.Len() == 0 {
			problems = append(problems, fmt.Sprintf("piece '%s' has no cells", name))
			continue
		}

		sig := signature(shape)
		if prev, ok := congruent[sig]; ok {
			problems = append(problems, fmt.Sprintf("pieces '%s' and '%s' are the same shape up to rotation and reflection", prev, name))
			continue
		}
		congruent[sig] = name
	}

	if seen == 0 {
		problems = append(problems, fmt.Sprintf("no piece documents found in %s", dir))
	}

	if len(problems) > 0 {
		return fmt.Errorf("found %d problems:\n- %s", len(problems), strings.Join(problems, "\n- "))
	}

	return nil
}

// signature returns a key that is identical for congruent shapes: the
// lexicographically smallest cell list across the whole orientation orbit.
func signature(s grid.Shape) string {
	oris := symmetry.Orientations(s)
	keys := make([]string, len(oris))
	for i, o := range oris {
		keys[i] = o.String()
	}
	sort.Strings(keys)
	return keys[0]
}
