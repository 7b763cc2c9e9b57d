package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WritePieceFile writes a YAML piece document into dir and returns its path.
// Rows are emitted quoted so layouts made only of dots survive YAML parsing.
// It fails the test immediately on error.
func WritePieceFile(t *testing.T, dir, filename, name string, rows ...string) string {
	t.Helper()

	var b strings.Builder
	fmt.Fprintf(&b, "name: %s\nrows:\n", name)
	for _, row := range rows {
		fmt.Fprintf(&b, "  - %q\n", row)
	}

	path := filepath.Join(dir, filename)
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644), "Failed to write piece file")
	return path
}

// SetupPieceDir creates a temporary directory populated with one piece
// document per entry, keyed by piece name.
func SetupPieceDir(t *testing.T, pieces map[string][]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, rows := range pieces {
		filename := strings.ToLower(name) + ".yaml"
		WritePieceFile(t, dir, filename, name, rows...)
	}
	return dir
}
