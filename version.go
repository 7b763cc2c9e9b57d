package pentominoes

import _ "embed"

// Version is the module version, embedded from the VERSION file at the
// repository root. The raw contents keep the file's trailing newline;
// display paths trim it.
//
//go:embed VERSION
var Version string
