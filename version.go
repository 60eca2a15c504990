package cellsweep

import _ "embed"

// Version is the release version of cellsweep.
//
//go:embed VERSION
var Version string
