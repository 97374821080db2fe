package ui

import (
	"io"
	"os"

	"github.com/vadiminshakov/factorial/core/config"
)

// overridden in tests
var (
	stdout io.Writer = os.Stdout
	setup            = config.InteractiveSetup
)
