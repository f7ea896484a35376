package main

import (
	"fmt"
)

// set via -ldflags at build time
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

func versionCommand(ui UI) error {
	_, err := fmt.Fprintf(ui.Out, "parley version %s (commit: %s)\n", BuildTag, BuildCommit)
	return err
}
