// Package main provides the entry point for the rcli CLI.
package main

import (
	"context"
	"os"

	"github.com/mrz1836/rcli/internal/cli"
	"github.com/mrz1836/rcli/internal/signal"
)

// Set via ldflags at build time.
//
//nolint:gochecknoglobals // Build information injected by the linker
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	h := signal.NewHandler(context.Background())
	err := cli.Execute(h.Context(), cli.BuildInfo{Version: version, Commit: commit, Date: date})
	h.Stop()

	code := cli.ExitCodeForError(err)
	if err != nil && h.Interrupted() {
		code = signal.InterruptedExitCode
	}
	os.Exit(code)
}
