// Package main provides the entry point for the sextant CLI tool.
package main

import (
	"context"
	"os"

	"github.com/vaultsfyi/sextant/cmd/sextant/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	application, err := app.New(version, commit, date)
	if err != nil {
		app.ExitOnError(err)
	}

	// Cancel the run context on SIGINT/SIGTERM so sandboxes still clean up.
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		app.ExitOnError(err)
	}
}
