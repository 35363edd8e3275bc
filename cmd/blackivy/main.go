// Package main is the entry point for the blackivy CLI.
//
// blackivy runs the BlackIvy onboarding survey in the terminal and serves
// it over HTTP. Finished responses go to the configured storage backend.
//
// Commands: survey, serve, pages, version, completion.
//
// For detailed usage information, run:
//
//	blackivy --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/blackivy/onboarding/cmd/blackivy/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
