// Package handlers implements the business logic behind each CLI command.
package handlers

import (
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/mattn/go-isatty"

	"github.com/blackivy/onboarding/internal/config"
)

// newLogger returns a logr.Logger printing through the standard log package.
// --verbose raises the configured verbosity to at least 1.
func newLogger(cfg config.LogConfig, verbose bool) logr.Logger {
	v := cfg.Verbosity
	if verbose && v < 1 {
		v = 1
	}
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			log.Printf("%s: %s", prefix, args)
			return
		}
		log.Print(args)
	}, funcr.Options{Verbosity: v})
}

// isInteractiveTTY checks if stdout is an interactive terminal.
var isInteractiveTTY = func() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
