package handlers

import (
	"io"
	"log"
)

// captureLog redirects the standard logger and returns a restore func.
func captureLog(w io.Writer) func() {
	oldOut := log.Writer()
	oldFlags := log.Flags()
	log.SetOutput(w)
	log.SetFlags(0)
	return func() {
		log.SetOutput(oldOut)
		log.SetFlags(oldFlags)
	}
}
