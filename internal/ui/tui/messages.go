// Package tui provides a Bubble Tea terminal modal for the onboarding survey.
package tui

// OpenMsg is sent by the host to show or hide the survey.
type OpenMsg struct{ Open bool }

// ErrMsg carries an error that ends the program.
type ErrMsg struct{ Err error }
