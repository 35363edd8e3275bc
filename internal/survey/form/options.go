package form

import (
	"github.com/charmbracelet/huh"

	"github.com/blackivy/onboarding/internal/survey"
)

// Navigation choices offered below each page.
const (
	NavNext   = "next"
	NavBack   = "back"
	NavFinish = "finish"
	NavClose  = "close"
)

// OptionsFor converts a page's options to huh options keyed by label.
func OptionsFor(page survey.Page) []huh.Option[string] {
	opts := make([]huh.Option[string], len(page.Options))
	for i, o := range page.Options {
		opts[i] = huh.NewOption(optionText(o), o.Label)
	}
	return opts
}

func optionText(o survey.Option) string {
	text := o.Label
	if o.Emoji != "" {
		text = o.Emoji + "  " + text
	}
	if o.Description != "" {
		text += " - " + o.Description
	}
	return text
}

// NavOptions returns the navigation choices for the current page. Back is
// omitted on the first page and Next becomes Finish on the last.
func NavOptions(w *survey.Wizard) []huh.Option[string] {
	var opts []huh.Option[string]
	if w.IsLast() {
		opts = append(opts, huh.NewOption("Finish", NavFinish))
	} else {
		opts = append(opts, huh.NewOption("Next", NavNext))
	}
	if w.CanRetreat() {
		opts = append(opts, huh.NewOption("Back", NavBack))
	}
	return append(opts, huh.NewOption("Close", NavClose))
}
