package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/blackivy/onboarding/internal/survey"
)

// Pages prints the page list resolved for status.
func Pages(out io.Writer, status string, jsonOutput bool) error {
	pages := survey.Resolve(status)

	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(pages); err != nil {
			return fmt.Errorf("failed to encode pages: %w", err)
		}
		return nil
	}

	for i, p := range pages {
		fmt.Fprintf(out, "%d. %-11s %s\n", i+1, p.ID, p.Prompt)
		if p.Kind != survey.KindChoice {
			continue
		}
		kind := "single choice"
		if p.MultiSelect {
			kind = "multiple choice"
		}
		fmt.Fprintf(out, "   %s, %d options: %s\n", kind, len(p.Options), summarize(p.Labels(), 4))
	}
	return nil
}

// summarize joins the first n labels and counts the rest.
func summarize(labels []string, n int) string {
	if len(labels) <= n {
		return strings.Join(labels, ", ")
	}
	return fmt.Sprintf("%s, ... (+%d more)", strings.Join(labels[:n], ", "), len(labels)-n)
}
