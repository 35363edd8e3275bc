package commands

import (
	"github.com/spf13/cobra"

	"github.com/blackivy/onboarding/cmd/blackivy/handlers"
)

// Pages returns the command that prints the page list.
func Pages() *cobra.Command {
	var status string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "List survey pages for a status answer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Pages(cmd.OutOrStdout(), status, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", `Answer to the status page, e.g. "Industry Professional"`)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
