package commands

import (
	"github.com/spf13/cobra"

	"github.com/blackivy/onboarding/cmd/blackivy/handlers"
)

// Survey returns the command that runs the survey in the terminal.
func Survey() *cobra.Command {
	var opts handlers.SurveyOptions

	cmd := &cobra.Command{
		Use:   "survey",
		Short: "Take the onboarding survey",
		Long: `Take the BlackIvy onboarding survey.

In an interactive terminal the survey opens as a full-screen modal. Use
--simple for plain prompts instead. Without a terminal the first page is
printed and the command exits.

The finished response is stored in the configured backend.
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Survey(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: blackivy.yaml)")
	cmd.Flags().BoolVar(&opts.Simple, "simple", false, "Use plain prompts instead of the full-screen modal")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}
