// Package commands defines the CLI command structure and flag bindings.
//
// Commands parse flags and delegate execution to the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the blackivy CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "blackivy",
		Short:         "Run the BlackIvy onboarding survey",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(Survey())
	cmd.AddCommand(Serve())
	cmd.AddCommand(Pages())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
