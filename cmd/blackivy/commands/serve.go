package commands

import (
	"github.com/spf13/cobra"

	"github.com/blackivy/onboarding/cmd/blackivy/handlers"
)

// Serve returns the command that runs the HTTP API.
func Serve() *cobra.Command {
	var opts handlers.ServeOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the survey over HTTP",
		Long: `Serve the survey over HTTP.

Endpoints:
  GET  /healthz               liveness
  GET  /v1/pages?status=...   page list for a status answer
  POST /v1/responses          submit finished answers
  GET  /metrics               Prometheus metrics
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Serve(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: blackivy.yaml)")
	cmd.Flags().StringVar(&opts.Addr, "addr", "", "Listen address (overrides config)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}
