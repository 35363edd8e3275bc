package handlers

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-logr/logr"

	"github.com/blackivy/onboarding/internal/config"
	"github.com/blackivy/onboarding/internal/metrics"
	"github.com/blackivy/onboarding/internal/storage"
	"github.com/blackivy/onboarding/internal/survey"
	"github.com/blackivy/onboarding/internal/survey/form"
	"github.com/blackivy/onboarding/internal/ui/tui"
)

// Hosts as reported in metrics.
const (
	hostTUI  = "tui"
	hostForm = "form"
)

// SurveyOptions are the flags of the survey command.
type SurveyOptions struct {
	ConfigPath string
	Simple     bool
	Verbose    bool
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfig loads, overrides and validates the configuration.
	loadConfig = config.Load

	// newSubmitter opens the configured storage backend.
	newSubmitter = storage.New

	// runTUI shows the full-screen survey modal.
	runTUI = tui.Run

	// runForm walks the survey with plain prompts.
	runForm = form.Run

	// renderOnce prints the current page for non-interactive output.
	renderOnce = tui.Render

	// stdout is where user-facing messages go.
	stdout io.Writer = os.Stdout
)

// Survey runs the survey in the terminal and stores the finished response.
func Survey(ctx context.Context, opts SurveyOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	log := newLogger(cfg.Log, opts.Verbose)

	recorder := metrics.New(false)
	defer writeMetrics(cfg.Metrics, recorder, log)

	if !isInteractiveTTY() {
		d := survey.NewDialog(nil)
		d.SetOpen(true)
		return renderOnce(stdout, d)
	}

	sub, err := newSubmitter(ctx, cfg.Storage, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := sub.Close(context.Background()); err != nil {
			log.Error(err, "failed to close storage backend")
		}
	}()

	host := hostTUI
	if opts.Simple {
		host = hostForm
	}

	var (
		storedID  string
		submitErr error
	)
	// The command is the host: it applies every visibility request.
	d := survey.NewDialog(nil)
	d.OnOpenChange = d.SetOpen
	d.OnEvent = recorder.Observe(host)
	d.OnFinish = func(resp survey.Response) {
		start := time.Now()
		storedID, submitErr = sub.Submit(ctx, resp)
		recorder.RecordSubmission(sub.Name(), submitErr, time.Since(start))
	}

	if opts.Simple {
		d.SetOpen(true)
		err = runForm(ctx, d, stdout, log)
	} else {
		err = runTUI(ctx, d)
	}
	if err != nil {
		return err
	}

	switch {
	case submitErr != nil:
		return fmt.Errorf("failed to store response: %w", submitErr)
	case storedID == "":
		fmt.Fprintln(stdout, "Survey closed. Nothing was saved.")
	default:
		log.Info("stored response", "id", storedID, "backend", sub.Name())
		fmt.Fprintf(stdout, "Thanks! Your response %s was saved.\n", storedID)
	}
	return nil
}

func writeMetrics(cfg config.MetricsConfig, recorder *metrics.Recorder, log logr.Logger) {
	if cfg.TextfilePath == "" {
		return
	}
	if err := recorder.WriteTextfile(cfg.TextfilePath); err != nil {
		log.Error(err, "failed to write metrics")
	}
}
