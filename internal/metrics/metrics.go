// Package metrics counts survey activity with Prometheus collectors.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/blackivy/onboarding/internal/survey"
)

const namespace = "blackivy"

// Submission results.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Recorder owns a registry and the survey collectors registered on it.
type Recorder struct {
	registry *prometheus.Registry

	pagesViewed       *prometheus.CounterVec
	consentRejections *prometheus.CounterVec
	finishes          *prometheus.CounterVec
	abandons          *prometheus.CounterVec
	submissions       *prometheus.CounterVec
	submitDuration    *prometheus.HistogramVec
}

// New returns a Recorder with a fresh registry. withRuntime adds the Go and
// process collectors, which only make sense for long-running servers.
func New(withRuntime bool) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		pagesViewed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "survey",
				Name:      "pages_viewed_total",
				Help:      "Total number of survey pages shown by host and page",
			},
			[]string{"host", "page"},
		),
		consentRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "survey",
				Name:      "consent_rejections_total",
				Help:      "Total number of finish attempts blocked by missing consent",
			},
			[]string{"host"},
		),
		finishes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "survey",
				Name:      "finished_total",
				Help:      "Total number of finished surveys by host and status",
			},
			[]string{"host", "status"},
		),
		abandons: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "survey",
				Name:      "abandoned_total",
				Help:      "Total number of surveys closed before finishing, by last page",
			},
			[]string{"host", "page"},
		),
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "storage",
				Name:      "submissions_total",
				Help:      "Total number of response submissions by backend and result",
			},
			[]string{"backend", "result"},
		),
		submitDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "storage",
				Name:      "submission_duration_seconds",
				Help:      "Duration of response submissions in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~2.5s
			},
			[]string{"backend"},
		),
	}

	r.registry.MustRegister(
		r.pagesViewed,
		r.consentRejections,
		r.finishes,
		r.abandons,
		r.submissions,
		r.submitDuration,
	)
	if withRuntime {
		r.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return r
}

// Registry exposes the underlying registry, e.g. for promhttp.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Observe returns a survey.Dialog OnEvent hook that counts events for host.
func (r *Recorder) Observe(host string) func(survey.Event) {
	return func(e survey.Event) {
		switch e.Kind {
		case survey.EventPageViewed:
			r.pagesViewed.WithLabelValues(host, string(e.Page)).Inc()
		case survey.EventConsentRejected:
			r.consentRejections.WithLabelValues(host).Inc()
		case survey.EventFinished:
			r.finishes.WithLabelValues(host, statusLabel(e.Status)).Inc()
		case survey.EventAbandoned:
			r.abandons.WithLabelValues(host, string(e.Page)).Inc()
		}
	}
}

// RecordSubmission records the outcome of one submission.
func (r *Recorder) RecordSubmission(backend string, err error, elapsed time.Duration) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	r.submissions.WithLabelValues(backend, result).Inc()
	r.submitDuration.WithLabelValues(backend).Observe(elapsed.Seconds())
}

// WriteTextfile writes all metrics in the text exposition format, for the
// node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}

func statusLabel(status string) string {
	if status == "" {
		return "none"
	}
	return status
}
