package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/blackivy/onboarding/internal/config"
	"github.com/blackivy/onboarding/internal/survey"
	"github.com/blackivy/onboarding/internal/util/retry"
)

// ErrMissingID is returned when a response without an ID is submitted.
var ErrMissingID = errors.New("response has no id")

// Submitter stores finished responses.
type Submitter interface {
	// Submit stores resp and returns the ID it was stored under.
	Submit(ctx context.Context, resp survey.Response) (string, error)
	// Name identifies the backend in logs and metrics.
	Name() string
	Close(ctx context.Context) error
}

// New opens the backend selected by cfg.
func New(ctx context.Context, cfg config.StorageConfig, log logr.Logger) (Submitter, error) {
	var (
		sub    Submitter
		err    error
		remote bool
	)

	switch cfg.Backend {
	case config.BackendNone:
		sub = Discard{}
	case config.BackendFile, "":
		sub, err = NewFile(cfg.File.Dir)
	case config.BackendSQLite:
		sub, err = NewSQLite(ctx, cfg.SQLite.Path)
	case config.BackendS3:
		sub, err = NewS3(ctx, cfg.S3)
		remote = true
	case config.BackendMongo:
		sub, err = NewMongo(ctx, cfg.Mongo)
		remote = true
	case config.BackendRedis:
		sub, err = NewRedis(ctx, cfg.Redis)
		remote = true
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s backend: %w", cfg.Backend, err)
	}

	log.V(1).Info("opened submission backend", "backend", sub.Name())
	if remote && cfg.Retries > 0 {
		sub = WithRetry(sub, log, retry.WithMaxRetries(cfg.Retries))
	}
	return sub, nil
}

func validate(resp survey.Response) error {
	if resp.ID == "" {
		return retry.Fatal(ErrMissingID)
	}
	return nil
}

// Discard drops every response. It backs the "none" backend.
type Discard struct{}

func (Discard) Submit(_ context.Context, resp survey.Response) (string, error) {
	if err := validate(resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (Discard) Name() string { return string(config.BackendNone) }

func (Discard) Close(context.Context) error { return nil }

type retrying struct {
	next Submitter
	log  logr.Logger
	opts []retry.Option
}

// WithRetry retries failed submissions to next with exponential backoff.
func WithRetry(next Submitter, log logr.Logger, opts ...retry.Option) Submitter {
	return &retrying{next: next, log: log, opts: opts}
}

func (r *retrying) Submit(ctx context.Context, resp survey.Response) (string, error) {
	var id string
	opts := append([]retry.Option{
		retry.WithOnRetry(func(attempt int, delay time.Duration, err error) {
			r.log.Info("submission failed, retrying",
				"backend", r.next.Name(), "attempt", attempt, "delay", delay.String(), "error", err.Error())
		}),
	}, r.opts...)

	err := retry.Do(ctx, func(ctx context.Context) error {
		var err error
		id, err = r.next.Submit(ctx, resp)
		return err
	}, opts...)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *retrying) Name() string { return r.next.Name() }

func (r *retrying) Close(ctx context.Context) error { return r.next.Close(ctx) }
