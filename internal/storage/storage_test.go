package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackivy/onboarding/internal/config"
	"github.com/blackivy/onboarding/internal/survey"
	"github.com/blackivy/onboarding/internal/util/retry"
)

func sampleResponse() survey.Response {
	return survey.Response{
		ID:     "6f1c1d8e-0d5a-4c3e-9a57-7b8f1f9c2a10",
		Status: survey.StatusIndustry,
		Answers: []survey.Answer{
			{Page: survey.PageStatus, Prompt: "What best describes you?", Selected: []string{survey.StatusIndustry}},
			{Page: survey.PageHobbies, Prompt: "Hobbies", Selected: []string{"Gaming", survey.OtherLabel}, Other: "Falconry"},
		},
		BirthDate:   &survey.BirthDate{Month: "04", Day: "12", Year: "1990"},
		Consent:     true,
		CompletedAt: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
	}
}

type fakeSubmitter struct {
	calls int
	errs  []error
}

func (f *fakeSubmitter) Submit(_ context.Context, resp survey.Response) (string, error) {
	f.calls++
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return "", err
		}
	}
	return resp.ID, nil
}

func (f *fakeSubmitter) Name() string { return "fake" }

func (f *fakeSubmitter) Close(context.Context) error { return nil }

func TestDiscard(t *testing.T) {
	t.Parallel()

	id, err := Discard{}.Submit(context.Background(), sampleResponse())
	require.NoError(t, err)
	assert.Equal(t, sampleResponse().ID, id)

	_, err = Discard{}.Submit(context.Background(), survey.Response{})
	assert.ErrorIs(t, err, ErrMissingID)
	assert.True(t, retry.IsFatal(err))
}

func TestWithRetry_RetriesTransientErrors(t *testing.T) {
	t.Parallel()

	fake := &fakeSubmitter{errs: []error{errors.New("timeout"), errors.New("timeout")}}
	sub := WithRetry(fake, logr.Discard(), retry.WithInitialDelay(time.Millisecond))

	id, err := sub.Submit(context.Background(), sampleResponse())
	require.NoError(t, err)
	assert.Equal(t, sampleResponse().ID, id)
	assert.Equal(t, 3, fake.calls)
	assert.Equal(t, "fake", sub.Name())
}

func TestWithRetry_FatalNotRetried(t *testing.T) {
	t.Parallel()

	fake := &fakeSubmitter{errs: []error{retry.Fatal(ErrMissingID)}}
	sub := WithRetry(fake, logr.Discard(), retry.WithInitialDelay(time.Millisecond))

	_, err := sub.Submit(context.Background(), sampleResponse())
	require.ErrorIs(t, err, ErrMissingID)
	assert.Equal(t, 1, fake.calls)
}

func TestNew(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("none", func(t *testing.T) {
		t.Parallel()
		sub, err := New(ctx, config.StorageConfig{Backend: config.BackendNone}, logr.Discard())
		require.NoError(t, err)
		assert.Equal(t, "none", sub.Name())
	})

	t.Run("file", func(t *testing.T) {
		t.Parallel()
		cfg := config.StorageConfig{Backend: config.BackendFile, File: config.FileConfig{Dir: t.TempDir()}}
		sub, err := New(ctx, cfg, logr.Discard())
		require.NoError(t, err)
		assert.IsType(t, &File{}, sub)
	})

	t.Run("sqlite", func(t *testing.T) {
		t.Parallel()
		cfg := config.StorageConfig{
			Backend: config.BackendSQLite,
			SQLite:  config.SQLiteConfig{Path: t.TempDir() + "/blackivy.db"},
			Retries: 3,
		}
		sub, err := New(ctx, cfg, logr.Discard())
		require.NoError(t, err)
		t.Cleanup(func() { _ = sub.Close(ctx) })
		// Local backends are not wrapped with retries.
		assert.IsType(t, &SQLite{}, sub)
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()
		_, err := New(ctx, config.StorageConfig{Backend: "carrier-pigeon"}, logr.Discard())
		assert.ErrorIs(t, err, config.ErrUnknownBackend)
	})
}
