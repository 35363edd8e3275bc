package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := NewSQLite(context.Background(), filepath.Join(t.TempDir(), "data", "blackivy.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func TestSQLite_SubmitAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openSQLite(t)

	want := sampleResponse()
	id, err := s.Submit(ctx, want)
	require.NoError(t, err)
	assert.Equal(t, want.ID, id)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stored response mismatch (-want +got):\n%s", diff)
	}
}

func TestSQLite_SubmitIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openSQLite(t)

	resp := sampleResponse()
	_, err := s.Submit(ctx, resp)
	require.NoError(t, err)

	resp.BirthDate = nil
	_, err = s.Submit(ctx, resp)
	require.NoError(t, err)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := s.Get(ctx, resp.ID)
	require.NoError(t, err)
	assert.Nil(t, got.BirthDate)
}

func TestSQLite_ConnectionPragmas(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openSQLite(t)

	var mode string
	require.NoError(t, s.db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	var timeout int
	require.NoError(t, s.db.QueryRowContext(ctx, "PRAGMA busy_timeout").Scan(&timeout))
	assert.Equal(t, 5000, timeout)

	// 1 is NORMAL.
	var sync int
	require.NoError(t, s.db.QueryRowContext(ctx, "PRAGMA synchronous").Scan(&sync))
	assert.Equal(t, 1, sync)
}

func TestSQLite_GetMissing(t *testing.T) {
	t.Parallel()

	_, err := openSQLite(t).Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
