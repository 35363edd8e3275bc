package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/blackivy/onboarding/internal/config"
	"github.com/blackivy/onboarding/internal/survey"
	"github.com/blackivy/onboarding/internal/util/retry"
)

// ErrNotFound is returned when a stored response does not exist.
var ErrNotFound = errors.New("response not found")

// SQLite stores responses in a local database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (and if needed creates) the database at dbPath.
func NewSQLite(ctx context.Context, dbPath string) (*SQLite, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	dsn := "file:" + dbPath + "?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// A single writer avoids SQLITE_BUSY between concurrent submissions.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return s, nil
}

func (s *SQLite) initSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS responses (
		id TEXT PRIMARY KEY,
		status TEXT NOT NULL DEFAULT '',
		consent INTEGER NOT NULL,
		birth_date TEXT NOT NULL DEFAULT '',
		answers_json TEXT NOT NULL,
		completed_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_responses_status ON responses(status);
	`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (s *SQLite) Submit(ctx context.Context, resp survey.Response) (string, error) {
	if err := validate(resp); err != nil {
		return "", err
	}

	answers, err := json.Marshal(resp.Answers)
	if err != nil {
		return "", retry.Fatal(fmt.Errorf("marshal answers: %w", err))
	}
	var birth string
	if resp.BirthDate != nil {
		b, err := json.Marshal(resp.BirthDate)
		if err != nil {
			return "", retry.Fatal(fmt.Errorf("marshal birth date: %w", err))
		}
		birth = string(b)
	}

	query := `
		INSERT INTO responses (id, status, consent, birth_date, answers_json, completed_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status = excluded.status,
			consent = excluded.consent,
			birth_date = excluded.birth_date,
			answers_json = excluded.answers_json,
			completed_at = excluded.completed_at`
	_, err = s.db.ExecContext(ctx, query,
		resp.ID, resp.Status, resp.Consent, birth, string(answers), resp.CompletedAt.UnixNano())
	if err != nil {
		return "", fmt.Errorf("insert response: %w", err)
	}
	return resp.ID, nil
}

// Get loads a stored response.
func (s *SQLite) Get(ctx context.Context, id string) (survey.Response, error) {
	query := `
		SELECT id, status, consent, birth_date, answers_json, completed_at
		FROM responses WHERE id = ?`

	var (
		resp      survey.Response
		birth     string
		answers   string
		completed int64
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&resp.ID, &resp.Status, &resp.Consent, &birth, &answers, &completed,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return resp, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return resp, fmt.Errorf("scan response row: %w", err)
	}

	if err := json.Unmarshal([]byte(answers), &resp.Answers); err != nil {
		return resp, fmt.Errorf("decode answers: %w", err)
	}
	if birth != "" {
		resp.BirthDate = &survey.BirthDate{}
		if err := json.Unmarshal([]byte(birth), resp.BirthDate); err != nil {
			return resp, fmt.Errorf("decode birth date: %w", err)
		}
	}
	resp.CompletedAt = time.Unix(0, completed).UTC()
	return resp, nil
}

// Count returns the number of stored responses.
func (s *SQLite) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM responses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count responses: %w", err)
	}
	return n, nil
}

func (s *SQLite) Name() string { return string(config.BackendSQLite) }

func (s *SQLite) Close(context.Context) error { return s.db.Close() }
