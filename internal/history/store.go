// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists an opt-in run log of smoke invocations in a
// local SQLite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/404kidwiz/credit-lift-nexus/pkg/types"
)

// DefaultPath is the run log location used when none is configured.
const DefaultPath = ".credit-lift/history.db"

const defaultMaxResults = 20

// Run is one recorded smoke invocation.
type Run struct {
	ID         int64         `json:"id"`
	StartedAt  time.Time     `json:"started_at"`
	Target     string        `json:"target"`
	Outcome    types.Outcome `json:"outcome"`
	StatusCode int           `json:"status_code"`
	Latency    time.Duration `json:"latency"`
	Error      string        `json:"error,omitempty"`
}

// Store manages the run log SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the run log database at cfg.Path, creating
// parent directories and the schema as needed.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = DefaultPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating run log directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening run log database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at TEXT NOT NULL,
		target TEXT NOT NULL,
		outcome TEXT NOT NULL,
		status_code INTEGER,
		latency_ms INTEGER,
		error TEXT
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record appends one run to the log. A zero StartedAt is stamped with the
// current time.
func (s *Store) Record(ctx context.Context, run Run) error {
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (started_at, target, outcome, status_code, latency_ms, error)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.Target,
		string(run.Outcome),
		run.StatusCode,
		run.Latency.Milliseconds(),
		run.Error,
	)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// RecordResult converts an invocation result into a Run and records it.
func (s *Store) RecordResult(ctx context.Context, res types.InvocationResult) error {
	run := Run{
		Target:     res.Target,
		Outcome:    res.Outcome,
		StatusCode: res.StatusCode,
		Latency:    res.Latency,
	}
	if res.Err != nil {
		run.Error = res.Err.Error()
	}
	return s.Record(ctx, run)
}

// List returns the most recent runs, newest first. A limit of 0 uses the
// configured default.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, target, outcome, status_code, latency_ms, error
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			startedAt string
			outcome   string
			latencyMS int64
		)
		if err := rows.Scan(&r.ID, &startedAt, &r.Target, &outcome, &r.StatusCode, &latencyMS, &r.Error); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339Nano, startedAt); parseErr == nil {
			r.StartedAt = t
		}
		r.Outcome = types.Outcome(outcome)
		r.Latency = time.Duration(latencyMS) * time.Millisecond
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Prune deletes all but the newest keep runs and returns the number removed.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM runs WHERE id NOT IN (SELECT id FROM runs ORDER BY id DESC LIMIT ?)`, keep)
	if err != nil {
		return 0, fmt.Errorf("pruning runs: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting pruned runs: %w", err)
	}
	return removed, nil
}
