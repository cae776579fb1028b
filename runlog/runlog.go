// Package runlog keeps an append-only history of golden fixture runs.
//
// Each recorded run stores the per-case outcomes, including rendered diffs
// for mismatches, so a flaky or drifting golden can be investigated after
// the fact ("goldrun history"). The store is SQLite; one file per project
// is the expected shape.
package runlog

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/goldrun/goldrun/golden"
)

//go:embed schema.sql
var schemaSQL string

// Store is an open run-history database.
type Store struct {
	db *sql.DB
}

// Open creates or opens a run-history database at path. Safe to call
// repeatedly on the same file.
//
// The database is configured with WAL mode, a 5-second busy timeout, and
// foreign key enforcement. SQLite allows one writer at a time, so the
// connection pool is capped at a single connection.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("executing %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Run is one recorded harness invocation.
type Run struct {
	ID        string    `json:"id"`
	Dir       string    `json:"dir"`
	StartedAt time.Time `json:"started_at"`
	Total     int       `json:"total"`
	Failed    int       `json:"failed"`
}

// Result is one recorded case outcome.
type Result struct {
	RunID  string `json:"run_id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Diff   string `json:"diff,omitempty"`
}

// Record appends a run report to the history and returns the new run ID.
// Implements golden.Recorder.
func (s *Store) Record(ctx context.Context, dir string, report *golden.Report) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	runID := uuid.NewString()
	startedAt := time.Now().UTC().Format(time.RFC3339Nano)

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, dir, started_at, total, failed) VALUES (?, ?, ?, ?, ?)`,
		runID, dir, startedAt, len(report.Results), len(report.Failed()),
	)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	for _, res := range report.Results {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO results (run_id, name, status, diff) VALUES (?, ?, ?, ?)`,
			runID, res.Name, string(res.Status), res.Diff,
		)
		if err != nil {
			return "", fmt.Errorf("inserting result %s: %w", res.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// Recent returns the n most recent runs, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, dir, started_at, total, failed
		 FROM runs ORDER BY started_at DESC, id LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var startedAt string
		if err := rows.Scan(&r.ID, &r.Dir, &startedAt, &r.Total, &r.Failed); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing started_at %q: %w", startedAt, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Results returns the recorded case outcomes for a run, in name order.
func (s *Store) Results(ctx context.Context, runID string) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, name, status, diff
		 FROM results WHERE run_id = ? ORDER BY name`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.RunID, &r.Name, &r.Status, &r.Diff); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
