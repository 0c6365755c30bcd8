// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ledger records pipeline runs in a local SQLite database: one
// row per run with topic, outcome, and artifact paths. The ledger is
// bookkeeping only; paper content lives in the artifact files and is
// never stored here.
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/paperforge/pkg/types"
)

const (
	defaultPath        = "doc/runs.db"
	defaultRecentLimit = 20
)

// Kinds of recorded runs.
const (
	KindCreate = "create"
	KindRevise = "revise"
)

// Entry is one recorded run.
type Entry struct {
	RunID     string    `json:"run_id"`
	Topic     string    `json:"topic"`
	Title     string    `json:"title,omitempty"`
	Kind      string    `json:"kind"`
	Status    string    `json:"status"`
	Degraded  bool      `json:"degraded,omitempty"`
	HTMLPath  string    `json:"html_path,omitempty"`
	PDFPath   string    `json:"pdf_path,omitempty"`
	Err       string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Store manages the run ledger SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the ledger at cfg.Path, creating parent
// directories and the schema as needed.
func Open(cfg types.LedgerConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = defaultPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}

	s := &Store{db: db}
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
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			run_id TEXT PRIMARY KEY,
			topic TEXT NOT NULL,
			title TEXT,
			kind TEXT NOT NULL,
			status TEXT NOT NULL,
			degraded INTEGER NOT NULL DEFAULT 0,
			html_path TEXT,
			pdf_path TEXT,
			error TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_topic ON runs(topic)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores the outcome of a session. Recording the same run again
// updates the row, so a revision that supersedes a failed render can be
// re-recorded safely.
func (s *Store) Record(ctx context.Context, session types.Session, title, kind string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (run_id, topic, title, kind, status, degraded, html_path, pdf_path, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(run_id) DO UPDATE SET
			title=excluded.title, status=excluded.status, degraded=excluded.degraded,
			html_path=excluded.html_path, pdf_path=excluded.pdf_path,
			error=excluded.error`,
		session.RunID, session.Topic, title, kind, session.Status(),
		session.Research.Degraded,
		session.Artifacts.HTMLPath, session.Artifacts.PDFPath,
		session.Err, session.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// Recent returns the latest entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, topic, title, kind, status, degraded, html_path, pdf_path, error, created_at
		 FROM runs ORDER BY created_at DESC, run_id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var created string
		if err := rows.Scan(&e.RunID, &e.Topic, &e.Title, &e.Kind, &e.Status,
			&e.Degraded, &e.HTMLPath, &e.PDFPath, &e.Err, &created); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339Nano, created); parseErr == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
