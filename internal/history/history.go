// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists batch run outcomes in a SQLite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/tableminer/pkg/types"
)

// Store manages the run-history SQLite database.
type Store struct {
	db *sql.DB
}

// Run is one recorded batch run.
type Run struct {
	ID        int64
	StartedAt time.Time
	InputDir  string
	OutputDir string
	Exported  int
	NoTables  int
	Failed    int
}

// NewStore opens or creates the history database at path and ensures
// the schema exists.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TEXT NOT NULL,
			input_dir TEXT NOT NULL,
			output_dir TEXT NOT NULL,
			exported INTEGER NOT NULL,
			no_tables INTEGER NOT NULL,
			failed INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS documents (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			file TEXT NOT NULL,
			status TEXT NOT NULL,
			tables INTEGER NOT NULL,
			sheets INTEGER NOT NULL,
			error TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_run_id ON documents(run_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts a batch run and its per-document outcomes in one
// transaction, returning the new run ID.
func (s *Store) Record(ctx context.Context, run Run, outcomes []types.DocumentOutcome) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (started_at, input_dir, output_dir, exported, no_tables, failed)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.StartedAt.UTC().Format(time.RFC3339), run.InputDir, run.OutputDir,
		run.Exported, run.NoTables, run.Failed)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO documents (run_id, file, status, tables, sheets, error)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing document insert: %w", err)
	}
	defer stmt.Close()

	for _, o := range outcomes {
		if _, err := stmt.ExecContext(ctx, runID, o.File, string(o.Status), o.Tables, o.Sheets, o.Error); err != nil {
			return 0, fmt.Errorf("inserting document %s: %w", o.File, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// Recent returns the latest n runs, newest first. n <= 0 selects a
// default of 10.
func (s *Store) Recent(ctx context.Context, n int) ([]Run, error) {
	if n <= 0 {
		n = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, input_dir, output_dir, exported, no_tables, failed
		 FROM runs ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r       Run
			started string
		)
		if err := rows.Scan(&r.ID, &started, &r.InputDir, &r.OutputDir,
			&r.Exported, &r.NoTables, &r.Failed); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, started)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Documents returns the per-document outcomes recorded for a run, in
// insertion order.
func (s *Store) Documents(ctx context.Context, runID int64) ([]types.DocumentOutcome, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT file, status, tables, sheets, error FROM documents
		 WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var docs []types.DocumentOutcome
	for rows.Next() {
		var (
			d      types.DocumentOutcome
			status string
		)
		if err := rows.Scan(&d.File, &status, &d.Tables, &d.Sheets, &d.Error); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		d.Status = types.DocumentStatus(status)
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
