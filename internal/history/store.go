// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists fetched metric snapshots in a SQLite database
// so metric movement over time survives artifact overwrites.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/SamirRachidZaim/scholar-metrics/pkg/types"
)

const dbFile = "scholar-history.db"

// ErrNoSnapshots indicates the history store is empty.
var ErrNoSnapshots = errors.New("history: no snapshots recorded")

// Snapshot is one recorded fetch.
type Snapshot struct {
	FetchedAt time.Time `json:"fetched_at" yaml:"fetched_at"`
	Citations int       `json:"citations" yaml:"citations"`
	HIndex    int       `json:"hindex" yaml:"hindex"`
	I10       int       `json:"i10" yaml:"i10"`
	Source    string    `json:"source" yaml:"source"`
}

// Store manages the snapshot SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the history database at cfg.Dir/scholar-history.db
// and creates the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
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
	statements := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			fetched_at TEXT PRIMARY KEY,
			citations INTEGER NOT NULL CHECK (citations >= 0),
			hindex INTEGER NOT NULL CHECK (hindex >= 0),
			i10 INTEGER NOT NULL CHECK (i10 >= 0),
			source TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_source ON snapshots(source)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores one fetched result. Recording the same fetch timestamp
// twice is a no-op, so a re-run of an already recorded fetch is harmless.
func (s *Store) Record(ctx context.Context, m types.Metrics) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO snapshots (fetched_at, citations, hindex, i10, source)
		 VALUES (?, ?, ?, ?, ?)`,
		m.Updated.UTC().Format(time.RFC3339), m.Citations, m.HIndex, m.I10, m.Source)
	if err != nil {
		return fmt.Errorf("recording snapshot: %w", err)
	}
	return nil
}

// List returns snapshots newest first. A non-positive limit uses the
// store default.
func (s *Store) List(ctx context.Context, limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT fetched_at, citations, hindex, i10, source
		 FROM snapshots ORDER BY fetched_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer rows.Close()

	// Always a non-nil slice so an empty history exports as [] rather
	// than null.
	snapshots := make([]Snapshot, 0, limit)
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, rows.Err()
}

// Latest returns the most recent snapshot, or ErrNoSnapshots when the
// store is empty.
func (s *Store) Latest(ctx context.Context) (Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT fetched_at, citations, hindex, i10, source
		 FROM snapshots ORDER BY fetched_at DESC LIMIT 1`)

	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, ErrNoSnapshots
	}
	return snap, err
}

// Count returns the number of recorded snapshots.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM snapshots`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting snapshots: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (Snapshot, error) {
	var snap Snapshot
	var fetchedAt string
	if err := row.Scan(&fetchedAt, &snap.Citations, &snap.HIndex, &snap.I10, &snap.Source); err != nil {
		return Snapshot{}, err
	}
	t, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return Snapshot{}, fmt.Errorf("parsing stored timestamp %q: %w", fetchedAt, err)
	}
	snap.FetchedAt = t.UTC()
	return snap, nil
}
