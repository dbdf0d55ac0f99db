// SQLite run history.
//
// Information Hiding:
// - SQLite connection management hidden behind HistoryStore
// - Schema and column encoding details encapsulated
// - Thread-safe via sql.DB's built-in connection pooling

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

	_ "github.com/mattn/go-sqlite3"
)

// SqliteStorage implements HistoryStore using SQLite.
// Thread-safe: sql.DB handles connection pooling and concurrent access.
type SqliteStorage struct {
	db *sql.DB
}

// OpenSqlite opens or creates a SQLite database at the given path.
// Creates parent directories if they don't exist.
func OpenSqlite(path string) (*SqliteStorage, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	storage := &SqliteStorage{db: db}
	if err := storage.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return storage, nil
}

// NewSqliteInMemory creates an in-memory database (useful for testing).
func NewSqliteInMemory() (*SqliteStorage, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory SQLite: %w", err)
	}
	// every connection would get its own empty :memory: database
	db.SetMaxOpenConns(1)

	storage := &SqliteStorage{db: db}
	if err := storage.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return storage, nil
}

// Close closes the database connection.
func (s *SqliteStorage) Close() error {
	return s.db.Close()
}

func (s *SqliteStorage) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			args_hash TEXT NOT NULL,
			binary_path TEXT NOT NULL,
			args TEXT NOT NULL,
			exit_code INTEGER NOT NULL,
			stdout BLOB NOT NULL,
			stderr BLOB NOT NULL,
			started_at INTEGER NOT NULL,
			duration_ns INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_runs_args
		ON runs(args_hash, started_at DESC);

		CREATE INDEX IF NOT EXISTS idx_runs_started
		ON runs(started_at DESC);
	`

	_, err := s.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const runColumns = "id, args_hash, binary_path, args, exit_code, stdout, stderr, started_at, duration_ns"

// Save stores a run. Saving an existing ID replaces it.
func (s *SqliteStorage) Save(ctx context.Context, rec RunRecord) error {
	args, err := json.Marshal(rec.Args)
	if err != nil {
		return fmt.Errorf("failed to encode args: %w", err)
	}
	if rec.ArgsHash == "" {
		rec.ArgsHash = HashArgs(rec.Args)
	}
	stdout, stderr := rec.Stdout, rec.Stderr
	if stdout == nil {
		stdout = []byte{}
	}
	if stderr == nil {
		stderr = []byte{}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO runs (`+runColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.ArgsHash,
		rec.Binary,
		string(args),
		rec.ExitCode,
		stdout,
		stderr,
		rec.StartedAt.UnixNano(),
		int64(rec.Duration),
	)
	if err != nil {
		return fmt.Errorf("failed to store run: %w", err)
	}
	return nil
}

// Get loads the run with the given ID.
func (s *SqliteStorage) Get(ctx context.Context, id string) (RunRecord, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+runColumns+" FROM runs WHERE id = ?", id)
	rec, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return RunRecord{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return rec, err
}

// Latest returns the most recent run with exactly these arguments.
func (s *SqliteStorage) Latest(ctx context.Context, args []string) (RunRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+runColumns+" FROM runs WHERE args_hash = ? ORDER BY started_at DESC, rowid DESC",
		HashArgs(args))
	if err != nil {
		return RunRecord{}, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return RunRecord{}, err
		}
		if sameArgs(rec.Args, args) {
			return rec, nil
		}
	}
	if err := rows.Err(); err != nil {
		return RunRecord{}, fmt.Errorf("error iterating runs: %w", err)
	}
	return RunRecord{}, ErrRunNotFound
}

// List returns up to limit runs, newest first. A limit of zero or less
// returns every run.
func (s *SqliteStorage) List(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+runColumns+" FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	runs := []RunRecord{} // Start with empty slice, not nil
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}
	return runs, nil
}

// Delete removes a run. Deleting an unknown ID returns ErrRunNotFound.
func (s *SqliteStorage) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (RunRecord, error) {
	var (
		rec        RunRecord
		args       string
		startedAt  int64
		durationNs int64
	)
	err := row.Scan(&rec.ID, &rec.ArgsHash, &rec.Binary, &args, &rec.ExitCode,
		&rec.Stdout, &rec.Stderr, &startedAt, &durationNs)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RunRecord{}, err
		}
		return RunRecord{}, fmt.Errorf("failed to scan run: %w", err)
	}
	if err := json.Unmarshal([]byte(args), &rec.Args); err != nil {
		return RunRecord{}, fmt.Errorf("failed to decode args of run %s: %w", rec.ID, err)
	}
	rec.StartedAt = time.Unix(0, startedAt)
	rec.Duration = time.Duration(durationNs)
	return rec, nil
}

// Verify SqliteStorage implements HistoryStore
var _ HistoryStore = (*SqliteStorage)(nil)
