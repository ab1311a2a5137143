// Package history persists a row per `pseudo run` invocation to a local
// SQLite database, queried back by the `pseudo history` subcommand.
package history

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Run is one recorded invocation of `pseudo run`.
type Run struct {
	ID       string
	File     string
	ExitCode int
	Duration time.Duration
	RanAt    time.Time
}

// Store is a handle to the run-history database.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id        TEXT PRIMARY KEY,
	file      TEXT NOT NULL,
	exit_code INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	ran_at    TIMESTAMP NOT NULL
);
`

// Open creates or opens the database at path, ensuring the runs table
// exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Record inserts one completed run.
func (s *Store) Record(file string, exitCode int, duration time.Duration, ranAt time.Time) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (id, file, exit_code, duration_ms, ran_at) VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), file, exitCode, duration.Milliseconds(), ranAt,
	)
	return err
}

// Recent returns the most recent n runs, newest first.
func (s *Store) Recent(n int) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, file, exit_code, duration_ms, ran_at FROM runs ORDER BY ran_at DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var durMs int64
		if err := rows.Scan(&r.ID, &r.File, &r.ExitCode, &durMs, &r.RanAt); err != nil {
			return nil, err
		}
		r.Duration = time.Duration(durMs) * time.Millisecond
		out = append(out, r)
	}
	return out, rows.Err()
}
