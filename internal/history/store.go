// Package history persists executed calculator lines to a sqlite database.
// The log is an optional convenience around the calculator: it observes
// lines, it never influences them.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	session TEXT    NOT NULL,
	line    INTEGER NOT NULL,
	input   TEXT    NOT NULL,
	ok      INTEGER NOT NULL,
	at      TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS entries_session ON entries (session, line);
`

// Entry is one executed line.
type Entry struct {
	Session string
	Line    int
	Input   string
	OK      bool
	At      time.Time
}

// Store appends executed lines to a sqlite file. Each Store owns a fresh
// session id, so interleaved runs against the same file stay separable.
type Store struct {
	db      *sql.DB
	session string
}

// Open opens (creating if needed) the history database at path and starts
// a new session.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history db: %w", err)
	}
	return &Store{db: db, session: uuid.NewString()}, nil
}

// Session returns this run's session id.
func (s *Store) Session() string {
	return s.session
}

// Append records one executed line.
func (s *Store) Append(line int, input string, ok bool) error {
	_, err := s.db.Exec(
		`INSERT INTO entries (session, line, input, ok, at) VALUES (?, ?, ?, ?, ?)`,
		s.session, line, input, ok, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("appending history entry: %w", err)
	}
	return nil
}

// Tail returns the most recent limit entries across all sessions, oldest
// first.
func (s *Store) Tail(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT session, line, input, ok, at FROM entries ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var at string
		if err := rows.Scan(&e.Session, &e.Line, &e.Input, &e.OK, &at); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		e.At, _ = time.Parse(time.RFC3339Nano, at)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	// Tail reads newest first; present oldest first.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
