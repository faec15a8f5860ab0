// Package history keeps a journal of saved argument lists so an earlier
// configuration can be inspected or restored.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Snapshot is one saved argument list.
type Snapshot struct {
	ID      string
	SavedAt time.Time
	Tokens  []string
}

// Store manages the snapshot database.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore creates or opens the history database under the workspace.
func NewStore(workspace string) (*Store, error) {
	return NewStoreAt(filepath.Join(workspace, ".pyflags", "history.db"))
}

// NewStoreAt creates or opens a history database at an explicit path.
func NewStoreAt(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", "file:"+dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db, dbPath: dbPath}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id TEXT PRIMARY KEY,
		saved_at DATETIME NOT NULL,
		tokens_json TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_snapshots_saved_at ON snapshots(saved_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record stores the token list as a new snapshot and returns it.
func (s *Store) Record(tokens []string) (Snapshot, error) {
	if tokens == nil {
		tokens = []string{}
	}
	encoded, err := json.Marshal(tokens)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to encode tokens: %w", err)
	}

	snap := Snapshot{
		ID:      uuid.NewString(),
		SavedAt: time.Now().UTC(),
		Tokens:  tokens,
	}
	_, err = s.db.Exec(
		`INSERT INTO snapshots (id, saved_at, tokens_json) VALUES (?, ?, ?)`,
		snap.ID, snap.SavedAt.Format(time.RFC3339Nano), string(encoded),
	)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return snap, nil
}

// List returns the newest snapshots, most recent first. limit <= 0 lists all.
func (s *Store) List(limit int) ([]Snapshot, error) {
	query := `SELECT id, saved_at, tokens_json FROM snapshots ORDER BY saved_at DESC, id`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = s.db.Query(query+` LIMIT ?`, limit)
	} else {
		rows, err = s.db.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

// Get returns the snapshot with the given id. A unique id prefix is accepted
// so CLI users can paste the short form shown by List.
func (s *Store) Get(id string) (Snapshot, error) {
	rows, err := s.db.Query(
		`SELECT id, saved_at, tokens_json FROM snapshots WHERE id = ? OR id LIKE ? LIMIT 2`,
		id, id+"%",
	)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to query snapshot: %w", err)
	}
	defer rows.Close()

	var matches []Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return Snapshot{}, err
		}
		matches = append(matches, snap)
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, err
	}
	switch len(matches) {
	case 0:
		return Snapshot{}, fmt.Errorf("no snapshot matches %q", id)
	case 1:
		return matches[0], nil
	default:
		return Snapshot{}, fmt.Errorf("snapshot id %q is ambiguous", id)
	}
}

// Prune deletes all but the newest keep snapshots. keep <= 0 is a no-op.
func (s *Store) Prune(keep int) error {
	if keep <= 0 {
		return nil
	}
	_, err := s.db.Exec(
		`DELETE FROM snapshots WHERE id NOT IN (
			SELECT id FROM snapshots ORDER BY saved_at DESC, id LIMIT ?
		)`, keep,
	)
	if err != nil {
		return fmt.Errorf("failed to prune snapshots: %w", err)
	}
	return nil
}

func scanSnapshot(rows *sql.Rows) (Snapshot, error) {
	var snap Snapshot
	var savedAt, tokensJSON string
	if err := rows.Scan(&snap.ID, &savedAt, &tokensJSON); err != nil {
		return Snapshot{}, fmt.Errorf("failed to scan snapshot: %w", err)
	}
	ts, err := time.Parse(time.RFC3339Nano, savedAt)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse snapshot time: %w", err)
	}
	snap.SavedAt = ts
	if err := json.Unmarshal([]byte(tokensJSON), &snap.Tokens); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode snapshot tokens: %w", err)
	}
	return snap, nil
}
