// Package store persists completed runs to SQLite so past research
// sessions can be reopened. Each run is a small metadata row plus a
// JSON document carrying the scored columns and semantic graph.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/abelbrown/parallax/internal/logging"
)

// Store handles run history persistence
type Store struct {
	db *sql.DB
}

// RunSummary is the metadata row shown in history listings.
type RunSummary struct {
	ID        int64
	Topic     string
	LensID    string
	CreatedAt time.Time
}

// RunRecord is a full saved run: summary plus the JSON document.
type RunRecord struct {
	RunSummary
	Document json.RawMessage
}

// New opens (or creates) the run history database at dbPath.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		logging.Error("Failed to open database", "path", dbPath, "error", err)
		return nil, err
	}

	// WAL keeps readers unblocked during saves.
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		logging.Error("Failed to migrate database", "error", err)
		db.Close()
		return nil, err
	}

	logging.Info("Run history initialized", "path", dbPath)
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		topic TEXT NOT NULL,
		lens_id TEXT NOT NULL,
		document TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveRun persists a completed run. The document can be any
// JSON-marshalable value; callers typically pass the session's column
// results and edge set.
func (s *Store) SaveRun(topic, lensID string, document any) (int64, error) {
	data, err := json.Marshal(document)
	if err != nil {
		return 0, fmt.Errorf("failed to encode run document: %w", err)
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (topic, lens_id, document, created_at) VALUES (?, ?, ?, ?)`,
		topic, lensID, string(data), time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save run: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	logging.Info("Run saved", "id", id, "topic", topic, "lens", lensID)
	return id, nil
}

// ListRuns returns run summaries newest-first, up to limit (<=0 means
// no limit).
func (s *Store) ListRuns(limit int) ([]RunSummary, error) {
	query := `SELECT id, topic, lens_id, created_at FROM runs ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.Topic, &r.LensID, &r.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// LoadRun retrieves one saved run with its document.
func (s *Store) LoadRun(id int64) (*RunRecord, error) {
	var r RunRecord
	var doc string
	err := s.db.QueryRow(
		`SELECT id, topic, lens_id, document, created_at FROM runs WHERE id = ?`, id,
	).Scan(&r.ID, &r.Topic, &r.LensID, &doc, &r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to load run %d: %w", id, err)
	}
	r.Document = json.RawMessage(doc)
	return &r, nil
}

// DeleteRun removes a saved run.
func (s *Store) DeleteRun(id int64) error {
	result, err := s.db.Exec(`DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete run %d: %w", id, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("run %d not found", id)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
