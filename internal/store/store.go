// Package store keeps a local sqlite journal of actions the client has
// performed against the backend, plus snapshots of the last fetched lists
// for offline display. The backend stays the source of truth for all
// entities; nothing here is synced back.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

type Store struct {
	db     *sql.DB
	logger *zerolog.Logger
}

func Open(path string, logger *zerolog.Logger) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to store: %w", err)
	}

	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	logger.Info().Str("path", path).Msg("local store initialized")
	return &Store{db: db, logger: logger}, nil
}

func createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS actions (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            kind TEXT NOT NULL,
            entity_id TEXT NOT NULL,
            amount REAL NOT NULL DEFAULT 0,
            request_id TEXT,
            detail TEXT,
            created_at DATETIME DEFAULT CURRENT_TIMESTAMP
        )`,
		`CREATE TABLE IF NOT EXISTS snapshots (
            kind TEXT PRIMARY KEY,
            payload TEXT NOT NULL,
            fetched_at DATETIME NOT NULL
        )`,

		`CREATE INDEX IF NOT EXISTS idx_actions_kind ON actions(kind)`,
		`CREATE INDEX IF NOT EXISTS idx_actions_created_at ON actions(created_at)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("error executing query %s: %w", query, err)
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// RecordAction appends one journal row.
func (s *Store) RecordAction(ctx context.Context, action *models.Action) error {
	if action.CreatedAt.IsZero() {
		action.CreatedAt = time.Now()
	}

	query := `
        INSERT INTO actions (kind, entity_id, amount, request_id, detail, created_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `

	result, err := s.db.ExecContext(ctx, query,
		action.Kind,
		action.EntityID,
		action.Amount,
		action.RequestID,
		action.Detail,
		action.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	action.ID = id
	return nil
}

// RecentActions returns the newest journal rows, newest first.
func (s *Store) RecentActions(ctx context.Context, limit int) ([]*models.Action, error) {
	if limit <= 0 {
		limit = models.DefaultPageSize
	}

	query := `
        SELECT id, kind, entity_id, amount, request_id, detail, created_at
        FROM actions
        ORDER BY created_at DESC, id DESC
        LIMIT ?
    `

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var actions []*models.Action
	for rows.Next() {
		var action models.Action
		err := rows.Scan(
			&action.ID,
			&action.Kind,
			&action.EntityID,
			&action.Amount,
			&action.RequestID,
			&action.Detail,
			&action.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		actions = append(actions, &action)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return actions, nil
}

// SnapshotList stores a fetched list as JSON keyed by kind, replacing any
// previous snapshot of that kind.
func (s *Store) SnapshotList(ctx context.Context, kind string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	query := `
        INSERT INTO snapshots (kind, payload, fetched_at) VALUES (?, ?, ?)
        ON CONFLICT(kind) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at
    `
	_, err = s.db.ExecContext(ctx, query, kind, string(data), time.Now())
	return err
}

// LoadSnapshot decodes the stored list of the given kind into out and
// returns when it was fetched. sql.ErrNoRows when no snapshot exists.
func (s *Store) LoadSnapshot(ctx context.Context, kind string, out interface{}) (time.Time, error) {
	query := `SELECT payload, fetched_at FROM snapshots WHERE kind = ?`

	var payload string
	var fetchedAt time.Time
	if err := s.db.QueryRowContext(ctx, query, kind).Scan(&payload, &fetchedAt); err != nil {
		return time.Time{}, err
	}

	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return time.Time{}, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return fetchedAt, nil
}
