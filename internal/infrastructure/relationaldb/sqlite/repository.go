// Package sqlite provides a SQLite implementation of the SnapshotStore interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/dex/internal/domain/entities"
	"github.com/ersonp/dex/internal/infrastructure/config"
)

// generateUUID returns a new UUID string.
func generateUUID() string {
	return uuid.New().String()
}

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Repository implements ports.SnapshotStore using SQLite.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.SQLiteConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// A single connection keeps ":memory:" databases coherent across calls.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{db: db}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- One row per export run
	CREATE TABLE IF NOT EXISTS snapshots (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		record_count INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	-- Records belonging to a snapshot, in source column layout
	CREATE TABLE IF NOT EXISTS records (
		snapshot_id TEXT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		id INTEGER NOT NULL,
		name TEXT NOT NULL,
		type1 TEXT NOT NULL,
		type2 TEXT NOT NULL DEFAULT '',
		hp INTEGER NOT NULL,
		attack INTEGER NOT NULL,
		defense INTEGER NOT NULL,
		sp_attack INTEGER NOT NULL,
		sp_defense INTEGER NOT NULL,
		speed INTEGER NOT NULL,
		total INTEGER NOT NULL,
		PRIMARY KEY (snapshot_id, name)
	);
	CREATE INDEX IF NOT EXISTS idx_records_id ON records(snapshot_id, id);
	CREATE INDEX IF NOT EXISTS idx_records_total ON records(snapshot_id, total);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// SaveSnapshot writes all records under a new snapshot in one transaction.
func (r *Repository) SaveSnapshot(ctx context.Context, source string, records []*entities.Record) (id string, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	id = generateUUID()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO snapshots (id, source, record_count, created_at) VALUES (?, ?, ?, ?)`,
		id, source, len(records), timeNow(),
	)
	if err != nil {
		return "", fmt.Errorf("saving snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (snapshot_id, position, id, name, type1, type2,
			hp, attack, defense, sp_attack, sp_defense, speed, total)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return "", fmt.Errorf("preparing record insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		categories := rec.Categories()
		type2 := ""
		if len(categories) > 1 {
			type2 = categories[1]
		}
		stats := rec.Stats()

		_, err = stmt.ExecContext(ctx,
			id, i, rec.ID(), rec.Name(), categories[0], type2,
			stats[entities.StatHealth],
			stats[entities.StatAttack],
			stats[entities.StatDefense],
			stats[entities.StatSpecialAttack],
			stats[entities.StatSpecialDefense],
			stats[entities.StatSpeed],
			rec.Total(),
		)
		if err != nil {
			return "", fmt.Errorf("saving record %s: %w", rec.Name(), err)
		}
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("committing snapshot: %w", err)
	}
	return id, nil
}

// CountRecords returns the number of records stored for a snapshot.
func (r *Repository) CountRecords(ctx context.Context, snapshotID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records WHERE snapshot_id = ?`, snapshotID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return count, nil
}

// ListRecords rebuilds the records of a snapshot in their saved order.
func (r *Repository) ListRecords(ctx context.Context, snapshotID string) ([]*entities.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, type1, type2, hp, attack, defense, sp_attack, sp_defense, speed
		FROM records
		WHERE snapshot_id = ?
		ORDER BY position
	`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var records []*entities.Record
	for rows.Next() {
		var (
			id           int
			name         string
			type1, type2 string
			stats        = make([]int, entities.StatCount)
		)
		if err := rows.Scan(&id, &name, &type1, &type2,
			&stats[0], &stats[1], &stats[2], &stats[3], &stats[4], &stats[5]); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}

		categories := []string{type1}
		if type2 != "" {
			categories = append(categories, type2)
		}
		rec, err := entities.NewRecord(id, name, categories, stats)
		if err != nil {
			return nil, fmt.Errorf("rebuilding record %s: %w", name, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}

	return records, nil
}
