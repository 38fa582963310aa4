// Package sqlite stores the beach registry in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"go.ngs.io/surf-api/internal/domain"
)

const schema = `
	CREATE TABLE IF NOT EXISTS beaches (
		id TEXT PRIMARY KEY,
		nombre TEXT NOT NULL,
		lat REAL NOT NULL,
		long REAL NOT NULL,
		pais TEXT NOT NULL
	);
`

// Store keeps the registry in a single beaches table.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if needed) the database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		//nolint:gosec // G301: Standard data directory permissions.
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: creating %s: %v", domain.ErrStorage, dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", domain.ErrStorage, err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: creating beaches table: %v", domain.ErrStorage, err)
	}
	return &Store{db: db}, nil
}

// Load returns every row of the beaches table.
func (s *Store) Load(ctx context.Context) (map[string]domain.Beach, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, nombre, lat, long, pais FROM beaches`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying beaches: %v", domain.ErrStorage, err)
	}
	defer rows.Close()

	beaches := make(map[string]domain.Beach)
	for rows.Next() {
		var b domain.Beach
		if err := rows.Scan(&b.ID, &b.Name, &b.Latitude, &b.Longitude, &b.Country); err != nil {
			return nil, fmt.Errorf("%w: scanning beach: %v", domain.ErrStorage, err)
		}
		b.ID = domain.NormalizeID(b.ID)
		beaches[b.ID] = b
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating beaches: %v", domain.ErrStorage, err)
	}
	return beaches, nil
}

// Save replaces the table contents in one transaction.
func (s *Store) Save(ctx context.Context, beaches map[string]domain.Beach) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %v", domain.ErrStorage, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM beaches`); err != nil {
		return fmt.Errorf("%w: clearing beaches: %v", domain.ErrStorage, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO beaches (id, nombre, lat, long, pais) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: preparing insert: %v", domain.ErrStorage, err)
	}
	defer stmt.Close()

	for id, b := range beaches {
		if _, err := stmt.ExecContext(ctx, id, b.Name, b.Latitude, b.Longitude, b.Country); err != nil {
			return fmt.Errorf("%w: inserting beach %s: %v", domain.ErrStorage, id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing: %v", domain.ErrStorage, err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
