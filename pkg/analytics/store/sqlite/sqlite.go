package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/internalerr"
	"github.com/bhuvaneshd32/Reddit-Realtime-Analytics/pkg/analytics/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, unavailable("open", path, err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, unavailable("open", path, err)
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, unavailable("open", path, err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, unavailable("init schema", path, err)
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist.
// records keeps insertion order through its autoincrement id; cells holds
// one qualified column value per row.
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS records (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	dataset TEXT NOT NULL,
	row_key TEXT NOT NULL,
	UNIQUE(dataset, row_key)
);

CREATE TABLE IF NOT EXISTS cells (
	record_id INTEGER NOT NULL,
	qualifier TEXT NOT NULL,
	value TEXT NOT NULL,
	UNIQUE(record_id, qualifier),
	FOREIGN KEY(record_id) REFERENCES records(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_records_dataset ON records(dataset);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// Put inserts or replaces a row
func (s *sqliteStore) Put(ctx context.Context, dataset string, row store.Row) error {
	if row.Key == "" {
		return fmt.Errorf("put %s: empty row key: %w", dataset, internalerr.ErrInvalidInput)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return unavailable("put", dataset, err)
	}
	defer tx.Rollback()

	const stmt = `
INSERT INTO records (dataset, row_key)
VALUES (?, ?)
ON CONFLICT(dataset, row_key) DO UPDATE SET
	row_key=excluded.row_key
RETURNING id;
`

	var recordID int64
	if err := tx.QueryRowContext(ctx, stmt, dataset, row.Key).Scan(&recordID); err != nil {
		return unavailable("put", dataset, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM cells WHERE record_id = ?`, recordID); err != nil {
		return unavailable("put", dataset, err)
	}
	for qualifier, value := range row.Columns {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO cells (record_id, qualifier, value) VALUES (?, ?, ?)`,
			recordID, qualifier, value,
		); err != nil {
			return unavailable("put", dataset, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return unavailable("put", dataset, err)
	}
	return nil
}

// Scan returns every row of the dataset in insertion order
func (s *sqliteStore) Scan(ctx context.Context, dataset string) ([]store.Row, error) {
	const query = `
SELECT r.row_key, c.qualifier, c.value
FROM records r
LEFT JOIN cells c ON c.record_id = r.id
WHERE r.dataset = ?
ORDER BY r.id
`
	rows, err := s.db.QueryContext(ctx, query, dataset)
	if err != nil {
		return nil, unavailable("scan", dataset, err)
	}
	defer rows.Close()

	var out []store.Row
	for rows.Next() {
		var (
			key       string
			qualifier sql.NullString
			value     sql.NullString
		)
		if err := rows.Scan(&key, &qualifier, &value); err != nil {
			return nil, unavailable("scan", dataset, err)
		}
		if len(out) == 0 || out[len(out)-1].Key != key {
			out = append(out, store.Row{Key: key, Columns: make(map[string]string)})
		}
		if qualifier.Valid {
			out[len(out)-1].Columns[qualifier.String] = value.String
		}
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("scan", dataset, err)
	}
	return out, nil
}

func unavailable(op, target string, err error) error {
	return fmt.Errorf("%s %s: %w: %w", op, target, internalerr.ErrStoreUnavailable, err)
}
