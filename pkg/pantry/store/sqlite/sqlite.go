package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/cognicore/pantry/pkg/pantry/internalerr"
	"github.com/cognicore/pantry/pkg/pantry/parser"
	"github.com/cognicore/pantry/pkg/pantry/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled and creates the
// schema if needed.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(internalerr.ErrStoreUnavailable, err.Error())
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "enable WAL")
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "init schema")
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS records (
	id TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	position INTEGER NOT NULL,
	fingerprint INTEGER NOT NULL,
	original TEXT NOT NULL,
	name TEXT NOT NULL,
	unit TEXT NOT NULL DEFAULT '',
	ingredient_json TEXT NOT NULL,
	created_at TEXT NOT NULL,
	UNIQUE(source, fingerprint)
);

CREATE INDEX IF NOT EXISTS records_source_position ON records(source, position);
CREATE INDEX IF NOT EXISTS records_unit ON records(unit);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// PutRecord inserts or updates a record keyed by (source, fingerprint)
func (s *sqliteStore) PutRecord(ctx context.Context, r store.Record) (store.Record, error) {
	if r.Source == "" {
		return store.Record{}, errors.Wrap(internalerr.ErrInvalidInput, "record source is required")
	}
	if r.ID == "" {
		r.ID = store.NewID()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(r.Ingredient)
	if err != nil {
		return store.Record{}, errors.Wrap(err, "marshal ingredient")
	}

	const stmt = `
INSERT INTO records (id, source, position, fingerprint, original, name, unit, ingredient_json, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(source, fingerprint) DO UPDATE SET
	position=excluded.position,
	original=excluded.original,
	name=excluded.name,
	unit=excluded.unit,
	ingredient_json=excluded.ingredient_json
RETURNING id, created_at;
`

	var createdAt string
	err = s.db.QueryRowContext(
		ctx,
		stmt,
		r.ID,
		r.Source,
		r.Position,
		int64(r.Fingerprint),
		r.Ingredient.Original,
		r.Ingredient.Name,
		r.Unit(),
		string(payload),
		r.CreatedAt.UTC().Format(time.RFC3339Nano),
	).Scan(&r.ID, &createdAt)
	if err != nil {
		return store.Record{}, errors.Wrap(err, "upsert record")
	}

	r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return store.Record{}, errors.Wrap(err, "parse created_at")
	}
	return r, nil
}

// GetRecord retrieves a record by ID
func (s *sqliteStore) GetRecord(ctx context.Context, id string) (store.Record, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, source, position, fingerprint, ingredient_json, created_at
FROM records WHERE id = ?`, id)

	r, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return store.Record{}, errors.Wrapf(internalerr.ErrNotFound, "record %s", id)
	}
	return r, err
}

// ListBySource returns a source's records in line order
func (s *sqliteStore) ListBySource(ctx context.Context, source string) ([]store.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, source, position, fingerprint, ingredient_json, created_at
FROM records WHERE source = ?
ORDER BY position, id`, source)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []store.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// HasFingerprint reports whether a line was already stored for source
func (s *sqliteStore) HasFingerprint(ctx context.Context, source string, fp uint64) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM records WHERE source = ? AND fingerprint = ?`,
		source, int64(fp),
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// UnitCounts counts records per canonical unit
func (s *sqliteStore) UnitCounts(ctx context.Context) (map[string]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT unit, COUNT(1) FROM records GROUP BY unit`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var unit string
		var n int64
		if err := rows.Scan(&unit, &n); err != nil {
			return nil, err
		}
		counts[unit] = n
	}
	return counts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (store.Record, error) {
	var (
		r         store.Record
		fp        int64
		payload   string
		createdAt string
	)
	if err := row.Scan(&r.ID, &r.Source, &r.Position, &fp, &payload, &createdAt); err != nil {
		return store.Record{}, err
	}
	r.Fingerprint = uint64(fp)

	var ing parser.Ingredient
	if err := json.Unmarshal([]byte(payload), &ing); err != nil {
		return store.Record{}, errors.Wrap(err, "unmarshal ingredient")
	}
	r.Ingredient = ing

	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return store.Record{}, errors.Wrap(err, "parse created_at")
	}
	r.CreatedAt = t
	return r, nil
}
