package catalog

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection holding the catalog.
// A DB is not safe for concurrent use; callers needing that must
// serialize externally.
type DB struct {
	db     *sql.DB
	closed bool
}

// selectRecordFields contains the standard field list for SELECT queries.
const selectRecordFields = `id, name, provider, description, capabilities, tags, created_at`

// Open opens or creates a catalog database at the given path, creating
// schema objects only if absent. Repeated opens against the same path
// are safe. The caller owns the returned handle and must Close it.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close releases the database handle. Closing twice is safe; every
// other operation on a closed DB returns ErrClosed.
func (d *DB) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	return d.db.Close()
}

// Insert stores a record, assigning the next identifier and a creation
// timestamp, and returns the new identifier. The FTS index entry is
// written by trigger in the same transaction.
func (d *DB) Insert(rec Record) (int64, error) {
	if d.closed {
		return 0, ErrClosed
	}

	res, err := d.db.Exec(`
		INSERT INTO ai_records (name, provider, description, capabilities, tags)
		VALUES (?, ?, ?, ?, ?)`,
		rec.Name, rec.Provider, rec.Description, rec.Capabilities, rec.Tags)
	if err != nil {
		return 0, fmt.Errorf("inserting record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted id: %w", err)
	}
	return id, nil
}

// InsertMany stores all records in a single transaction and returns
// the number inserted. On failure nothing is committed.
func (d *DB) InsertMany(recs []Record) (int, error) {
	if d.closed {
		return 0, ErrClosed
	}
	if len(recs) == 0 {
		return 0, nil
	}

	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO ai_records (name, provider, description, capabilities, tags)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range recs {
		if _, err := stmt.Exec(rec.Name, rec.Provider, rec.Description, rec.Capabilities, rec.Tags); err != nil {
			return 0, fmt.Errorf("inserting record %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing batch: %w", err)
	}
	return len(recs), nil
}

// Delete removes the record with the given identifier and reports
// whether a row was removed. Deleting an absent id is not an error.
func (d *DB) Delete(id int64) (bool, error) {
	if d.closed {
		return false, ErrClosed
	}

	res, err := d.db.Exec(`DELETE FROM ai_records WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting record %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading rows affected: %w", err)
	}
	return n > 0, nil
}

// Get retrieves a record by its identifier. Returns nil without error
// when no record has that id.
func (d *DB) Get(id int64) (*StoredRecord, error) {
	if d.closed {
		return nil, ErrClosed
	}

	row := d.db.QueryRow(`SELECT `+selectRecordFields+` FROM ai_records WHERE id = ?`, id)
	return scanRecord(row)
}

// ListAll returns every record ordered by ascending identifier.
func (d *DB) ListAll() ([]StoredRecord, error) {
	if d.closed {
		return nil, ErrClosed
	}

	rows, err := d.db.Query(`SELECT ` + selectRecordFields + ` FROM ai_records ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Count returns the total number of records.
func (d *DB) Count() (int, error) {
	if d.closed {
		return 0, ErrClosed
	}

	var count int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM ai_records`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return count, nil
}

// Search evaluates an FTS5 boolean keyword expression against the
// index and returns at most limit records, best match first. Scores
// come from bm25, where lower is more relevant, so ascending order
// preserves best-first. No match yields an empty result, not an error.
// A malformed expression yields a *QueryError.
func (d *DB) Search(query string, limit int) ([]SearchResult, error) {
	if d.closed {
		return nil, ErrClosed
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	rows, err := d.db.Query(`
		SELECT r.id, r.name, r.provider, r.description, r.capabilities, r.tags, r.created_at,
		       bm25(ai_records_fts) AS score
		FROM ai_records_fts f
		JOIN ai_records r ON r.id = f.rowid
		WHERE ai_records_fts MATCH ?
		ORDER BY score
		LIMIT ?`, query, limit)
	if err != nil {
		if isSyntaxError(err) {
			return nil, &QueryError{Query: query, Err: err}
		}
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var res SearchResult
		if err := rows.Scan(
			&res.ID, &res.Name, &res.Provider, &res.Description,
			&res.Capabilities, &res.Tags, &res.CreatedAt, &res.Score,
		); err != nil {
			return nil, fmt.Errorf("scanning search result: %w", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		if isSyntaxError(err) {
			return nil, &QueryError{Query: query, Err: err}
		}
		return nil, fmt.Errorf("reading search results: %w", err)
	}
	return results, nil
}

// scanner interface for sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(s scanner) (*StoredRecord, error) {
	var rec StoredRecord
	var createdAt sql.NullString

	err := s.Scan(&rec.ID, &rec.Name, &rec.Provider, &rec.Description,
		&rec.Capabilities, &rec.Tags, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	rec.CreatedAt = createdAt.String
	return &rec, nil
}

func scanRecords(rows *sql.Rows) ([]StoredRecord, error) {
	var recs []StoredRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			recs = append(recs, *rec)
		}
	}
	return recs, rows.Err()
}
