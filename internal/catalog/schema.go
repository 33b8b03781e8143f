package catalog

import (
	"database/sql"
)

// schema defines the primary table, its FTS5 mirror, and the triggers
// that keep the two synchronized. The FTS table is external-content:
// it stores only the token index and reads raw text back from
// ai_records by rowid, so the text is never duplicated.
//
// The triggers make index maintenance an unconditional side effect of
// every row mutation. SQLite fires them inside the same transaction as
// the triggering statement, so no reader can observe a row without its
// index entry or a dangling entry for a deleted row. The update trigger
// exists for forward compatibility; no public API issues updates today.
const schema = `
	CREATE TABLE IF NOT EXISTS ai_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		provider TEXT NOT NULL,
		description TEXT NOT NULL,
		capabilities TEXT NOT NULL,
		tags TEXT NOT NULL,
		created_at TEXT DEFAULT CURRENT_TIMESTAMP
	);

	CREATE VIRTUAL TABLE IF NOT EXISTS ai_records_fts USING fts5(
		name,
		provider,
		description,
		capabilities,
		tags,
		content='ai_records',
		content_rowid='id'
	);

	CREATE TRIGGER IF NOT EXISTS ai_records_ai AFTER INSERT ON ai_records BEGIN
		INSERT INTO ai_records_fts(rowid, name, provider, description, capabilities, tags)
		VALUES (new.id, new.name, new.provider, new.description, new.capabilities, new.tags);
	END;

	CREATE TRIGGER IF NOT EXISTS ai_records_ad AFTER DELETE ON ai_records BEGIN
		INSERT INTO ai_records_fts(ai_records_fts, rowid, name, provider, description, capabilities, tags)
		VALUES ('delete', old.id, old.name, old.provider, old.description, old.capabilities, old.tags);
	END;

	CREATE TRIGGER IF NOT EXISTS ai_records_au AFTER UPDATE ON ai_records BEGIN
		INSERT INTO ai_records_fts(ai_records_fts, rowid, name, provider, description, capabilities, tags)
		VALUES ('delete', old.id, old.name, old.provider, old.description, old.capabilities, old.tags);
		INSERT INTO ai_records_fts(rowid, name, provider, description, capabilities, tags)
		VALUES (new.id, new.name, new.provider, new.description, new.capabilities, new.tags);
	END;
`

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
