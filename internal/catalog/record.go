// Package catalog handles persistence and full-text search of AI records
// in an embedded SQLite database.
package catalog

// Record holds the caller-supplied fields of an AI system entry.
// All fields are required; empty strings are permitted.
type Record struct {
	Name         string `json:"name"`
	Provider     string `json:"provider"`
	Description  string `json:"description"`
	Capabilities string `json:"capabilities"`
	Tags         string `json:"tags"`
}

// StoredRecord is a Record as persisted: the store assigns the ID and
// creation timestamp at insert time. IDs are strictly increasing and
// never reused within a database lifetime.
type StoredRecord struct {
	ID int64 `json:"id"`
	Record
	CreatedAt string `json:"created_at"`
}

// SearchResult pairs a stored record with its bm25 relevance score.
// Lower scores indicate better matches.
type SearchResult struct {
	StoredRecord
	Score float64 `json:"score"`
}
