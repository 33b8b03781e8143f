package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrClosed is returned by every operation on a closed store.
var ErrClosed = errors.New("store is closed")

// ErrInvalidLimit is returned when Search is given a non-positive limit.
var ErrInvalidLimit = errors.New("limit must be a positive integer")

// QueryError reports a malformed full-text query expression.
// Stored data is unaffected.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("invalid search query %q: %v", e.Query, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// isSyntaxError reports whether err is an FTS5 query parse failure,
// as opposed to an I/O or engine failure.
func isSyntaxError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "fts5: syntax error") ||
		strings.Contains(msg, "unknown special query") ||
		strings.Contains(msg, "fts5: phrase")
}
