package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/localforge/aidex/internal/catalog"
)

// Constants for output formatting.
const (
	DefaultSearchLimit = 20 // Default limit for the search command

	ListNameMaxLen   = 40 // Name truncation in list output
	SearchDescMaxLen = 70 // Description truncation in search summaries
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AddResponse is the response for the add command.
type AddResponse struct {
	Status string `json:"status"`
	ID     int64  `json:"id"`
}

// ImportResponse is the response for the import command.
type ImportResponse struct {
	Status   string `json:"status"`
	Imported int    `json:"imported"`
}

// RemoveResponse is the response for the remove command.
type RemoveResponse struct {
	Status  string `json:"status"`
	ID      int64  `json:"id"`
	Removed bool   `json:"removed"`
}

// InfoResponse is the response for the info command.
type InfoResponse struct {
	DBPath  string `json:"db_path"`
	Records int    `json:"records"`
	DBSize  int64  `json:"db_size"`
}

// ConfigResponse is the response for config get commands.
type ConfigResponse struct {
	DBPath string `json:"db_path,omitempty"`
}

// UpdateResponse is the response for config set commands.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

// printRecordSummary prints one record in human-readable form.
func printRecordSummary(rec catalog.StoredRecord) {
	fmt.Printf("[%d] %s (%s) - %s\n", rec.ID, rec.Name, rec.Provider,
		truncateString(rec.Description, SearchDescMaxLen))
	fmt.Printf("    capabilities: %s\n", rec.Capabilities)
	fmt.Printf("    tags: %s\n", rec.Tags)
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
