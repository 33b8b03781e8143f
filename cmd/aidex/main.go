// Package main provides the aidex CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/localforge/aidex/internal/catalog"
	"github.com/localforge/aidex/internal/config"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// dbPathFlag overrides the database path for a single invocation
var dbPathFlag string

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "aidex",
	Short: "Offline catalog of AI systems with full-text search",
	Long: `aidex is a local, fully offline catalog of AI-system metadata.

Records (name, provider, description, capabilities, tags) are stored in
an embedded SQLite database with an FTS5 index kept in sync by triggers,
so keyword searches are ranked by bm25 relevance. All commands output
JSON by default for easy integration with AI agents and other tools.

The database path is resolved from --db, the AIDEX_DB environment
variable, db_path in ~/.config/aidex/config.yml, then ./aidex.db.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Pick up AIDEX_DB from a local .env if present
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "Database file path (overrides env and config)")
	rootCmd.Version = Version
}

// mustOpenCatalog opens the catalog database, exits on error.
// The caller is responsible for calling Close() on the returned DB.
func mustOpenCatalog() *catalog.DB {
	path := config.ResolveDBPath(dbPathFlag)
	db, err := catalog.Open(path)
	if err != nil {
		exitWithError(ExitError, "opening database: %v", err)
	}
	return db
}
