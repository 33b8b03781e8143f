package main

import (
	"errors"
	"fmt"

	"github.com/localforge/aidex/internal/catalog"
	"github.com/spf13/cobra"
)

var searchLimit int

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", DefaultSearchLimit, "Maximum results to return")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search records by keyword",
	Long: `Search records by keyword across name, provider, description,
capabilities, and tags. Results are ranked by bm25 relevance, best
match first.

Query Syntax (FTS5):
  term            - Match a single keyword
  a OR b          - Match either keyword
  a AND b         - Match both keywords
  "exact phrase"  - Match a phrase

Examples:
  aidex search "vision"
  aidex search "coding OR algebra"
  aidex search "reasoning" --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	db := mustOpenCatalog()
	defer db.Close()

	results, err := db.Search(args[0], searchLimit)
	if err != nil {
		var qerr *catalog.QueryError
		if errors.As(err, &qerr) {
			exitWithError(ExitDataError, "%v", qerr)
		}
		if errors.Is(err, catalog.ErrInvalidLimit) {
			exitWithError(ExitError, "%v", err)
		}
		exitWithError(ExitError, "searching: %v", err)
	}

	if humanOutput {
		if len(results) == 0 {
			fmt.Println("No records found")
		} else {
			fmt.Printf("Found %d records:\n\n", len(results))
			for _, res := range results {
				printRecordSummary(res.StoredRecord)
				fmt.Printf("    score: %.4f\n\n", res.Score)
			}
		}
	} else {
		if results == nil {
			results = []catalog.SearchResult{}
		}
		outputJSON(results)
	}
	return nil
}
