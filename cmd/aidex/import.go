package main

import (
	"fmt"

	"github.com/localforge/aidex/internal/catalog"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file.jsonl>",
	Short: "Bulk-add records from a JSONL file",
	Long: `Bulk-add records from a JSONL file, one record per line.

Each line is a JSON object with name, provider, description,
capabilities, and tags fields. The whole batch is committed in a
single transaction: either every record is stored and indexed, or
none are.

Example:
  aidex import records.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	recs, err := catalog.ReadRecords(args[0])
	if err != nil {
		exitWithError(ExitDataError, "reading %s: %v", args[0], err)
	}

	db := mustOpenCatalog()
	defer db.Close()

	count, err := db.InsertMany(recs)
	if err != nil {
		exitWithError(ExitError, "importing records: %v", err)
	}

	if humanOutput {
		fmt.Printf("Imported %d records\n", count)
	} else {
		outputJSON(ImportResponse{Status: "imported", Imported: count})
	}
	return nil
}
