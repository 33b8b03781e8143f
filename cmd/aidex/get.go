package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a single record by ID",
	Long: `Get a single record by its ID.

Example:
  aidex get 1`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		exitWithError(ExitError, "invalid record ID: %s", args[0])
	}

	db := mustOpenCatalog()
	defer db.Close()

	rec, err := db.Get(id)
	if err != nil {
		exitWithError(ExitError, "getting record: %v", err)
	}
	if rec == nil {
		exitWithError(ExitError, "record not found: %d", id)
	}

	if humanOutput {
		printRecordSummary(*rec)
		fmt.Printf("    created: %s\n", rec.CreatedAt)
	} else {
		outputJSON(rec)
	}
	return nil
}
