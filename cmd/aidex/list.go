package main

import (
	"fmt"

	"github.com/localforge/aidex/internal/catalog"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all records",
	Long: `List all records in the catalog, ordered by ID.

Example:
  aidex list`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db := mustOpenCatalog()
	defer db.Close()

	recs, err := db.ListAll()
	if err != nil {
		exitWithError(ExitError, "listing records: %v", err)
	}

	if humanOutput {
		if len(recs) == 0 {
			fmt.Println("No records in catalog")
		} else {
			fmt.Printf("%d records in catalog:\n\n", len(recs))
			for _, rec := range recs {
				fmt.Printf("  [%d] %s (%s)\n", rec.ID,
					truncateString(rec.Name, ListNameMaxLen), rec.Provider)
			}
		}
	} else {
		if recs == nil {
			recs = []catalog.StoredRecord{}
		}
		outputJSON(recs)
	}
	return nil
}
