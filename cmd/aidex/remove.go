package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a record by ID",
	Long: `Remove a record by its ID. Removing an ID that does not exist
is not an error; the result reports whether a record was removed.

Example:
  aidex remove 3`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		exitWithError(ExitError, "invalid record ID: %s", args[0])
	}

	db := mustOpenCatalog()
	defer db.Close()

	removed, err := db.Delete(id)
	if err != nil {
		exitWithError(ExitError, "removing record: %v", err)
	}

	if humanOutput {
		if removed {
			fmt.Println("Removed")
		} else {
			fmt.Println("Not found")
		}
	} else {
		outputJSON(RemoveResponse{Status: "ok", ID: id, Removed: removed})
	}
	return nil
}
