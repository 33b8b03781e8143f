package main

import (
	"fmt"

	"github.com/localforge/aidex/internal/catalog"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <name> <provider> <description> <capabilities> <tags>",
	Short: "Add one AI record",
	Long: `Add one AI record to the catalog.

Example:
  aidex add "VisionBot" "LocalLab" "Image analysis assistant" "vision,ocr" "offline,image"`,
	Args: cobra.ExactArgs(5),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	db := mustOpenCatalog()
	defer db.Close()

	id, err := db.Insert(catalog.Record{
		Name:         args[0],
		Provider:     args[1],
		Description:  args[2],
		Capabilities: args[3],
		Tags:         args[4],
	})
	if err != nil {
		exitWithError(ExitError, "adding record: %v", err)
	}

	if humanOutput {
		fmt.Printf("Added record ID: %d\n", id)
	} else {
		outputJSON(AddResponse{Status: "added", ID: id})
	}
	return nil
}
