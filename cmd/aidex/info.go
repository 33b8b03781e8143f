package main

import (
	"fmt"
	"os"

	"github.com/localforge/aidex/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show catalog statistics",
	Long: `Show the database path, record count, and file size.

Example:
  aidex info`,
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := config.ResolveDBPath(dbPathFlag)

	db := mustOpenCatalog()
	defer db.Close()

	count, err := db.Count()
	if err != nil {
		exitWithError(ExitError, "counting records: %v", err)
	}

	var size int64
	if stat, err := os.Stat(path); err == nil {
		size = stat.Size()
	}

	if humanOutput {
		fmt.Printf("database: %s\n", path)
		fmt.Printf("records:  %d\n", count)
		fmt.Printf("size:     %s\n", formatBytes(size))
	} else {
		outputJSON(InfoResponse{DBPath: path, Records: count, DBSize: size})
	}
	return nil
}

// formatBytes formats bytes in a human-readable way.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
