package main

import (
	"fmt"
	"strings"

	"github.com/localforge/aidex/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set configuration values.

Usage:
  aidex config                        # Show all config
  aidex config db-path                # Get specific value
  aidex config db-path ~/ai/aidex.db  # Set value

Keys:
  db-path    Default database file path`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	// No args: show all config
	if len(args) == 0 {
		if humanOutput {
			fmt.Printf("db-path: %s\n", cfg.DBPath)
		} else {
			outputJSON(ConfigResponse{DBPath: cfg.DBPath})
		}
		return nil
	}

	key := normalizeKey(args[0])
	if key != "db-path" {
		exitWithError(ExitError, "unknown configuration key: %s", args[0])
	}

	// One arg: get specific value
	if len(args) == 1 {
		if humanOutput {
			fmt.Println(cfg.DBPath)
		} else {
			outputJSON(map[string]string{"db_path": cfg.DBPath})
		}
		return nil
	}

	// Two args: set value
	value := args[1]
	cfg.DBPath = config.ExpandTilde(value)

	if err := cfg.Save(); err != nil {
		exitWithError(ExitError, "saving config: %v", err)
	}

	if humanOutput {
		fmt.Printf("Updated %s to %s\n", key, value)
	} else {
		outputJSON(UpdateResponse{Status: "updated", Key: key, Value: value})
	}
	return nil
}

// normalizeKey converts key formats (db-path, db_path, DBPath) to consistent format
func normalizeKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", "-")
	return key
}
