// Package cli defines the punchcard command tree.
package cli

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "punchcard",
	Short: "Project time tracker",
	Long:  `Punchcard logs work intervals per project to SQLite and reports cumulative time, with PDF and spreadsheet export.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the settings file (default: XDG config dir)")
}
