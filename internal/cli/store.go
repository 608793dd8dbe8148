package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ganot/punchcard/internal/config"
)

var storeCmd = &cobra.Command{
	Use:   "store [path]",
	Short: "Show or change the store location",
	Long:  `With no argument, print the SQLite store path in use. With a path, persist it to the settings file so later runs use it.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if len(args) == 0 {
			fmt.Println(cfg.Store.Path)
			return nil
		}

		path, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolving path: %w", err)
		}
		cfg.Store.Path = path
		if err := config.Save(configPath, cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Store path set to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(storeCmd)
}
