package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ganot/punchcard/internal/timefmt"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the currently running timer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		if err := a.recover(ctx); err != nil {
			return err
		}

		proj, iv, err := a.tracker.Status(ctx)
		if err != nil {
			return err
		}
		if proj == nil {
			fmt.Println("No timer running")
			return nil
		}

		elapsed := int64(time.Since(iv.StartTime) / time.Second)
		color.New(color.FgGreen).Printf("Tracking %q\n", proj.Title)
		fmt.Printf("  started %s, %s elapsed\n",
			iv.StartTime.Format(timefmt.TimestampLayout),
			timefmt.FormatSeconds(elapsed))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
