package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start <project>",
	Short: "Start tracking time on a project",
	Args:  cobra.ExactArgs(1),
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

		proj, err := a.resolveProject(ctx, args[0])
		if err != nil {
			return err
		}

		iv, err := a.tracker.Start(ctx, proj.ID)
		if err != nil {
			return err
		}
		fmt.Printf("Tracking %q since %s\n", proj.Title, iv.StartTime.Format("15:04:05"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
