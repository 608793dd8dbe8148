package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ganot/punchcard/internal/domain/tracker"
)

var stopCmd = &cobra.Command{
	Use:   "stop [project]",
	Short: "Stop the running timer",
	Long:  `Stop the running timer and record the interval. With no argument, stops whichever project is currently running.`,
	Args:  cobra.MaximumNArgs(1),
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

		var projectID int64
		var title string
		if len(args) == 1 {
			proj, err := a.resolveProject(ctx, args[0])
			if err != nil {
				return err
			}
			projectID, title = proj.ID, proj.Title
		} else {
			running := a.tracker.Running()
			if running == nil {
				return tracker.ErrNotRunning
			}
			projectID, title = running.ID, running.Title
		}

		iv, err := a.tracker.Stop(ctx, projectID)
		if err != nil {
			return err
		}
		fmt.Printf("Stopped %q: %s this session, %s total\n", title, iv.Duration, iv.Cumulative)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
}
