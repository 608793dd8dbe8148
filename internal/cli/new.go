package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ganot/punchcard/internal/domain/project"
)

var (
	newDetails string
	newStart   bool
)

var newCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Register a new project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		proj, err := a.projects.Create(ctx, project.CreateRequest{
			Title:   args[0],
			Details: newDetails,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created project %q (ID: %d)\n", proj.Title, proj.ID)

		if newStart {
			if err := a.recover(ctx); err != nil {
				return err
			}
			iv, err := a.tracker.Start(ctx, proj.ID)
			if err != nil {
				return err
			}
			fmt.Printf("Tracking %q since %s\n", proj.Title, iv.StartTime.Format("15:04:05"))
		}
		return nil
	},
}

func init() {
	newCmd.Flags().StringVarP(&newDetails, "details", "d", "", "Free-form project description")
	newCmd.Flags().BoolVar(&newStart, "start", false, "Start tracking immediately")
	rootCmd.AddCommand(newCmd)
}
