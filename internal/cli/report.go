package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ganot/punchcard/internal/timefmt"
)

var reportProject string

var reportCmd = &cobra.Command{
	Use:   "report [project]",
	Short: "Show logged intervals and total time",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		filter := reportProject
		if len(args) == 1 {
			filter = args[0]
		}

		ctx := cmd.Context()
		scope, err := reportScope(ctx, a, filter)
		if err != nil {
			return err
		}

		rows, err := a.reports.Records(ctx, scope)
		if err != nil {
			return err
		}
		table := a.reports.Table(rows)

		for _, line := range formatTable(table.Header, table.Rows, map[int]bool{0: true, 5: true, 6: true}) {
			fmt.Println(line)
		}

		total, err := a.reports.TotalSeconds(ctx, scope)
		if err != nil {
			return err
		}
		fmt.Println()
		color.New(color.Bold).Printf("Total Project Time: %s\n", timefmt.FormatSeconds(total))
		return nil
	},
}

// reportScope resolves the optional project filter to an ID.
func reportScope(ctx context.Context, a *app, arg string) (*int64, error) {
	if arg == "" {
		return nil, nil
	}
	proj, err := a.resolveProject(ctx, arg)
	if err != nil {
		return nil, err
	}
	return &proj.ID, nil
}

func init() {
	reportCmd.Flags().StringVarP(&reportProject, "project", "p", "", "Restrict the report to one project")
	rootCmd.AddCommand(reportCmd)
}
