package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ganot/punchcard/internal/domain/project"
)

var (
	projectsAvailable  bool
	projectsJSONOutput bool
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List registered projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		var list []project.Project
		if projectsAvailable {
			list, err = a.projects.ListAvailable(ctx)
		} else {
			list, err = a.projects.List(ctx)
		}
		if err != nil {
			return err
		}

		if projectsJSONOutput {
			data, err := json.MarshalIndent(list, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling projects: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		if len(list) == 0 {
			fmt.Println("No projects registered")
			return nil
		}

		available, err := a.projects.ListAvailable(ctx)
		if err != nil {
			return err
		}
		availableIDs := make(map[int64]bool, len(available))
		for _, p := range available {
			availableIDs[p.ID] = true
		}

		rows := make([][]string, 0, len(list))
		for _, p := range list {
			status := ""
			if !availableIDs[p.ID] {
				status = "running"
			}
			rows = append(rows, []string{strconv.FormatInt(p.ID, 10), p.Title, p.Details, status})
		}
		for _, line := range formatTable([]string{"ID", "Title", "Details", "Status"}, rows, map[int]bool{0: true}) {
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	projectsCmd.Flags().BoolVar(&projectsAvailable, "available", false, "Only projects with no open interval")
	projectsCmd.Flags().BoolVar(&projectsJSONOutput, "json", false, "Output as JSON")
	rootCmd.AddCommand(projectsCmd)
}
