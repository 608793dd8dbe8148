package cli

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ganot/punchcard/internal/export"
)

var (
	exportFormat  string
	exportOutput  string
	exportProject string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the records report to a file",
	Long:  `Export logged intervals as a PDF document or an Excel workbook. Without --output, a uniquely named file is written to the configured export directory.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportFormat != "pdf" && exportFormat != "xlsx" {
			return fmt.Errorf("unknown export format %q (want pdf or xlsx)", exportFormat)
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		scope, err := reportScope(ctx, a, exportProject)
		if err != nil {
			return err
		}

		rows, err := a.reports.Records(ctx, scope)
		if err != nil {
			return err
		}
		table := a.reports.Table(rows)

		path := exportOutput
		if path == "" {
			name := fmt.Sprintf("project-records-%s.%s", uuid.NewString(), exportFormat)
			path = filepath.Join(a.cfg.Export.Dir, name)
		}

		switch exportFormat {
		case "pdf":
			err = export.WritePDF(path, "Project Records", table)
		case "xlsx":
			err = export.WriteXLSX(path, table)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "pdf", "Output format: pdf or xlsx")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
	exportCmd.Flags().StringVarP(&exportProject, "project", "p", "", "Restrict the export to one project")
	rootCmd.AddCommand(exportCmd)
}
