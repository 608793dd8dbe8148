// Package export writes assembled record tables to external sinks: a
// paginated PDF document and a spreadsheet workbook.
package export

import (
	"fmt"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/ganot/punchcard/internal/domain/report"
)

// Seven report columns spread over maroto's 12-unit grid.
var gridSizes = []uint{1, 2, 2, 2, 2, 2, 1}

// WritePDF renders the table as a landscape letter document with a centered
// title; the column header repeats on every page.
func WritePDF(path, title string, table report.Table) error {
	m := pdf.NewMaroto(consts.Landscape, consts.Letter)
	m.SetPageMargins(20, 10, 20)

	m.Row(12, func() {
		m.Col(12, func() {
			m.Text(title, props.Text{
				Top:   3,
				Style: consts.Bold,
				Align: consts.Center,
				Size:  16,
			})
		})
	})

	m.TableList(table.Header, table.Rows, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      10,
			GridSizes: gridSizes,
		},
		ContentProp: props.TableListContent{
			Size:      9,
			GridSizes: gridSizes,
		},
		Align:                consts.Center,
		AlternatedBackground: &color.Color{Red: 240, Green: 240, Blue: 240},
		HeaderContentSpace:   1,
		Line:                 false,
	})

	if err := m.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
