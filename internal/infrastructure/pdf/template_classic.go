package pdf

import (
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

// classicTemplate: layout sobrio de una página, tipografía serif-like y
// acentos mínimos. Es la plantilla por defecto.
type classicTemplate struct{}

func (classicTemplate) Pages(inv entity.Invoice, st Style) []Page {
	rows := logoRows(st)
	rows = append(rows,
		// Cabecera: rótulo del documento + número y fechas
		row.New(20).Add(
			col.New(7).Add(
				text.New(inv.Title(), props.Text{
					Style: fontstyle.Bold, Size: 22, Color: st.Secondary, Top: 1,
				}),
				text.New("# "+inv.DocumentNumber, props.Text{Size: 9, Top: 13, Color: colorGray}),
			),
			col.New(5).Add(
				text.New("Date: "+inv.IssueDate, props.Text{Size: 9, Align: align.Right, Top: 4, Color: colorGray}),
				text.New(dueDateLine(inv), props.Text{Size: 9, Align: align.Right, Top: 10, Color: colorGray}),
			),
		),
		line.NewRow(1, props.Line{Color: st.Secondary, Thickness: 0.5}),
	)
	rows = append(rows, partyRows(inv, st)...)
	rows = append(rows, line.NewRow(1, props.Line{Color: st.Secondary, Thickness: 0.3}))
	rows = append(rows, tableHeaderRow(st))
	rows = append(rows, itemRows(inv.Items, st)...)
	rows = append(rows, totalsRows(inv, st)...)
	rows = append(rows,
		line.NewRow(3),
		row.New(8).Add(col.New(12).Add(
			text.New("Thank you for your business.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)),
	)
	return []Page{{Rows: rows, HasTotals: true}}
}

// dueDateLine omite la línea cuando no hay fecha de vencimiento.
func dueDateLine(inv entity.Invoice) string {
	if inv.DueDate == "" {
		return ""
	}
	return "Due: " + inv.DueDate
}
