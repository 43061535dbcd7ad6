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

// professionalTemplate: cabecera corporativa en color secundario y tabla
// con rayado fino. Pensada para documentos formales de una página.
type professionalTemplate struct{}

func (professionalTemplate) Pages(inv entity.Invoice, st Style) []Page {
	rows := logoRows(st)
	rows = append(rows,
		// Banda superior con identidad del emisor
		row.New(18).Add(
			col.New(8).Add(
				text.New(inv.Company.Name, props.Text{
					Style: fontstyle.Bold, Size: 15, Color: st.Secondary, Top: 2,
				}),
				text.New(contactLine(inv.Company), props.Text{Size: 8, Top: 11, Color: colorGray}),
			),
			col.New(4).Add(
				text.New(inv.Title(), props.Text{
					Style: fontstyle.Bold, Size: 13, Align: align.Right, Color: st.Accent, Top: 2,
				}),
				text.New(inv.DocumentNumber, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 10}),
			),
		),
		line.NewRow(1, props.Line{Color: st.Secondary, Thickness: 0.8}),
		row.New(12).Add(
			col.New(6).Add(
				text.New("CLIENT", props.Text{Style: fontstyle.Bold, Size: 8, Color: st.Secondary, Top: 1}),
				text.New(inv.Client.Name+" — "+inv.Client.Address, props.Text{Size: 9, Top: 6}),
			),
			col.New(3).Add(
				text.New("ISSUED", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: st.Secondary, Top: 1}),
				text.New(inv.IssueDate, props.Text{Size: 9, Align: align.Right, Top: 6}),
			),
			col.New(3).Add(
				text.New("DUE", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: st.Secondary, Top: 1}),
				text.New(nonEmpty(inv.DueDate, "—"), props.Text{Size: 9, Align: align.Right, Top: 6}),
			),
		),
		line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}),
	)
	rows = append(rows, tableHeaderRow(st))
	for _, r := range itemRows(inv.Items, st) {
		rows = append(rows, r, line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.1}))
	}
	rows = append(rows, totalsRows(inv, st)...)
	rows = append(rows, row.New(10).Add(col.New(12).Add(
		text.New("Payment due within the stated term. Please reference the document number.", props.Text{
			Size: 8, Align: align.Center, Color: colorGray, Top: 3,
		}),
	)))
	return []Page{{Rows: rows, HasTotals: true}}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
