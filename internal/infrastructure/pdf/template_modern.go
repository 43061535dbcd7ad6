package pdf

import (
	"strings"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

// modernTemplate: bloque de acento prominente y rótulo en mayúsculas.
type modernTemplate struct{}

func (modernTemplate) Pages(inv entity.Invoice, st Style) []Page {
	rows := logoRows(st)
	rows = append(rows,
		row.New(24).Add(
			col.New(8).Add(
				text.New(strings.ToUpper(inv.Title()), props.Text{
					Style: fontstyle.Bold, Size: 26, Color: st.Accent, Top: 2,
				}),
			),
			col.New(4).Add(
				text.New(inv.Company.Name, props.Text{
					Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: st.Secondary, Top: 3,
				}),
				text.New(inv.Company.Address, props.Text{Size: 8, Align: align.Right, Top: 10, Color: colorGray}),
				text.New(contactLine(inv.Company), props.Text{Size: 8, Align: align.Right, Top: 15, Color: colorGray}),
			),
		),
		line.NewRow(2, props.Line{Color: st.Accent, Thickness: 1.2}),
		row.New(14).Add(
			col.New(6).Add(
				text.New("INVOICE TO", props.Text{Style: fontstyle.Bold, Size: 8, Color: st.Accent, Top: 1}),
				text.New(inv.Client.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6, Color: st.Secondary}),
			),
			col.New(6).Add(
				text.New("NO. "+inv.DocumentNumber, props.Text{Size: 9, Align: align.Right, Top: 2, Color: st.Secondary}),
				text.New(inv.IssueDate, props.Text{Size: 9, Align: align.Right, Top: 8, Color: colorGray}),
			),
		),
	)
	rows = append(rows, tableHeaderRow(st))
	rows = append(rows, line.NewRow(1, props.Line{Color: st.Accent, Thickness: 0.4}))
	rows = append(rows, itemRows(inv.Items, st)...)
	rows = append(rows, totalsRows(inv, st)...)
	return []Page{{Rows: rows, HasTotals: true}}
}
