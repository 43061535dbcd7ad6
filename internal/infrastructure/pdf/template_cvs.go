package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

const cvsItemsPerPage = 20

// cvsTemplate: variante de marca con banda tricolor y paginación a 20 líneas.
// La primera página lleva la cabecera completa (identidad + cliente); las
// siguientes repiten una cabecera compacta para no perder el contexto.
type cvsTemplate struct{}

func (cvsTemplate) Pages(inv entity.Invoice, st Style) []Page {
	return buildPaginated(inv, st, cvsItemsPerPage, chrome{
		header: cvsHeader,
		footer: cvsFooter,
	})
}

func cvsHeader(inv entity.Invoice, st Style, pageIdx, _ int) []core.Row {
	if pageIdx > 0 {
		// Cabecera compacta de continuación
		return []core.Row{
			row.New(10).Add(
				col.New(8).Add(text.New(inv.Company.Name, props.Text{
					Style: fontstyle.Bold, Size: 10, Color: st.Secondary, Top: 1,
				})),
				col.New(4).Add(text.New(inv.Title()+" # "+inv.DocumentNumber+" (cont.)", props.Text{
					Size: 8, Align: align.Right, Color: colorGray, Top: 2,
				})),
			),
			line.NewRow(1, props.Line{Color: st.Secondary, Thickness: 0.4}),
		}
	}
	rows := logoRows(st)
	return append(rows,
		row.New(22).Add(
			col.New(7).Add(
				text.New(inv.Company.Name, props.Text{
					Style: fontstyle.Bold, Size: 16, Color: st.Secondary, Top: 2,
				}),
				text.New(contactLine(inv.Company), props.Text{Size: 8, Top: 13, Color: colorGray}),
			),
			col.New(5).Add(
				text.New("Supply & Installation", props.Text{
					Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: st.Accent, Top: 2,
				}),
				text.New("Domestic, Commercial & Industrial", props.Text{
					Size: 7, Align: align.Right, Color: colorGray, Top: 7,
				}),
				text.New(inv.Title()+" # "+inv.DocumentNumber, props.Text{
					Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 13, Color: st.Secondary,
				}),
			),
		),
		// Banda doble al estilo de la marca
		line.NewRow(1, props.Line{Color: st.Secondary, Thickness: 1.0}),
		line.NewRow(1, props.Line{Color: st.Accent, Thickness: 0.6}),
		row.New(14).Add(
			col.New(6).Add(
				text.New("BILLED TO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1}),
				text.New(inv.Client.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6, Color: st.Secondary}),
				text.New(inv.Client.Address, props.Text{Size: 8, Top: 11, Color: colorGray}),
			),
			col.New(6).Add(
				text.New("DATE", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorGray, Top: 1}),
				text.New(inv.IssueDate, props.Text{Size: 9, Align: align.Right, Top: 6}),
			),
		),
	)
}

func cvsFooter(inv entity.Invoice, st Style, pageIdx, totalPages int) []core.Row {
	return []core.Row{
		line.NewRow(1, props.Line{Color: st.Accent, Thickness: 0.4}),
		row.New(7).Add(
			col.New(8).Add(text.New(contactLine(inv.Company), props.Text{Size: 7, Color: colorGray, Top: 1})),
			col.New(4).Add(text.New(fmt.Sprintf("%d / %d", pageIdx+1, totalPages), props.Text{
				Size: 7, Align: align.Right, Color: st.Secondary, Top: 1,
			})),
		),
	}
}
