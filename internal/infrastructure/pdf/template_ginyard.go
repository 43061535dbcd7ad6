package pdf

import (
	"fmt"
	"strings"

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

// La variante ginyard acepta más filas por página: su tabla es más compacta.
const ginyardItemsPerPage = 25

// ginyardTemplate: variante de marca de tabla densa, 25 líneas por página.
type ginyardTemplate struct{}

func (ginyardTemplate) Pages(inv entity.Invoice, st Style) []Page {
	return buildPaginated(inv, st, ginyardItemsPerPage, chrome{
		header: ginyardHeader,
		footer: ginyardFooter,
	})
}

func ginyardHeader(inv entity.Invoice, st Style, pageIdx, _ int) []core.Row {
	var rows []core.Row
	if pageIdx == 0 {
		rows = append(rows, logoRows(st)...)
	}
	rows = append(rows,
		row.New(14).Add(
			col.New(6).Add(
				text.New(strings.ToUpper(inv.Company.Name), props.Text{
					Style: fontstyle.Bold, Size: 13, Color: st.Secondary, Top: 2,
				}),
			),
			col.New(6).Add(
				text.New(strings.ToUpper(inv.Title()), props.Text{
					Style: fontstyle.Bold, Size: 13, Align: align.Right, Color: st.Accent, Top: 2,
				}),
			),
		),
		line.NewRow(1, props.Line{Color: st.Secondary, Thickness: 0.6}),
	)
	if pageIdx == 0 {
		rows = append(rows, row.New(16).Add(
			col.New(6).Add(
				text.New("TO:", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1}),
				text.New(inv.Client.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6, Color: st.Secondary}),
				text.New(inv.Client.Address, props.Text{Size: 8, Top: 11, Color: colorGray}),
			),
			col.New(6).Add(
				text.New("# "+inv.DocumentNumber, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2}),
				text.New(inv.IssueDate, props.Text{Size: 9, Align: align.Right, Top: 9, Color: colorGray}),
			),
		))
	}
	return rows
}

func ginyardFooter(inv entity.Invoice, st Style, pageIdx, totalPages int) []core.Row {
	return []core.Row{
		line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}),
		row.New(7).Add(
			col.New(6).Add(text.New(inv.Company.Phone, props.Text{Size: 7, Color: colorGray, Top: 1})),
			col.New(6).Add(text.New(fmt.Sprintf("Page %d of %d", pageIdx+1, totalPages), props.Text{
				Size: 7, Align: align.Right, Color: colorGray, Top: 1,
			})),
		),
	}
}
