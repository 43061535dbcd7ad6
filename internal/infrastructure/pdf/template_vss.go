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

// Filas de tabla por página en la variante VSS. Bloques de este tamaño evitan
// que la tabla comprima la tipografía en documentos largos.
const vssItemsPerPage = 20

// vssTemplate: variante de marca con paginación de la tabla de líneas.
// El chrome de cabecera y pie se repite en cada página; el bloque de totales
// va únicamente en la última.
type vssTemplate struct{}

func (vssTemplate) Pages(inv entity.Invoice, st Style) []Page {
	return buildPaginated(inv, st, vssItemsPerPage, chrome{
		header: vssHeader,
		footer: vssFooter,
	})
}

func vssHeader(inv entity.Invoice, st Style, pageIdx, _ int) []core.Row {
	var rows []core.Row
	// El logo solo va en la primera página
	if pageIdx == 0 {
		rows = append(rows, logoRows(st)...)
	}
	rows = append(rows,
		row.New(16).Add(
			col.New(7).Add(
				text.New(inv.Company.Name, props.Text{
					Style: fontstyle.Bold, Size: 14, Color: st.Secondary, Top: 1,
				}),
				text.New(inv.Company.Address, props.Text{Size: 8, Top: 10, Color: colorGray}),
			),
			col.New(5).Add(
				text.New(inv.Title(), props.Text{
					Style: fontstyle.Bold, Size: 12, Align: align.Right, Color: st.Accent, Top: 1,
				}),
				text.New("# "+inv.DocumentNumber+"   "+inv.IssueDate, props.Text{
					Size: 8, Align: align.Right, Top: 9, Color: colorGray,
				}),
			),
		),
		line.NewRow(1, props.Line{Color: st.Accent, Thickness: 0.8}),
	)
	// El bloque de cliente solo aporta en la primera página
	if pageIdx == 0 {
		rows = append(rows, row.New(12).Add(col.New(12).Add(
			text.New("BILLED TO", props.Text{Style: fontstyle.Bold, Size: 8, Color: st.Secondary, Top: 1}),
			text.New(inv.Client.Name+"   |   "+inv.Client.Address+"   |   "+inv.Client.Phone, props.Text{
				Size: 9, Top: 6,
			}),
		)))
	}
	return rows
}

func vssFooter(_ entity.Invoice, st Style, pageIdx, totalPages int) []core.Row {
	return []core.Row{
		line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}),
		row.New(7).Add(
			col.New(6).Add(text.New("We undertake all kinds of electrical works.", props.Text{
				Size: 7, Color: colorGray, Top: 1,
			})),
			col.New(6).Add(text.New(fmt.Sprintf("Page %d of %d", pageIdx+1, totalPages), props.Text{
				Size: 7, Align: align.Right, Color: st.Secondary, Top: 1,
			})),
		),
	}
}
