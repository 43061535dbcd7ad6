package pdf

import (
	"github.com/johnfercher/maroto/v2/pkg/core"

	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

// chrome son los bloques repetidos de una plantilla paginada: cabecera y pie
// que se emiten en cada página del documento.
type chrome struct {
	header func(inv entity.Invoice, st Style, pageIdx, totalPages int) []core.Row
	footer func(inv entity.Invoice, st Style, pageIdx, totalPages int) []core.Row
}

// buildPaginated parte las líneas en bloques de perPage y compone una página
// completa por bloque: chrome de cabecera, tabla del bloque, totales solo en
// el último bloque y chrome de pie. La paginación ocurre aquí, en layout,
// nunca en la etapa de encoding.
func buildPaginated(inv entity.Invoice, st Style, perPage int, ch chrome) []Page {
	chunks := PaginateItems(inv.Items, perPage)
	pages := make([]Page, 0, len(chunks))
	for idx, chunk := range chunks {
		last := idx == len(chunks)-1

		var rows []core.Row
		rows = append(rows, ch.header(inv, st, idx, len(chunks))...)
		rows = append(rows, tableHeaderRow(st))
		rows = append(rows, itemRows(chunk, st)...)
		if last {
			rows = append(rows, totalsRows(inv, st)...)
		}
		if ch.footer != nil {
			rows = append(rows, ch.footer(inv, st, idx, len(chunks))...)
		}
		pages = append(pages, Page{Rows: rows, HasTotals: last})
	}
	return pages
}
