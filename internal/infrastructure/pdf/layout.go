package pdf

import (
	"strconv"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

// ── Paleta por defecto ────────────────────────────────────────────────────────

var (
	colorGray  = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorBlack = &props.Color{Red: 20, Green: 20, Blue: 20}

	defaultAccent    = &props.Color{Red: 247, Green: 147, Blue: 30} // #F7931E
	defaultSecondary = &props.Color{Red: 11, Green: 31, Blue: 68}   // #0B1F44
)

// Style resuelve los colores de marca y el formato monetario usados por
// todas las plantillas. Se construye una vez por exportación a partir de
// los overrides del documento mezclados con los defaults del owner.
type Style struct {
	Accent    *props.Color
	Secondary *props.Color
	Currency  string
	// Logo ya descargado por el generador; vacío = la plantilla no emite
	// bloque de logo ni reserva su espacio.
	Logo    []byte
	LogoExt extension.Type
}

// StyleFor mezcla branding del documento con los defaults de la paleta.
func StyleFor(b entity.Branding, currency string) Style {
	return Style{
		Accent:    hexColor(b.AccentColor, defaultAccent),
		Secondary: hexColor(b.SecondaryColor, defaultSecondary),
		Currency:  currency,
	}
}

// Money formatea un importe con separadores de miles según locale y el
// símbolo de moneda configurado. Ej: 1234.5 → "$1,234.50".
func (s Style) Money(d decimal.Decimal) string {
	f, _ := d.Float64()
	return s.Currency + moneyPrinter.Sprintf("%.2f", f)
}

var moneyPrinter = message.NewPrinter(language.English)

// hexColor convierte "#RRGGBB" a color maroto; entrada inválida → fallback.
func hexColor(hex string, fallback *props.Color) *props.Color {
	if len(hex) != 7 || hex[0] != '#' {
		return fallback
	}
	r, err1 := strconv.ParseUint(hex[1:3], 16, 8)
	g, err2 := strconv.ParseUint(hex[3:5], 16, 8)
	b, err3 := strconv.ParseUint(hex[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return fallback
	}
	return &props.Color{Red: int(r), Green: int(g), Blue: int(b)}
}

// ── Paginación de líneas ──────────────────────────────────────────────────────

// PaginateItems parte la tabla de líneas en bloques de tamaño fijo antes del
// render: una página completa del documento por bloque. Es un asunto de
// layout, no del encoder — el bloque de totales va solo en la última página.
func PaginateItems(items []entity.LineItem, perPage int) [][]entity.LineItem {
	if perPage <= 0 || len(items) == 0 {
		return [][]entity.LineItem{items}
	}
	var chunks [][]entity.LineItem
	for i := 0; i < len(items); i += perPage {
		end := i + perPage
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[i:end])
	}
	return chunks
}

// ── Bloques compartidos entre plantillas ──────────────────────────────────────

// logoRows: bloque de logo del emisor, arriba de la cabecera. Las plantillas
// paginadas lo emiten solo en la primera página.
func logoRows(st Style) []core.Row {
	if len(st.Logo) == 0 {
		return nil
	}
	return []core.Row{
		row.New(22).Add(
			image.NewFromBytesCol(3, st.Logo, st.LogoExt, props.Rect{Percent: 90}),
			col.New(9),
		),
	}
}

// partyRows: bloque de emisor y cliente en dos columnas.
func partyRows(inv entity.Invoice, st Style) []core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1})
	}
	return []core.Row{
		row.New(26).Add(
			col.New(6).Add(
				label("FROM"),
				text.New(inv.Company.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6, Color: st.Secondary}),
				text.New(inv.Company.Address, props.Text{Size: 8, Top: 12, Color: colorGray}),
				text.New(contactLine(inv.Company), props.Text{Size: 8, Top: 17, Color: colorGray}),
			),
			col.New(6).Add(
				label("BILLED TO"),
				text.New(inv.Client.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6, Color: st.Secondary}),
				text.New(inv.Client.Address, props.Text{Size: 8, Top: 12, Color: colorGray}),
				text.New(contactLine(inv.Client), props.Text{Size: 8, Top: 17, Color: colorGray}),
			),
		),
	}
}

// contactLine compone teléfono/email/web en una sola línea, omitiendo vacíos.
func contactLine(p entity.PartyInfo) string {
	out := ""
	for _, s := range []string{p.Phone, p.Email, p.Website} {
		if s == "" {
			continue
		}
		if out != "" {
			out += "   |   "
		}
		out += s
	}
	return out
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow(st Style) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: st.Secondary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Description", 6, align.Left),
		h("Qty", 2, align.Center),
		h("Rate", 2, align.Right),
		h("Amount", 2, align.Right),
	)
}

// itemRows: una fila por línea del bloque.
func itemRows(items []entity.LineItem, st Style) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(7).Add(
			col.New(6).Add(text.New(it.Description, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(it.Quantity.String(), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(st.Money(it.UnitRate), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(st.Money(it.Amount()), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

// totalsRows: subtotal, impuesto y total alineados a la derecha.
// Solo debe emitirse en la última página del documento.
func totalsRows(inv entity.Invoice, st Style) []core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return []core.Row{
		line.NewRow(1, props.Line{Color: st.Secondary, Thickness: 0.3}),
		row.New(20).Add(
			col.New(6),
			col.New(3).Add(
				label("Subtotal:"),
				label("Tax ("+inv.TaxPercent.String()+"%):"),
				text.New("TOTAL:", props.Text{
					Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: st.Accent, Right: 2, Top: 11,
				}),
			),
			col.New(3).Add(
				value(st.Money(inv.Subtotal)),
				value(st.Money(inv.Total.Sub(inv.Subtotal))),
				text.New(st.Money(inv.Total), props.Text{
					Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: st.Accent, Right: 1, Top: 11,
				}),
			),
		),
	}
}
