// Package pdf implementa la superficie de render del documento: plantillas
// maroto v2 que componen páginas A4 a partir del objeto de valor Invoice,
// y el encoder que las convierte en bytes PDF.
//
// La paginación de la tabla de líneas es un asunto de layout de plantilla
// (bloques fijos, chrome repetido, totales en la última página) y ocurre
// antes del encoding.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Facturador-api/internal/domain"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

// Generator implementa invoicing.DocumentRenderer usando Maroto v2.
type Generator struct {
	currency string
	logos    *logoFetcher
}

// NewGenerator construye el generador con el símbolo de moneda configurado.
func NewGenerator(currency string) *Generator {
	return &Generator{currency: currency, logos: newLogoFetcher()}
}

// RenderInvoicePDF resuelve la plantilla del documento, compone sus páginas
// y las codifica a PDF. Un TemplateID sin renderer no es error: se emite la
// página placeholder (el caller decide si lo registra en el log con
// entity.TemplateID.IsValid). Si el encoding falla no se produce ningún
// artefacto parcial.
func (g *Generator) RenderInvoicePDF(ctx context.Context, inv entity.Invoice, branding entity.Branding) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("%s %s", inv.Title(), inv.DocumentNumber), true).
		WithAuthor(inv.Company.Name, true).
		Build()

	m := maroto.New(cfg)

	builder, _ := Resolve(inv.TemplateID)
	st := StyleFor(branding, g.currency)
	if branding.LogoURL != "" {
		// Logo inaccesible no aborta la exportación: el documento sale sin
		// logo y el resto del branding se conserva.
		if asset, err := g.logos.Fetch(ctx, branding.LogoURL); err == nil {
			st.Logo = asset.data
			st.LogoExt = asset.ext
		}
	}
	pages := builder.Pages(inv, st)

	if len(pages) == 1 {
		// Una sola página lógica: flujo automático de filas (si el contenido
		// excede el alto, maroto continúa en la página siguiente).
		m.AddRows(pages[0].Rows...)
	} else {
		for _, p := range pages {
			m.AddPages(page.New().Add(p.Rows...))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: encoding del documento: %v", domain.ErrRenderFailed, err)
	}
	return doc.GetBytes(), nil
}
