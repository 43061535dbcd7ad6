package pdf

import (
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

// placeholderTemplate responde por IDs de plantilla sin renderer registrado.
// Contrato defensivo: el conjunto de IDs persistidos puede divergir del de
// renderers entre versiones; en ese caso se emite una página visible en vez
// de fallar la exportación.
type placeholderTemplate struct {
	id entity.TemplateID
}

func (p placeholderTemplate) Pages(_ entity.Invoice, _ Style) []Page {
	rows := []core.Row{
		row.New(30),
		row.New(12).Add(col.New(12).Add(
			text.New("Plantilla no encontrada", props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Center, Color: colorBlack,
			}),
		)),
		line.NewRow(2),
		row.New(8).Add(col.New(12).Add(
			text.New("El identificador \""+string(p.id)+"\" no tiene renderer registrado.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray,
			}),
		)),
		row.New(8).Add(col.New(12).Add(
			text.New("Seleccione otra plantilla e intente exportar de nuevo.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray,
			}),
		)),
	}
	return []Page{{Rows: rows}}
}
