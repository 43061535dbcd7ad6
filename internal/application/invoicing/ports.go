package invoicing

import (
	"context"

	"github.com/jhoicas/Facturador-api/internal/application/dto"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

// DocumentRenderer es el puerto hacia la superficie de render: recibe el
// documento con branding ya mezclado y devuelve los bytes del PDF. La
// implementación (maroto) vive en infrastructure/pdf.
//
// Contrato: un TemplateID sin renderer produce la página placeholder, no un
// error; un fallo de encoding retorna error sin artefacto parcial.
type DocumentRenderer interface {
	RenderInvoicePDF(ctx context.Context, inv entity.Invoice, branding entity.Branding) ([]byte, error)
}

// TemplateCatalog expone el conjunto cerrado de plantillas seleccionables.
type TemplateCatalog interface {
	Options() []dto.TemplateOption
}
