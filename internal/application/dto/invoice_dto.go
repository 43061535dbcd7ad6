package dto

import "github.com/jhoicas/Facturador-api/internal/domain/entity"

// El objeto de valor Invoice viaja tal cual en los cuerpos HTTP (sus tags
// JSON son el formato de intercambio y de persistencia de borradores); aquí
// solo viven los envoltorios de operación.

// UpdateItemRequest body para PATCH /api/invoices/items/:id.
// Value llega como texto del formulario: los campos numéricos coercionan
// entrada inválida a 0 en el motor de cálculo.
type UpdateItemRequest struct {
	Invoice entity.Invoice `json:"invoice"`
	Field   string         `json:"field" validate:"required,oneof=description quantity unitRate"`
	Value   string         `json:"value"`
}

// InvoiceEnvelope body para operaciones que reciben el documento completo
// (recompute, add/remove item, export).
type InvoiceEnvelope struct {
	Invoice entity.Invoice `json:"invoice"`
}

// TemplateOption una plantilla seleccionable en GET /api/templates.
type TemplateOption struct {
	ID        entity.TemplateID `json:"id"`
	Label     string            `json:"label"`
	Paginated bool              `json:"paginated"`
}
