package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturador-api/internal/application/invoicing"
)

// TemplateHandler enumeración del catálogo de plantillas.
type TemplateHandler struct {
	catalog invoicing.TemplateCatalog
}

// NewTemplateHandler construye el handler de plantillas.
func NewTemplateHandler(catalog invoicing.TemplateCatalog) *TemplateHandler {
	return &TemplateHandler{catalog: catalog}
}

// List godoc
// @Summary      Listar plantillas seleccionables
// @Tags         templates
// @Produce      json
// @Success      200  {array}  dto.TemplateOption
// @Router       /api/templates [get]
func (h *TemplateHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.catalog.Options())
}
