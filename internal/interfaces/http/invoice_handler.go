package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturador-api/internal/application/dto"
	"github.com/jhoicas/Facturador-api/internal/application/invoicing"
	"github.com/jhoicas/Facturador-api/internal/domain/billing"
)

// InvoiceHandler operaciones sobre el documento en edición. Son stateless:
// el cliente manda el documento completo y recibe el documento transformado
// con totales recalculados; nada se persiste hasta guardar como borrador.
type InvoiceHandler struct {
	exportUC *invoicing.ExportUseCase
}

// NewInvoiceHandler construye el handler de documentos.
func NewInvoiceHandler(exportUC *invoicing.ExportUseCase) *InvoiceHandler {
	return &InvoiceHandler{exportUC: exportUC}
}

// Recompute godoc
// @Summary      Recalcular subtotal y total del documento
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InvoiceEnvelope  true  "documento completo"
// @Success      200   {object}  dto.InvoiceEnvelope
// @Router       /api/invoices/recompute [post]
func (h *InvoiceHandler) Recompute(c *fiber.Ctx) error {
	var in dto.InvoiceEnvelope
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.Invoice = billing.Recompute(in.Invoice)
	return c.JSON(in)
}

// AddItem godoc
// @Summary      Agregar una línea en blanco al final
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InvoiceEnvelope  true  "documento completo"
// @Success      200   {object}  dto.InvoiceEnvelope
// @Router       /api/invoices/items [post]
func (h *InvoiceHandler) AddItem(c *fiber.Ctx) error {
	var in dto.InvoiceEnvelope
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.Invoice = billing.AddItem(in.Invoice)
	return c.JSON(in)
}

// RemoveItem godoc
// @Summary      Eliminar una línea por id
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "id de la línea"
// @Param        body  body  dto.InvoiceEnvelope  true  "documento completo"
// @Success      200   {object}  dto.InvoiceEnvelope
// @Failure      400   {object}  dto.ErrorResponse  "última línea"
// @Router       /api/invoices/items/{id} [delete]
func (h *InvoiceHandler) RemoveItem(c *fiber.Ctx) error {
	var in dto.InvoiceEnvelope
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	inv, err := billing.RemoveItem(in.Invoice, c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	in.Invoice = inv
	return c.JSON(in)
}

// UpdateItem godoc
// @Summary      Actualizar un campo de una línea
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "id de la línea"
// @Param        body  body  dto.UpdateItemRequest  true  "documento + campo + valor"
// @Success      200   {object}  dto.InvoiceEnvelope
// @Failure      400   {object}  dto.ErrorResponse  "campo desconocido"
// @Router       /api/invoices/items/{id} [patch]
func (h *InvoiceHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	inv, err := billing.UpdateItem(in.Invoice, c.Params("id"), in.Field, in.Value)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.InvoiceEnvelope{Invoice: inv})
}

// Export godoc
// @Summary      Exportar el documento a PDF
// @Tags         invoices
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.InvoiceEnvelope  true  "documento completo"
// @Success      200   {file}    binary
// @Failure      409   {object}  dto.ErrorResponse  "exportación en curso"
// @Failure      500   {object}  dto.ErrorResponse  "render fallido"
// @Router       /api/invoices/export [post]
func (h *InvoiceHandler) Export(c *fiber.Ctx) error {
	var in dto.InvoiceEnvelope
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pdfBytes, filename, err := h.exportUC.Export(c.Context(), GetUserID(c), in.Invoice)
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(pdfBytes)
}
