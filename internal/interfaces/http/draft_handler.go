package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturador-api/internal/application/dto"
	"github.com/jhoicas/Facturador-api/internal/application/invoicing"
)

// DraftHandler CRUD de borradores del owner autenticado.
type DraftHandler struct {
	uc *invoicing.DraftUseCase
}

// NewDraftHandler construye el handler de borradores.
func NewDraftHandler(uc *invoicing.DraftUseCase) *DraftHandler {
	return &DraftHandler{uc: uc}
}

// List godoc
// @Summary      Listar borradores del owner
// @Tags         drafts
// @Produce      json
// @Success      200  {array}  entity.Draft
// @Router       /api/drafts [get]
func (h *DraftHandler) List(c *fiber.Ctx) error {
	drafts, err := h.uc.List(GetUserID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(drafts)
}

// Save godoc
// @Summary      Guardar el documento como borrador (upsert por id)
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InvoiceEnvelope  true  "documento completo"
// @Success      200   {object}  entity.Draft
// @Failure      400   {object}  dto.ErrorResponse  "sin nombre de cliente"
// @Router       /api/drafts [post]
func (h *DraftHandler) Save(c *fiber.Ctx) error {
	var in dto.InvoiceEnvelope
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	draft, err := h.uc.Save(GetUserID(c), in.Invoice)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(draft)
}

// Get godoc
// @Summary      Cargar un borrador por id
// @Tags         drafts
// @Produce      json
// @Param        id  path  string  true  "id del borrador"
// @Success      200  {object}  entity.Draft
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id} [get]
func (h *DraftHandler) Get(c *fiber.Ctx) error {
	draft, err := h.uc.Get(GetUserID(c), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(draft)
}

// Update godoc
// @Summary      Sobrescribir un borrador existente
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "id del borrador"
// @Param        body  body  dto.InvoiceEnvelope  true  "documento completo"
// @Success      200   {object}  entity.Draft
// @Router       /api/drafts/{id} [put]
func (h *DraftHandler) Update(c *fiber.Ctx) error {
	var in dto.InvoiceEnvelope
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// El id de la ruta manda sobre el del cuerpo.
	in.Invoice.ID = c.Params("id")
	draft, err := h.uc.Save(GetUserID(c), in.Invoice)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(draft)
}

// Delete godoc
// @Summary      Eliminar un borrador por id
// @Tags         drafts
// @Param        id  path  string  true  "id del borrador"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id} [delete]
func (h *DraftHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
