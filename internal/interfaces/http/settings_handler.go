package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturador-api/internal/application/dto"
	"github.com/jhoicas/Facturador-api/internal/application/settings"
)

// SettingsHandler lectura y escritura de la configuración de marca del owner.
type SettingsHandler struct {
	uc *settings.UseCase
}

// NewSettingsHandler construye el handler de settings.
func NewSettingsHandler(uc *settings.UseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener settings del owner (defaults si nunca guardó)
// @Tags         settings
// @Produce      json
// @Success      200  {object}  entity.Settings
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	s, err := h.uc.Get(GetUserID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(s)
}

// Save godoc
// @Summary      Guardar settings del owner
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SettingsRequest  true  "datos de empresa y branding"
// @Success      200   {object}  entity.Settings
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings [put]
func (h *SettingsHandler) Save(c *fiber.Ctx) error {
	var in dto.SettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s, err := h.uc.Save(GetUserID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(s)
}
