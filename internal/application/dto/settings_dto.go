package dto

import "github.com/jhoicas/Facturador-api/internal/domain/entity"

// SettingsRequest body para PUT /api/settings. Los colores son hex de 6
// dígitos; la plantilla por defecto debe pertenecer al conjunto cerrado.
type SettingsRequest struct {
	CompanyName         string `json:"companyName" validate:"required"`
	Email               string `json:"email" validate:"omitempty,email"`
	Phone               string `json:"phone"`
	Website             string `json:"website"`
	Address             string `json:"address"`
	DefaultTemplateID   string `json:"defaultTemplateId"`
	ThemeColor          string `json:"themeColor" validate:"omitempty,hexcolor"`
	ThemeSecondaryColor string `json:"themeSecondaryColor" validate:"omitempty,hexcolor"`
	LogoURL             string `json:"logoUrl" validate:"omitempty,url"`
}

// ToEntity convierte el request al registro de dominio.
func (r SettingsRequest) ToEntity() *entity.Settings {
	return &entity.Settings{
		CompanyName:         r.CompanyName,
		Email:               r.Email,
		Phone:               r.Phone,
		Website:             r.Website,
		Address:             r.Address,
		DefaultTemplateID:   entity.TemplateID(r.DefaultTemplateID),
		ThemeColor:          r.ThemeColor,
		ThemeSecondaryColor: r.ThemeSecondaryColor,
		LogoURL:             r.LogoURL,
	}
}
