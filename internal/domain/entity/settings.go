package entity

import "time"

// Settings registro de marca y defaults por owner. Se lee una vez al iniciar
// un documento nuevo y se escribe solo en el guardado explícito.
type Settings struct {
	CompanyName         string     `json:"companyName"`
	Email               string     `json:"email,omitempty"`
	Phone               string     `json:"phone,omitempty"`
	Website             string     `json:"website,omitempty"`
	Address             string     `json:"address,omitempty"`
	DefaultTemplateID   TemplateID `json:"defaultTemplateId"`
	ThemeColor          string     `json:"themeColor,omitempty"`          // hex
	ThemeSecondaryColor string     `json:"themeSecondaryColor,omitempty"` // hex
	LogoURL             string     `json:"logoUrl,omitempty"`
	UpdatedAt           time.Time  `json:"updatedAt,omitempty"`
}

// DefaultSettings valores iniciales para un owner sin registro guardado.
// La plantilla llega de la configuración del despliegue; un ID fuera del
// conjunto registrado cae a classic.
func DefaultSettings(template TemplateID) *Settings {
	if !template.IsValid() {
		template = TemplateClassic
	}
	return &Settings{
		DefaultTemplateID:   template,
		ThemeColor:          "#F7931E",
		ThemeSecondaryColor: "#0B1F44",
	}
}

// Party proyecta los datos de empresa del Settings como PartyInfo
// para precargar el emisor de un documento nuevo.
func (s *Settings) Party() PartyInfo {
	return PartyInfo{
		Name:    s.CompanyName,
		Address: s.Address,
		Phone:   s.Phone,
		Email:   s.Email,
		Website: s.Website,
	}
}
