package entity

// TemplateID identifica una plantilla visual del documento.
// El conjunto es cerrado: el registro de renderers en infrastructure/pdf
// mapea cada ID a exactamente una función de layout.
type TemplateID string

// Plantillas disponibles. classic/modern/professional son genéricas de una
// página; ginyard/vss/cvs son variantes de marca que paginan la tabla de
// líneas en bloques fijos.
const (
	TemplateClassic      TemplateID = "classic"
	TemplateModern       TemplateID = "modern"
	TemplateProfessional TemplateID = "professional"
	TemplateGinyard      TemplateID = "ginyard"
	TemplateVSS          TemplateID = "vss"
	TemplateCVS          TemplateID = "cvs"
)

// AllTemplates devuelve los IDs en orden estable de presentación.
func AllTemplates() []TemplateID {
	return []TemplateID{
		TemplateClassic,
		TemplateModern,
		TemplateProfessional,
		TemplateGinyard,
		TemplateVSS,
		TemplateCVS,
	}
}

// IsValid indica si el ID pertenece al conjunto cerrado.
// Un ID persistido puede quedar huérfano si el conjunto cambia entre
// versiones; el registro de renderers responde con un placeholder en ese caso.
func (t TemplateID) IsValid() bool {
	switch t {
	case TemplateClassic, TemplateModern, TemplateProfessional,
		TemplateGinyard, TemplateVSS, TemplateCVS:
		return true
	}
	return false
}
