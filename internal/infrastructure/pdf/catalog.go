package pdf

import (
	"github.com/jhoicas/Facturador-api/internal/application/dto"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

// Metadatos de presentación por plantilla. Paginated indica que el layout
// corta las líneas en páginas de tamaño fijo en lugar de fluir libremente.
var templateMeta = map[entity.TemplateID]struct {
	label     string
	paginated bool
}{
	entity.TemplateClassic:      {"Classic", false},
	entity.TemplateModern:       {"Modern", false},
	entity.TemplateProfessional: {"Professional", false},
	entity.TemplateGinyard:      {"Ginyard", true},
	entity.TemplateVSS:          {"VSS", true},
	entity.TemplateCVS:          {"CVS", true},
}

// Catalog expone el conjunto cerrado de plantillas registradas.
type Catalog struct{}

// NewCatalog construye el catálogo.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Options lista las plantillas en orden de registro.
func (c *Catalog) Options() []dto.TemplateOption {
	ids := Available()
	opts := make([]dto.TemplateOption, 0, len(ids))
	for _, id := range ids {
		meta := templateMeta[id]
		opts = append(opts, dto.TemplateOption{
			ID:        id,
			Label:     meta.label,
			Paginated: meta.paginated,
		})
	}
	return opts
}
