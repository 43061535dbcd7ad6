package pdf

import (
	"github.com/johnfercher/maroto/v2/pkg/core"

	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

// Page es una página ya compuesta de la plantilla: sus filas y si lleva el
// bloque de totales (solo la última página del documento lo lleva).
type Page struct {
	Rows      []core.Row
	HasTotals bool
}

// Builder compone las páginas de una plantilla para un documento dado.
// Las plantillas de una sola página devuelven exactamente una Page; las
// variantes de marca parten la tabla de líneas en bloques fijos y devuelven
// una Page por bloque.
type Builder interface {
	Pages(inv entity.Invoice, st Style) []Page
}

// Mapeo cerrado TemplateID → Builder. Agregar una plantilla nueva exige
// registrar aquí su builder; un ID sin builder se resuelve al placeholder.
var registry = map[entity.TemplateID]Builder{
	entity.TemplateClassic:      classicTemplate{},
	entity.TemplateModern:       modernTemplate{},
	entity.TemplateProfessional: professionalTemplate{},
	entity.TemplateGinyard:      ginyardTemplate{},
	entity.TemplateVSS:          vssTemplate{},
	entity.TemplateCVS:          cvsTemplate{},
}

// Resolve devuelve el builder registrado para el ID. Un ID sin registro
// (drift entre IDs persistidos y renderers) no es fatal: se devuelve el
// placeholder y ok=false para que el caller lo registre en el log.
func Resolve(id entity.TemplateID) (b Builder, ok bool) {
	if b, ok := registry[id]; ok {
		return b, true
	}
	return placeholderTemplate{id: id}, false
}

// Available devuelve los IDs con renderer registrado, en orden estable.
func Available() []entity.TemplateID {
	out := make([]entity.TemplateID, 0, len(registry))
	for _, id := range entity.AllTemplates() {
		if _, ok := registry[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
