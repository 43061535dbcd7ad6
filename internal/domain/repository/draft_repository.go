package repository

import "github.com/jhoicas/Facturador-api/internal/domain/entity"

// DraftRepository define el puerto de persistencia para la colección de
// borradores de un owner. La colección se lee y escribe en bloque
// (read-modify-write bajo la clave del owner): dos sesiones concurrentes
// del mismo owner pueden pisarse el guardado — limitación aceptada, no
// invariante garantizado.
//
// Implementaciones: PostgreSQL (JSONB) y SQLite embebido (TEXT).
type DraftRepository interface {
	// GetCollection devuelve todos los borradores del owner (vacío si no hay).
	GetCollection(ownerID string) ([]entity.Draft, error)
	// SaveCollection reemplaza la colección completa del owner.
	SaveCollection(ownerID string, drafts []entity.Draft) error
}
