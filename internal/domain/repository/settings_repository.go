package repository

import "github.com/jhoicas/Facturador-api/internal/domain/entity"

// SettingsRepository define el puerto de persistencia del registro de marca
// por owner (documento único: lectura al cargar, escritura en guardado
// explícito; sin política de reintentos).
type SettingsRepository interface {
	// Get devuelve el registro del owner o nil si nunca guardó.
	Get(ownerID string) (*entity.Settings, error)
	Save(ownerID string, s *entity.Settings) error
}
