package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/Facturador-api/internal/domain"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
	"github.com/jhoicas/Facturador-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo registro de settings por owner como documento JSON.
type SettingsRepo struct {
	db *sqlx.DB
}

// NewSettingsRepository construye el adaptador de persistencia para settings.
func NewSettingsRepository(db *sqlx.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// Get devuelve los settings del owner; nil sin error si nunca guardó.
func (r *SettingsRepo) Get(ownerID string) (*entity.Settings, error) {
	var raw string
	err := r.db.Get(&raw, `SELECT data FROM owner_settings WHERE owner_id = ?`, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: leer settings: %v", domain.ErrStorageUnavailable, err)
	}
	var s entity.Settings
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("%w: decodificar settings: %v", domain.ErrStorageUnavailable, err)
	}
	return &s, nil
}

// Save reescribe los settings del owner.
func (r *SettingsRepo) Save(ownerID string, s *entity.Settings) error {
	now := time.Now().UTC()
	s.UpdatedAt = now
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: codificar settings: %v", domain.ErrStorageUnavailable, err)
	}
	_, err = r.db.Exec(`
		INSERT INTO owner_settings (owner_id, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (owner_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		ownerID, string(raw), now,
	)
	if err != nil {
		return fmt.Errorf("%w: escribir settings: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}
