package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Facturador-api/internal/domain"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
	"github.com/jhoicas/Facturador-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo persiste el registro de settings de cada owner como JSONB.
type SettingsRepo struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository construye el adaptador de persistencia para settings.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{pool: pool}
}

// Get devuelve los settings del owner; nil sin error si nunca guardó.
func (r *SettingsRepo) Get(ownerID string) (*entity.Settings, error) {
	var raw []byte
	err := r.pool.QueryRow(context.Background(),
		`SELECT data FROM owner_settings WHERE owner_id = $1`, ownerID,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: leer settings: %v", domain.ErrStorageUnavailable, err)
	}
	var s entity.Settings
	if err := json.Unmarshal(raw, &s); err != nil {
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
	_, err = r.pool.Exec(context.Background(), `
		INSERT INTO owner_settings (owner_id, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (owner_id) DO UPDATE SET data = $2, updated_at = $3`,
		ownerID, raw, now,
	)
	if err != nil {
		return fmt.Errorf("%w: escribir settings: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}
