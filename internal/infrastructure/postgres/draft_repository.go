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

var _ repository.DraftRepository = (*DraftRepo)(nil)

// DraftRepo persiste la colección de borradores de cada owner como un único
// documento JSONB. El caso de uso lee, modifica y reescribe la colección
// completa, así que una fila por owner basta.
type DraftRepo struct {
	pool *pgxpool.Pool
}

// NewDraftRepository construye el adaptador de persistencia para borradores.
func NewDraftRepository(pool *pgxpool.Pool) *DraftRepo {
	return &DraftRepo{pool: pool}
}

// GetCollection devuelve la colección del owner; vacía si nunca guardó.
func (r *DraftRepo) GetCollection(ownerID string) ([]entity.Draft, error) {
	var raw []byte
	err := r.pool.QueryRow(context.Background(),
		`SELECT data FROM draft_collections WHERE owner_id = $1`, ownerID,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []entity.Draft{}, nil
		}
		return nil, fmt.Errorf("%w: leer drafts: %v", domain.ErrStorageUnavailable, err)
	}
	var drafts []entity.Draft
	if err := json.Unmarshal(raw, &drafts); err != nil {
		return nil, fmt.Errorf("%w: decodificar drafts: %v", domain.ErrStorageUnavailable, err)
	}
	for i := range drafts {
		drafts[i].OwnerID = ownerID
	}
	return drafts, nil
}

// SaveCollection reescribe la colección completa del owner.
func (r *DraftRepo) SaveCollection(ownerID string, drafts []entity.Draft) error {
	if drafts == nil {
		drafts = []entity.Draft{}
	}
	raw, err := json.Marshal(drafts)
	if err != nil {
		return fmt.Errorf("%w: codificar drafts: %v", domain.ErrStorageUnavailable, err)
	}
	_, err = r.pool.Exec(context.Background(), `
		INSERT INTO draft_collections (owner_id, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (owner_id) DO UPDATE SET data = $2, updated_at = $3`,
		ownerID, raw, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("%w: escribir drafts: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}
