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

var _ repository.DraftRepository = (*DraftRepo)(nil)

// DraftRepo colección de borradores por owner como documento JSON en una fila.
type DraftRepo struct {
	db *sqlx.DB
}

// NewDraftRepository construye el adaptador de persistencia para borradores.
func NewDraftRepository(db *sqlx.DB) *DraftRepo {
	return &DraftRepo{db: db}
}

// GetCollection devuelve la colección del owner; vacía si nunca guardó.
func (r *DraftRepo) GetCollection(ownerID string) ([]entity.Draft, error) {
	var raw string
	err := r.db.Get(&raw, `SELECT data FROM draft_collections WHERE owner_id = ?`, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []entity.Draft{}, nil
		}
		return nil, fmt.Errorf("%w: leer drafts: %v", domain.ErrStorageUnavailable, err)
	}
	var drafts []entity.Draft
	if err := json.Unmarshal([]byte(raw), &drafts); err != nil {
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
	_, err = r.db.Exec(`
		INSERT INTO draft_collections (owner_id, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (owner_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		ownerID, string(raw), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("%w: escribir drafts: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}
