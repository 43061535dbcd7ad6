package invoicing

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Facturador-api/internal/domain"
	"github.com/jhoicas/Facturador-api/internal/domain/billing"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
	"github.com/jhoicas/Facturador-api/internal/domain/repository"
)

// DraftUseCase administra la colección de borradores de un owner.
// La colección se lee y escribe en bloque (read-modify-write bajo la clave
// del owner); el guardado del mismo id sobreescribe, el guardado de un id
// nuevo agrega. Ante fallo de almacenamiento el estado del caller se
// conserva: simplemente nada queda persistido.
type DraftUseCase struct {
	drafts repository.DraftRepository
}

// NewDraftUseCase construye el caso de uso.
func NewDraftUseCase(drafts repository.DraftRepository) *DraftUseCase {
	return &DraftUseCase{drafts: drafts}
}

// Save valida y persiste un snapshot del documento como borrador (upsert por
// id). Guardar sin nombre de cliente es un error de validación: la acción se
// bloquea y el estado persistido no cambia.
func (uc *DraftUseCase) Save(ownerID string, inv entity.Invoice) (*entity.Draft, error) {
	if inv.Client.Name == "" {
		return nil, fmt.Errorf("%w: el nombre del cliente es obligatorio para guardar", domain.ErrInvalidInput)
	}
	if len(inv.Items) == 0 {
		// Un borrador siempre conserva al menos una línea.
		inv.Items = []entity.LineItem{billing.NewLineItem()}
	}
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	inv = billing.Recompute(inv)

	draft := entity.Draft{
		Invoice:      inv,
		OwnerID:      ownerID,
		LastModified: time.Now().UTC(),
	}

	collection, err := uc.drafts.GetCollection(ownerID)
	if err != nil {
		return nil, err
	}
	replaced := false
	for i := range collection {
		if collection[i].ID == draft.ID {
			collection[i] = draft
			replaced = true
			break
		}
	}
	if !replaced {
		collection = append(collection, draft)
	}
	if err := uc.drafts.SaveCollection(ownerID, collection); err != nil {
		return nil, err
	}
	return &draft, nil
}

// List devuelve todos los borradores del owner.
func (uc *DraftUseCase) List(ownerID string) ([]entity.Draft, error) {
	return uc.drafts.GetCollection(ownerID)
}

// Get devuelve un borrador por id o domain.ErrNotFound.
func (uc *DraftUseCase) Get(ownerID, draftID string) (*entity.Draft, error) {
	collection, err := uc.drafts.GetCollection(ownerID)
	if err != nil {
		return nil, err
	}
	for i := range collection {
		if collection[i].ID == draftID {
			return &collection[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Delete elimina un borrador por id. Un id inexistente retorna
// domain.ErrNotFound y la colección no cambia.
func (uc *DraftUseCase) Delete(ownerID, draftID string) error {
	collection, err := uc.drafts.GetCollection(ownerID)
	if err != nil {
		return err
	}
	kept := make([]entity.Draft, 0, len(collection))
	for _, d := range collection {
		if d.ID == draftID {
			continue
		}
		kept = append(kept, d)
	}
	if len(kept) == len(collection) {
		return domain.ErrNotFound
	}
	return uc.drafts.SaveCollection(ownerID, kept)
}
