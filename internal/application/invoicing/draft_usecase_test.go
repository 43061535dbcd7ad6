package invoicing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturador-api/internal/application/invoicing"
	"github.com/jhoicas/Facturador-api/internal/domain"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

// memDraftRepo implementación en memoria del puerto DraftRepository.
type memDraftRepo struct {
	collections map[string][]entity.Draft
	failNext    error
}

func newMemDraftRepo() *memDraftRepo {
	return &memDraftRepo{collections: make(map[string][]entity.Draft)}
}

func (m *memDraftRepo) GetCollection(ownerID string) ([]entity.Draft, error) {
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return nil, err
	}
	out := make([]entity.Draft, len(m.collections[ownerID]))
	copy(out, m.collections[ownerID])
	return out, nil
}

func (m *memDraftRepo) SaveCollection(ownerID string, drafts []entity.Draft) error {
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return err
	}
	stored := make([]entity.Draft, len(drafts))
	copy(stored, drafts)
	m.collections[ownerID] = stored
	return nil
}

func invoiceForDraft(clientName string) entity.Invoice {
	return entity.Invoice{
		DocumentNumber: "INV-1",
		DocumentType:   entity.DocumentInvoice,
		Client:         entity.PartyInfo{Name: clientName},
		Items: []entity.LineItem{
			{ID: "li-1", Description: "Servicio", Quantity: decimal.NewFromInt(2), UnitRate: decimal.NewFromInt(50)},
		},
		TaxPercent: decimal.NewFromInt(10),
		TemplateID: entity.TemplateClassic,
	}
}

func TestDraftSave_AsignaIDYRecalcula(t *testing.T) {
	uc := invoicing.NewDraftUseCase(newMemDraftRepo())

	draft, err := uc.Save("owner-1", invoiceForDraft("Cliente Uno"))
	require.NoError(t, err)

	assert.NotEmpty(t, draft.ID, "un documento sin id recibe uno al guardar")
	assert.False(t, draft.LastModified.IsZero())
	assert.True(t, draft.Total.Equal(decimal.NewFromInt(110)),
		"el borrador se persiste con totales recalculados: fue %s", draft.Total)
}

func TestDraftSave_SinClienteRechazado(t *testing.T) {
	repo := newMemDraftRepo()
	uc := invoicing.NewDraftUseCase(repo)

	_, err := uc.Save("owner-1", invoiceForDraft(""))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.collections["owner-1"], "nada debe quedar persistido")
}

func TestDraftSave_MismoIDSobrescribe(t *testing.T) {
	uc := invoicing.NewDraftUseCase(newMemDraftRepo())

	first, err := uc.Save("owner-1", invoiceForDraft("Cliente Uno"))
	require.NoError(t, err)

	modified := invoiceForDraft("Cliente Renombrado")
	modified.ID = first.ID
	_, err = uc.Save("owner-1", modified)
	require.NoError(t, err)

	drafts, err := uc.List("owner-1")
	require.NoError(t, err)
	require.Len(t, drafts, 1, "guardar el mismo id no duplica")
	assert.Equal(t, "Cliente Renombrado", drafts[0].Client.Name)
}

func TestDraftSave_IDNuevoAgrega(t *testing.T) {
	uc := invoicing.NewDraftUseCase(newMemDraftRepo())

	_, err := uc.Save("owner-1", invoiceForDraft("Cliente Uno"))
	require.NoError(t, err)
	_, err = uc.Save("owner-1", invoiceForDraft("Cliente Dos"))
	require.NoError(t, err)

	drafts, err := uc.List("owner-1")
	require.NoError(t, err)
	assert.Len(t, drafts, 2)
}

func TestDraftGet_Inexistente(t *testing.T) {
	uc := invoicing.NewDraftUseCase(newMemDraftRepo())

	_, err := uc.Get("owner-1", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDraftDelete_EliminaYRechazaInexistente(t *testing.T) {
	uc := invoicing.NewDraftUseCase(newMemDraftRepo())

	draft, err := uc.Save("owner-1", invoiceForDraft("Cliente Uno"))
	require.NoError(t, err)

	require.NoError(t, uc.Delete("owner-1", draft.ID))

	drafts, err := uc.List("owner-1")
	require.NoError(t, err)
	assert.Empty(t, drafts)

	err = uc.Delete("owner-1", draft.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"eliminar un id ya borrado retorna not found")
}

func TestDraftSave_FalloDeAlmacenamientoNoPierdeEstado(t *testing.T) {
	repo := newMemDraftRepo()
	uc := invoicing.NewDraftUseCase(repo)

	_, err := uc.Save("owner-1", invoiceForDraft("Cliente Uno"))
	require.NoError(t, err)

	repo.failNext = domain.ErrStorageUnavailable
	_, err = uc.Save("owner-1", invoiceForDraft("Cliente Dos"))
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	drafts, err := uc.List("owner-1")
	require.NoError(t, err)
	assert.Len(t, drafts, 1, "la colección previa queda intacta tras el fallo")
}
