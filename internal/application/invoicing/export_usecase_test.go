package invoicing_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturador-api/internal/application/dto"
	"github.com/jhoicas/Facturador-api/internal/application/invoicing"
	"github.com/jhoicas/Facturador-api/internal/domain"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
	"github.com/jhoicas/Facturador-api/pkg/logger"
)

// memSettingsRepo puerto SettingsRepository en memoria.
type memSettingsRepo struct {
	settings map[string]*entity.Settings
	failGet  error
}

func (m *memSettingsRepo) Get(ownerID string) (*entity.Settings, error) {
	if m.failGet != nil {
		return nil, m.failGet
	}
	return m.settings[ownerID], nil
}

func (m *memSettingsRepo) Save(ownerID string, s *entity.Settings) error {
	if m.settings == nil {
		m.settings = make(map[string]*entity.Settings)
	}
	m.settings[ownerID] = s
	return nil
}

// fakeRenderer captura el documento recibido y permite bloquear el render
// para simular una exportación larga.
type fakeRenderer struct {
	mu       sync.Mutex
	lastInv  entity.Invoice
	lastBrd  entity.Branding
	block    chan struct{}
	failWith error
}

func (f *fakeRenderer) RenderInvoicePDF(ctx context.Context, inv entity.Invoice, branding entity.Branding) ([]byte, error) {
	f.mu.Lock()
	f.lastInv = inv
	f.lastBrd = branding
	f.mu.Unlock()
	if f.block != nil {
		<-f.block
	}
	if f.failWith != nil {
		return nil, f.failWith
	}
	return []byte("%PDF-fake"), nil
}

type fakeCatalog struct{}

func (fakeCatalog) Options() []dto.TemplateOption {
	return []dto.TemplateOption{{ID: entity.TemplateClassic, Label: "Classic"}}
}

func exportInvoice() entity.Invoice {
	return entity.Invoice{
		DocumentNumber: "INV-7",
		DocumentType:   entity.DocumentQuotation,
		Client:         entity.PartyInfo{Name: "Cliente"},
		Items: []entity.LineItem{
			{ID: "li-1", Description: "Servicio", Quantity: decimal.NewFromInt(1), UnitRate: decimal.NewFromInt(40)},
		},
		TemplateID: entity.TemplateClassic,
	}
}

func TestExport_NombreDeArchivo(t *testing.T) {
	renderer := &fakeRenderer{}
	uc := invoicing.NewExportUseCase(&memSettingsRepo{}, renderer, fakeCatalog{}, logger.Nop())

	pdfBytes, filename, err := uc.Export(context.Background(), "owner-1", exportInvoice())
	require.NoError(t, err)

	assert.Equal(t, "quotation-INV-7.pdf", filename)
	assert.NotEmpty(t, pdfBytes)
}

func TestExport_SinNumeroUsaDownload(t *testing.T) {
	inv := exportInvoice()
	inv.DocumentNumber = ""
	inv.DocumentType = entity.DocumentInvoice

	uc := invoicing.NewExportUseCase(&memSettingsRepo{}, &fakeRenderer{}, fakeCatalog{}, logger.Nop())
	_, filename, err := uc.Export(context.Background(), "owner-1", inv)
	require.NoError(t, err)
	assert.Equal(t, "invoice-download.pdf", filename)
}

func TestExport_SoloUnaEnVuelo(t *testing.T) {
	renderer := &fakeRenderer{block: make(chan struct{})}
	uc := invoicing.NewExportUseCase(&memSettingsRepo{}, renderer, fakeCatalog{}, logger.Nop())

	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		close(started)
		_, _, err := uc.Export(context.Background(), "owner-1", exportInvoice())
		done <- err
	}()
	<-started
	// Esperar a que la primera exportación llegue al renderer bloqueado.
	for {
		renderer.mu.Lock()
		arrived := renderer.lastInv.DocumentNumber != ""
		renderer.mu.Unlock()
		if arrived {
			break
		}
		time.Sleep(time.Millisecond)
	}

	_, _, err := uc.Export(context.Background(), "owner-1", exportInvoice())
	assert.ErrorIs(t, err, domain.ErrExportInFlight,
		"una segunda exportación concurrente debe rechazarse")

	close(renderer.block)
	require.NoError(t, <-done, "la primera exportación termina bien")

	// Liberado el guard, se puede exportar de nuevo.
	renderer.block = nil
	_, _, err = uc.Export(context.Background(), "owner-1", exportInvoice())
	assert.NoError(t, err)
}

func TestExport_MezclaBrandingDelOwner(t *testing.T) {
	settings := &memSettingsRepo{settings: map[string]*entity.Settings{
		"owner-1": {
			CompanyName:         "Mi Empresa SAS",
			Address:             "Calle 1 # 2-3",
			DefaultTemplateID:   entity.TemplateModern,
			ThemeColor:          "#112233",
			ThemeSecondaryColor: "#445566",
			LogoURL:             "https://cdn.test/logo.png",
		},
	}}
	renderer := &fakeRenderer{}
	uc := invoicing.NewExportUseCase(settings, renderer, fakeCatalog{}, logger.Nop())

	inv := exportInvoice()
	inv.Company = entity.PartyInfo{}
	inv.TemplateID = ""
	_, _, err := uc.Export(context.Background(), "owner-1", inv)
	require.NoError(t, err)

	assert.Equal(t, "#112233", renderer.lastBrd.AccentColor)
	assert.Equal(t, "#445566", renderer.lastBrd.SecondaryColor)
	assert.Equal(t, "https://cdn.test/logo.png", renderer.lastBrd.LogoURL)
	assert.Equal(t, "Mi Empresa SAS", renderer.lastInv.Company.Name,
		"la empresa vacía se completa desde settings")
	assert.Equal(t, entity.TemplateModern, renderer.lastInv.TemplateID,
		"sin plantilla en el documento se usa la default del owner")
}

func TestExport_OverridesDelDocumentoGanan(t *testing.T) {
	settings := &memSettingsRepo{settings: map[string]*entity.Settings{
		"owner-1": {ThemeColor: "#112233", DefaultTemplateID: entity.TemplateModern},
	}}
	renderer := &fakeRenderer{}
	uc := invoicing.NewExportUseCase(settings, renderer, fakeCatalog{}, logger.Nop())

	inv := exportInvoice()
	inv.Branding.AccentColor = "#FF0000"
	_, _, err := uc.Export(context.Background(), "owner-1", inv)
	require.NoError(t, err)

	assert.Equal(t, "#FF0000", renderer.lastBrd.AccentColor,
		"el override del documento manda sobre el default del owner")
	assert.Equal(t, entity.TemplateClassic, renderer.lastInv.TemplateID,
		"la plantilla del documento no se reemplaza")
}

func TestExport_SettingsCaidosNoAbortan(t *testing.T) {
	settings := &memSettingsRepo{failGet: domain.ErrStorageUnavailable}
	renderer := &fakeRenderer{}
	uc := invoicing.NewExportUseCase(settings, renderer, fakeCatalog{}, logger.Nop())

	_, _, err := uc.Export(context.Background(), "owner-1", exportInvoice())
	assert.NoError(t, err, "una lectura de settings fallida exporta con defaults")
}

func TestExport_RecalculaAntesDeRender(t *testing.T) {
	renderer := &fakeRenderer{}
	uc := invoicing.NewExportUseCase(&memSettingsRepo{}, renderer, fakeCatalog{}, logger.Nop())

	inv := exportInvoice()
	inv.Subtotal = decimal.NewFromInt(999) // valor rancio del cliente
	_, _, err := uc.Export(context.Background(), "owner-1", inv)
	require.NoError(t, err)

	assert.True(t, renderer.lastInv.Subtotal.Equal(decimal.NewFromInt(40)),
		"los totales se recalculan del lado servidor antes del render")
}

func TestExport_FalloDeRenderPropagado(t *testing.T) {
	renderer := &fakeRenderer{failWith: domain.ErrRenderFailed}
	uc := invoicing.NewExportUseCase(&memSettingsRepo{}, renderer, fakeCatalog{}, logger.Nop())

	pdfBytes, _, err := uc.Export(context.Background(), "owner-1", exportInvoice())
	assert.ErrorIs(t, err, domain.ErrRenderFailed)
	assert.Nil(t, pdfBytes, "no se entrega artefacto parcial")
}
