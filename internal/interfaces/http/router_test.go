package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturador-api/internal/application/auth"
	"github.com/jhoicas/Facturador-api/internal/application/dto"
	"github.com/jhoicas/Facturador-api/internal/application/invoicing"
	appsettings "github.com/jhoicas/Facturador-api/internal/application/settings"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
	infrapdf "github.com/jhoicas/Facturador-api/internal/infrastructure/pdf"
	infrasqlite "github.com/jhoicas/Facturador-api/internal/infrastructure/sqlite"
	apphttp "github.com/jhoicas/Facturador-api/internal/interfaces/http"
	"github.com/jhoicas/Facturador-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// App de integración: router completo sobre SQLite en memoria
// ──────────────────────────────────────────────────────────────────────────────

func buildAPI(t *testing.T) *fiber.App {
	t.Helper()

	db, err := infrasqlite.Open(":memory:")
	require.NoError(t, err, "sqlite en memoria debe abrir")
	t.Cleanup(func() { db.Close() })

	userRepo := infrasqlite.NewUserRepository(db)
	draftRepo := infrasqlite.NewDraftRepository(db)
	settingsRepo := infrasqlite.NewSettingsRepository(db)

	log := logger.Nop()
	generator := infrapdf.NewGenerator("$")
	catalog := infrapdf.NewCatalog()

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(userRepo, auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
			Issuer:     testIssuer,
		}),
		DraftUC:    invoicing.NewDraftUseCase(draftRepo),
		ExportUC:   invoicing.NewExportUseCase(settingsRepo, generator, catalog, log),
		SettingsUC: appsettings.NewUseCase(settingsRepo, entity.TemplateClassic),
		Catalog:    catalog,
		JWTSecret:  testJWTSecret,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// registerAndLogin crea una cuenta nueva y devuelve su token.
func registerAndLogin(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email:    email,
		Password: "clave-segura-123",
		Name:     "Tester",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "el registro debe crear la cuenta")
	resp.Body.Close()

	loginResp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    email,
		Password: "clave-segura-123",
	})
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	out := decodeBody[dto.LoginResponse](t, loginResp)
	require.NotEmpty(t, out.Token)
	return out.Token
}

func sampleInvoice() entity.Invoice {
	return entity.Invoice{
		DocumentNumber: "INV-100",
		DocumentType:   entity.DocumentInvoice,
		IssueDate:      "2026-08-01",
		Company:        entity.PartyInfo{Name: "Mi Empresa"},
		Client:         entity.PartyInfo{Name: "Cliente Uno"},
		Items: []entity.LineItem{
			{ID: "li-1", Description: "Servicio", Quantity: decimal.NewFromInt(2), UnitRate: decimal.NewFromInt(50)},
		},
		TaxPercent: decimal.NewFromInt(10),
		TemplateID: entity.TemplateClassic,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth end to end
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_RegistroDuplicadoRetorna409(t *testing.T) {
	app := buildAPI(t)
	registerAndLogin(t, app, "dup@test.local")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email:    "dup@test.local",
		Password: "otra-clave-123",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAPI_LoginConPasswordIncorrecto(t *testing.T) {
	app := buildAPI(t)
	registerAndLogin(t, app, "login@test.local")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    "login@test.local",
		Password: "password-equivocado",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_RutasProtegidasSinToken(t *testing.T) {
	app := buildAPI(t)
	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/drafts/"},
		{http.MethodGet, "/api/settings/"},
		{http.MethodGet, "/api/templates/"},
		{http.MethodPost, "/api/invoices/recompute"},
	} {
		resp := doJSON(t, app, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
			"%s %s debe exigir token", route.method, route.path)
		resp.Body.Close()
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Operaciones de documento (stateless)
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_RecomputeCalculaTotales(t *testing.T) {
	app := buildAPI(t)
	token := registerAndLogin(t, app, "calc@test.local")

	resp := doJSON(t, app, http.MethodPost, "/api/invoices/recompute", token,
		dto.InvoiceEnvelope{Invoice: sampleInvoice()})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody[dto.InvoiceEnvelope](t, resp)

	assert.True(t, out.Invoice.Subtotal.Equal(decimal.NewFromInt(100)),
		"subtotal: 2 x 50 = 100, fue %s", out.Invoice.Subtotal)
	assert.True(t, out.Invoice.Total.Equal(decimal.NewFromInt(110)),
		"total con 10%% de impuesto = 110, fue %s", out.Invoice.Total)
}

func TestAPI_AddItemAgregaLineaEnBlanco(t *testing.T) {
	app := buildAPI(t)
	token := registerAndLogin(t, app, "add@test.local")

	resp := doJSON(t, app, http.MethodPost, "/api/invoices/items", token,
		dto.InvoiceEnvelope{Invoice: sampleInvoice()})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody[dto.InvoiceEnvelope](t, resp)

	require.Len(t, out.Invoice.Items, 2)
	added := out.Invoice.Items[1]
	assert.NotEmpty(t, added.ID, "la línea nueva debe traer id generado")
	assert.True(t, added.Quantity.Equal(decimal.NewFromInt(1)), "cantidad por defecto 1")
	assert.True(t, added.UnitRate.IsZero(), "tarifa por defecto 0")
}

func TestAPI_RemoveUltimaLineaRetorna400(t *testing.T) {
	app := buildAPI(t)
	token := registerAndLogin(t, app, "remove@test.local")

	resp := doJSON(t, app, http.MethodDelete, "/api/invoices/items/li-1", token,
		dto.InvoiceEnvelope{Invoice: sampleInvoice()})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
		"no se puede eliminar la última línea")
}

func TestAPI_UpdateItemCampoDesconocidoRetorna400(t *testing.T) {
	app := buildAPI(t)
	token := registerAndLogin(t, app, "update@test.local")

	resp := doJSON(t, app, http.MethodPatch, "/api/invoices/items/li-1", token,
		dto.UpdateItemRequest{Invoice: sampleInvoice(), Field: "color", Value: "azul"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_UpdateItemRecalculaTotales(t *testing.T) {
	app := buildAPI(t)
	token := registerAndLogin(t, app, "update2@test.local")

	resp := doJSON(t, app, http.MethodPatch, "/api/invoices/items/li-1", token,
		dto.UpdateItemRequest{Invoice: sampleInvoice(), Field: "quantity", Value: "4"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody[dto.InvoiceEnvelope](t, resp)

	assert.True(t, out.Invoice.Subtotal.Equal(decimal.NewFromInt(200)),
		"subtotal tras cambiar cantidad a 4: 4 x 50 = 200, fue %s", out.Invoice.Subtotal)
}

// ──────────────────────────────────────────────────────────────────────────────
// Borradores
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_DraftCicloCompleto(t *testing.T) {
	app := buildAPI(t)
	token := registerAndLogin(t, app, "draft@test.local")

	// Guardar
	saveResp := doJSON(t, app, http.MethodPost, "/api/drafts/", token,
		dto.InvoiceEnvelope{Invoice: sampleInvoice()})
	require.Equal(t, http.StatusOK, saveResp.StatusCode)
	saved := decodeBody[entity.Draft](t, saveResp)
	require.NotEmpty(t, saved.ID, "el guardado debe asignar id")
	assert.False(t, saved.LastModified.IsZero())

	// Listar
	listResp := doJSON(t, app, http.MethodGet, "/api/drafts/", token, nil)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	drafts := decodeBody[[]entity.Draft](t, listResp)
	require.Len(t, drafts, 1)

	// Cargar
	getResp := doJSON(t, app, http.MethodGet, "/api/drafts/"+saved.ID, token, nil)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	loaded := decodeBody[entity.Draft](t, getResp)
	assert.Equal(t, "Cliente Uno", loaded.Client.Name)
	assert.True(t, loaded.Total.Equal(decimal.NewFromInt(110)),
		"el borrador se guarda con totales recalculados")

	// Sobrescribir por id de ruta
	modified := sampleInvoice()
	modified.Client.Name = "Cliente Renombrado"
	updResp := doJSON(t, app, http.MethodPut, "/api/drafts/"+saved.ID, token,
		dto.InvoiceEnvelope{Invoice: modified})
	require.Equal(t, http.StatusOK, updResp.StatusCode)
	updResp.Body.Close()

	listResp2 := doJSON(t, app, http.MethodGet, "/api/drafts/", token, nil)
	drafts2 := decodeBody[[]entity.Draft](t, listResp2)
	require.Len(t, drafts2, 1, "sobrescribir no debe duplicar")
	assert.Equal(t, "Cliente Renombrado", drafts2[0].Client.Name)

	// Eliminar
	delResp := doJSON(t, app, http.MethodDelete, "/api/drafts/"+saved.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, delResp.StatusCode)
	delResp.Body.Close()

	delAgain := doJSON(t, app, http.MethodDelete, "/api/drafts/"+saved.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, delAgain.StatusCode,
		"eliminar dos veces debe retornar 404")
	delAgain.Body.Close()
}

func TestAPI_DraftSinNombreDeClienteRetorna400(t *testing.T) {
	app := buildAPI(t)
	token := registerAndLogin(t, app, "draft2@test.local")

	inv := sampleInvoice()
	inv.Client.Name = ""
	resp := doJSON(t, app, http.MethodPost, "/api/drafts/", token,
		dto.InvoiceEnvelope{Invoice: inv})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_DraftsAisladosPorOwner(t *testing.T) {
	app := buildAPI(t)
	tokenA := registerAndLogin(t, app, "owner-a@test.local")
	tokenB := registerAndLogin(t, app, "owner-b@test.local")

	saveResp := doJSON(t, app, http.MethodPost, "/api/drafts/", tokenA,
		dto.InvoiceEnvelope{Invoice: sampleInvoice()})
	require.Equal(t, http.StatusOK, saveResp.StatusCode)
	saved := decodeBody[entity.Draft](t, saveResp)

	// El owner B no ve ni puede cargar el borrador de A.
	listResp := doJSON(t, app, http.MethodGet, "/api/drafts/", tokenB, nil)
	drafts := decodeBody[[]entity.Draft](t, listResp)
	assert.Empty(t, drafts)

	getResp := doJSON(t, app, http.MethodGet, "/api/drafts/"+saved.ID, tokenB, nil)
	assert.Equal(t, http.StatusNotFound, getResp.StatusCode)
	getResp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Settings
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_SettingsDefaultsYGuardado(t *testing.T) {
	app := buildAPI(t)
	token := registerAndLogin(t, app, "settings@test.local")

	// Sin guardar: defaults
	getResp := doJSON(t, app, http.MethodGet, "/api/settings/", token, nil)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	defaults := decodeBody[entity.Settings](t, getResp)
	assert.Equal(t, entity.TemplateClassic, defaults.DefaultTemplateID)
	assert.Equal(t, "#F7931E", defaults.ThemeColor)

	// Guardar y releer
	putResp := doJSON(t, app, http.MethodPut, "/api/settings/", token, dto.SettingsRequest{
		CompanyName:       "Mi Empresa SAS",
		Email:             "contacto@miempresa.co",
		DefaultTemplateID: string(entity.TemplateModern),
		ThemeColor:        "#112233",
	})
	require.Equal(t, http.StatusOK, putResp.StatusCode)
	putResp.Body.Close()

	getResp2 := doJSON(t, app, http.MethodGet, "/api/settings/", token, nil)
	saved := decodeBody[entity.Settings](t, getResp2)
	assert.Equal(t, "Mi Empresa SAS", saved.CompanyName)
	assert.Equal(t, entity.TemplateModern, saved.DefaultTemplateID)
	assert.Equal(t, "#112233", saved.ThemeColor)
}

func TestAPI_SettingsInvalidosRetornan400(t *testing.T) {
	app := buildAPI(t)
	token := registerAndLogin(t, app, "settings2@test.local")

	cases := []dto.SettingsRequest{
		{CompanyName: ""},                                            // nombre requerido
		{CompanyName: "X", ThemeColor: "naranja"},                    // color no hex
		{CompanyName: "X", DefaultTemplateID: "plantilla-inventada"}, // plantilla desconocida
	}
	for i, in := range cases {
		resp := doJSON(t, app, http.MethodPut, "/api/settings/", token, in)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "caso %d", i)
		resp.Body.Close()
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Plantillas y exportación
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_TemplatesListaConjuntoCerrado(t *testing.T) {
	app := buildAPI(t)
	token := registerAndLogin(t, app, "templates@test.local")

	resp := doJSON(t, app, http.MethodGet, "/api/templates/", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	options := decodeBody[[]dto.TemplateOption](t, resp)

	require.Len(t, options, 6)
	ids := make([]entity.TemplateID, 0, len(options))
	for _, o := range options {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, entity.AllTemplates(), ids, "mismo orden que el registro")
}

func TestAPI_ExportDescargaPDF(t *testing.T) {
	app := buildAPI(t)
	token := registerAndLogin(t, app, "export@test.local")

	resp := doJSON(t, app, http.MethodPost, "/api/invoices/export", token,
		dto.InvoiceEnvelope{Invoice: sampleInvoice()})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, fmt.Sprintf(`attachment; filename=%q`, "invoice-INV-100.pdf"),
		resp.Header.Get("Content-Disposition"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")), "la respuesta debe ser un PDF")
}
