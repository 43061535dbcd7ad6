package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturador-api/internal/application/auth"
	"github.com/jhoicas/Facturador-api/internal/application/invoicing"
	"github.com/jhoicas/Facturador-api/internal/application/settings"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	DraftUC    *invoicing.DraftUseCase
	ExportUC   *invoicing.ExportUseCase
	SettingsUC *settings.UseCase
	Catalog    invoicing.TemplateCatalog
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Documento en edición (protegido, stateless)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.ExportUC)
	invoices.Post("/recompute", invoiceHandler.Recompute)
	invoices.Post("/items", invoiceHandler.AddItem)
	invoices.Delete("/items/:id", invoiceHandler.RemoveItem)
	invoices.Patch("/items/:id", invoiceHandler.UpdateItem)
	invoices.Post("/export", invoiceHandler.Export)

	// Borradores (protegido)
	drafts := protected.Group("/drafts")
	draftHandler := NewDraftHandler(deps.DraftUC)
	drafts.Get("/", draftHandler.List)
	drafts.Post("/", draftHandler.Save)
	drafts.Get("/:id", draftHandler.Get)
	drafts.Put("/:id", draftHandler.Update)
	drafts.Delete("/:id", draftHandler.Delete)

	// Settings (protegido)
	settingsGroup := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settingsGroup.Get("/", settingsHandler.Get)
	settingsGroup.Put("/", settingsHandler.Save)

	// Catálogo de plantillas (protegido)
	templates := protected.Group("/templates")
	templateHandler := NewTemplateHandler(deps.Catalog)
	templates.Get("/", templateHandler.List)
}
