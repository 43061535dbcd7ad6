package invoicing

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"

	"github.com/jhoicas/Facturador-api/internal/application/dto"
	"github.com/jhoicas/Facturador-api/internal/domain"
	"github.com/jhoicas/Facturador-api/internal/domain/billing"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
	"github.com/jhoicas/Facturador-api/internal/domain/repository"
	"github.com/jhoicas/Facturador-api/pkg/logger"
)

// Etapas del pipeline de exportación. La acción es corta y atómica para el
// usuario: no hay cancelación a mitad de camino, solo Done o Failed.
type exportStage string

const (
	stageIdle      exportStage = "idle"
	stageRendering exportStage = "rendering" // mezcla de branding + layout de plantilla
	stageEncoding  exportStage = "encoding"  // páginas → bytes PDF
	stageDone      exportStage = "done"
	stageFailed    exportStage = "failed"
)

// ExportUseCase orquesta la exportación de un documento a PDF: mezcla el
// branding del owner, garantiza totales consistentes, renderiza la plantilla
// y entrega los bytes con el nombre de archivo <tipo>-<número>.pdf.
//
// Solo se admite una exportación en vuelo por instancia (el equivalente a
// deshabilitar el botón de exportar mientras hay una en curso).
type ExportUseCase struct {
	settingsRepo repository.SettingsRepository
	renderer     DocumentRenderer
	catalog      TemplateCatalog
	log          *logger.Logger
	inFlight     *semaphore.Weighted
}

// NewExportUseCase construye el caso de uso inyectando sus dependencias.
func NewExportUseCase(
	settingsRepo repository.SettingsRepository,
	renderer DocumentRenderer,
	catalog TemplateCatalog,
	log *logger.Logger,
) *ExportUseCase {
	return &ExportUseCase{
		settingsRepo: settingsRepo,
		renderer:     renderer,
		catalog:      catalog,
		log:          log,
		inFlight:     semaphore.NewWeighted(1),
	}
}

// Export ejecuta el pipeline completo para el documento dado.
//
// Retorna:
//   - (pdfBytes, filename, nil)     si todo sale bien.
//   - domain.ErrExportInFlight      si ya hay una exportación en curso.
//   - domain.ErrRenderFailed        si el layout o el encoding fallaron
//     (reintentable; no se produce archivo parcial).
func (uc *ExportUseCase) Export(ctx context.Context, ownerID string, inv entity.Invoice) (pdfBytes []byte, filename string, err error) {
	if !uc.inFlight.TryAcquire(1) {
		return nil, "", domain.ErrExportInFlight
	}
	defer uc.inFlight.Release(1)

	stage := stageIdle
	defer func() {
		if err != nil {
			uc.log.Error().Err(err).Str("stage", string(stage)).
				Str("document", inv.DocumentNumber).Msg("exportación fallida")
		}
	}()

	// ── 1. Rendering: branding del owner + totales consistentes ──────────────
	stage = stageRendering
	branding := uc.mergeBranding(ownerID, &inv)
	inv = billing.Recompute(inv)

	if !inv.TemplateID.IsValid() {
		// Contrato defensivo: el render continúa con la página placeholder.
		uc.log.Warn().Str("template", string(inv.TemplateID)).
			Msg("plantilla sin renderer registrado, se usará placeholder")
	}

	// ── 2. Encoding: páginas → bytes PDF ─────────────────────────────────────
	stage = stageEncoding
	pdfBytes, err = uc.renderer.RenderInvoicePDF(ctx, inv, branding)
	if err != nil {
		stage = stageFailed
		return nil, "", err
	}

	stage = stageDone
	filename = ExportFilename(inv)
	uc.log.Info().Str("document", inv.DocumentNumber).Str("file", filename).
		Int("bytes", len(pdfBytes)).Msg("documento exportado")
	return pdfBytes, filename, nil
}

// Templates lista las plantillas seleccionables del catálogo.
func (uc *ExportUseCase) Templates() []dto.TemplateOption {
	return uc.catalog.Options()
}

// mergeBranding aplica los defaults del owner donde el documento no trae
// overrides. Una lectura fallida de settings no aborta la exportación: se
// continúa con los defaults de paleta.
func (uc *ExportUseCase) mergeBranding(ownerID string, inv *entity.Invoice) entity.Branding {
	b := inv.Branding
	s, err := uc.settingsRepo.Get(ownerID)
	if err != nil {
		uc.log.Warn().Err(err).Msg("settings no disponibles, se exporta con defaults")
		return b
	}
	if s == nil {
		return b
	}
	if b.AccentColor == "" {
		b.AccentColor = s.ThemeColor
	}
	if b.SecondaryColor == "" {
		b.SecondaryColor = s.ThemeSecondaryColor
	}
	if b.LogoURL == "" {
		b.LogoURL = s.LogoURL
	}
	if inv.Company.Name == "" {
		inv.Company = s.Party()
	}
	if inv.TemplateID == "" {
		inv.TemplateID = s.DefaultTemplateID
	}
	return b
}

// ExportFilename arma el nombre del artefacto: <tipo>-<número>.pdf.
// Sin número de documento se usa "download", como el generador original.
func ExportFilename(inv entity.Invoice) string {
	number := inv.DocumentNumber
	if number == "" {
		number = "download"
	}
	docType := inv.DocumentType
	if docType == "" {
		docType = entity.DocumentInvoice
	}
	return fmt.Sprintf("%s-%s.pdf", docType, number)
}
