package settings

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/Facturador-api/internal/application/dto"
	"github.com/jhoicas/Facturador-api/internal/domain"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
	"github.com/jhoicas/Facturador-api/internal/domain/repository"
)

// UseCase maneja la lectura y escritura de los settings por owner.
// La escritura es explícita (PUT), no hay auto-guardado.
type UseCase struct {
	repo            repository.SettingsRepository
	validate        *validator.Validate
	defaultTemplate entity.TemplateID
}

// NewUseCase construye el caso de uso. defaultTemplate es la plantilla del
// despliegue (BILLING_DEFAULT_TEMPLATE) para owners que nunca guardaron;
// un ID desconocido cae a classic.
func NewUseCase(repo repository.SettingsRepository, defaultTemplate entity.TemplateID) *UseCase {
	if !defaultTemplate.IsValid() {
		defaultTemplate = entity.TemplateClassic
	}
	return &UseCase{
		repo:            repo,
		validate:        validator.New(),
		defaultTemplate: defaultTemplate,
	}
}

// Get devuelve los settings del owner, o los defaults si nunca guardó.
func (uc *UseCase) Get(ownerID string) (*entity.Settings, error) {
	s, err := uc.repo.Get(ownerID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return entity.DefaultSettings(uc.defaultTemplate), nil
	}
	return s, nil
}

// Save valida y persiste los settings del owner. Una plantilla por defecto
// fuera del conjunto registrado es un error de validación.
func (uc *UseCase) Save(ownerID string, req dto.SettingsRequest) (*entity.Settings, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	s := req.ToEntity()
	if s.DefaultTemplateID == "" {
		s.DefaultTemplateID = uc.defaultTemplate
	}
	if !s.DefaultTemplateID.IsValid() {
		return nil, fmt.Errorf("%w: plantilla desconocida: %s", domain.ErrInvalidInput, s.DefaultTemplateID)
	}
	if err := uc.repo.Save(ownerID, s); err != nil {
		return nil, err
	}
	return s, nil
}
