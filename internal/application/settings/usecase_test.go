package settings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturador-api/internal/application/dto"
	"github.com/jhoicas/Facturador-api/internal/application/settings"
	"github.com/jhoicas/Facturador-api/internal/domain"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

type memRepo struct {
	stored map[string]*entity.Settings
}

func (m *memRepo) Get(ownerID string) (*entity.Settings, error) {
	return m.stored[ownerID], nil
}

func (m *memRepo) Save(ownerID string, s *entity.Settings) error {
	if m.stored == nil {
		m.stored = make(map[string]*entity.Settings)
	}
	m.stored[ownerID] = s
	return nil
}

func TestSettingsGet_DefaultsParaOwnerNuevo(t *testing.T) {
	uc := settings.NewUseCase(&memRepo{}, entity.TemplateClassic)

	s, err := uc.Get("owner-nuevo")
	require.NoError(t, err)

	assert.Equal(t, entity.TemplateClassic, s.DefaultTemplateID)
	assert.Equal(t, "#F7931E", s.ThemeColor)
	assert.Equal(t, "#0B1F44", s.ThemeSecondaryColor)
	assert.Empty(t, s.CompanyName)
}

// La plantilla por defecto del despliegue (BILLING_DEFAULT_TEMPLATE) gobierna
// tanto el Get de un owner nuevo como el Save sin plantilla explícita.
func TestSettings_PlantillaPorDefectoConfigurable(t *testing.T) {
	uc := settings.NewUseCase(&memRepo{}, entity.TemplateModern)

	s, err := uc.Get("owner-nuevo")
	require.NoError(t, err)
	assert.Equal(t, entity.TemplateModern, s.DefaultTemplateID)

	saved, err := uc.Save("owner-1", dto.SettingsRequest{CompanyName: "X"})
	require.NoError(t, err)
	assert.Equal(t, entity.TemplateModern, saved.DefaultTemplateID)
}

// Un ID desconocido en la configuración no puede romper los defaults: cae a
// classic en la construcción del caso de uso.
func TestSettings_PlantillaConfiguradaInvalidaCaeAClassic(t *testing.T) {
	uc := settings.NewUseCase(&memRepo{}, entity.TemplateID("neon"))

	s, err := uc.Get("owner-nuevo")
	require.NoError(t, err)
	assert.Equal(t, entity.TemplateClassic, s.DefaultTemplateID)
}

func TestSettingsSave_GuardaYRelee(t *testing.T) {
	uc := settings.NewUseCase(&memRepo{}, entity.TemplateClassic)

	saved, err := uc.Save("owner-1", dto.SettingsRequest{
		CompanyName:       "Mi Empresa SAS",
		Email:             "contacto@miempresa.co",
		DefaultTemplateID: string(entity.TemplateGinyard),
		ThemeColor:        "#112233",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TemplateGinyard, saved.DefaultTemplateID)

	got, err := uc.Get("owner-1")
	require.NoError(t, err)
	assert.Equal(t, "Mi Empresa SAS", got.CompanyName)
}

func TestSettingsSave_SinPlantillaUsaClassic(t *testing.T) {
	uc := settings.NewUseCase(&memRepo{}, entity.TemplateClassic)

	saved, err := uc.Save("owner-1", dto.SettingsRequest{CompanyName: "X"})
	require.NoError(t, err)
	assert.Equal(t, entity.TemplateClassic, saved.DefaultTemplateID)
}

func TestSettingsSave_Invalidos(t *testing.T) {
	uc := settings.NewUseCase(&memRepo{}, entity.TemplateClassic)

	cases := map[string]dto.SettingsRequest{
		"sin nombre de empresa": {CompanyName: ""},
		"email malformado":      {CompanyName: "X", Email: "no-es-email"},
		"color no hex":          {CompanyName: "X", ThemeColor: "naranja"},
		"logo no url":           {CompanyName: "X", LogoURL: "::no-url::"},
		"plantilla inexistente": {CompanyName: "X", DefaultTemplateID: "neon"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Save("owner-1", in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
