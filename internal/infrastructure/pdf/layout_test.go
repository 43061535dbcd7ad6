package pdf_test

import (
	"testing"

	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Facturador-api/internal/domain/entity"
	"github.com/jhoicas/Facturador-api/internal/infrastructure/pdf"
)

// El formato monetario aplica separadores de miles y dos decimales.
func TestStyle_Money(t *testing.T) {
	st := pdf.StyleFor(entity.Branding{}, "$")

	assert.Equal(t, "$0.00", st.Money(decimal.Zero))
	assert.Equal(t, "$25.00", st.Money(decimal.NewFromInt(25)))
	assert.Equal(t, "$1,234.50", st.Money(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "$1,000,000.00", st.Money(decimal.NewFromInt(1000000)))
}

// Los colores de marca en hex se resuelven; entradas inválidas caen al default.
func TestStyleFor_ColoresDeMarca(t *testing.T) {
	st := pdf.StyleFor(entity.Branding{AccentColor: "#FF6600", SecondaryColor: "#003366"}, "$")

	assert.Equal(t, &props.Color{Red: 255, Green: 102, Blue: 0}, st.Accent)
	assert.Equal(t, &props.Color{Red: 0, Green: 51, Blue: 102}, st.Secondary)
}

func TestStyleFor_HexInvalidoUsaDefault(t *testing.T) {
	base := pdf.StyleFor(entity.Branding{}, "$")
	st := pdf.StyleFor(entity.Branding{AccentColor: "naranja", SecondaryColor: "#XYZXYZ"}, "$")

	assert.Equal(t, base.Accent, st.Accent)
	assert.Equal(t, base.Secondary, st.Secondary)
}
