// Package billing contiene el motor de cálculo del documento (servicio de
// dominio): funciones puras sobre entity.Invoice, sin estado oculto. Toda
// operación devuelve un documento nuevo y válido; ningún error es fatal.
package billing

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturador-api/internal/domain"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

// Campos editables de una línea (UpdateItem).
const (
	FieldDescription = "description"
	FieldQuantity    = "quantity"
	FieldUnitRate    = "unitRate"
)

var hundred = decimal.NewFromInt(100)

// NewLineItem crea una línea con valores por defecto (cantidad 1, tarifa 0)
// y un ID fresco.
func NewLineItem() entity.LineItem {
	return entity.LineItem{
		ID:       uuid.New().String(),
		Quantity: decimal.NewFromInt(1),
		UnitRate: decimal.Zero,
	}
}

// AddItem agrega una línea nueva al final, preservando el orden de las
// existentes, y recalcula totales.
func AddItem(inv entity.Invoice) entity.Invoice {
	items := make([]entity.LineItem, 0, len(inv.Items)+1)
	items = append(items, inv.Items...)
	items = append(items, NewLineItem())
	inv.Items = items
	return Recompute(inv)
}

// RemoveItem elimina la línea con el ID dado y recalcula totales.
// Si la colección quedara vacía retorna domain.ErrLastItem y el documento
// sin cambios (el documento siempre conserva al menos una línea).
// Un ID inexistente es un no-op exitoso.
func RemoveItem(inv entity.Invoice, id string) (entity.Invoice, error) {
	if len(inv.Items) <= 1 {
		return inv, domain.ErrLastItem
	}
	items := make([]entity.LineItem, 0, len(inv.Items))
	for _, it := range inv.Items {
		if it.ID == id {
			continue
		}
		items = append(items, it)
	}
	inv.Items = items
	return Recompute(inv), nil
}

// UpdateItem reemplaza un campo de la línea con el ID dado y recalcula.
// Los campos numéricos coercionan entrada vacía o no parseable a 0 — nunca
// se propaga un valor inválido al documento. Un campo desconocido retorna
// domain.ErrInvalidInput; un ID inexistente es un no-op exitoso.
func UpdateItem(inv entity.Invoice, id, field, raw string) (entity.Invoice, error) {
	if field != FieldDescription && field != FieldQuantity && field != FieldUnitRate {
		return inv, domain.ErrInvalidInput
	}
	items := make([]entity.LineItem, len(inv.Items))
	copy(items, inv.Items)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		switch field {
		case FieldDescription:
			items[i].Description = raw
		case FieldQuantity:
			items[i].Quantity = coerceNumber(raw)
		case FieldUnitRate:
			items[i].UnitRate = coerceNumber(raw)
		}
		break
	}
	inv.Items = items
	return Recompute(inv), nil
}

// Recompute recalcula Subtotal y Total a partir de Items y TaxPercent.
// Función pura e idempotente: aplicarla dos veces produce el mismo resultado.
// Debe invocarse tras cada mutación de líneas o del porcentaje de impuesto.
func Recompute(inv entity.Invoice) entity.Invoice {
	subtotal := decimal.Zero
	for _, it := range inv.Items {
		subtotal = subtotal.Add(it.Amount())
	}
	inv.Subtotal = subtotal
	inv.Total = subtotal.Add(subtotal.Mul(inv.TaxPercent).Div(hundred))
	return inv
}

// coerceNumber convierte la entrada del formulario a decimal.
// Vacío o no numérico ("abc") → 0, siguiendo el contrato de coerción
// del formulario original.
func coerceNumber(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}
