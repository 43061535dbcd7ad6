package entity

import "github.com/shopspring/decimal"

// Tipos de documento soportados.
const (
	DocumentInvoice   = "invoice"
	DocumentQuotation = "quotation"
)

// LineItem representa una línea facturable del documento.
// Amount es derivado (Quantity * UnitRate) y nunca se persiste.
type LineItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitRate    decimal.Decimal `json:"unitRate"`
}

// Amount devuelve el importe derivado de la línea.
func (li LineItem) Amount() decimal.Decimal {
	return li.Quantity.Mul(li.UnitRate)
}

// PartyInfo datos de contacto de una de las partes (emisor o cliente).
// Texto libre; la obligatoriedad se valida en la capa de aplicación.
type PartyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
}

// Branding overrides de marca aplicados al documento en el render
// (se mezclan sobre los defaults del Settings del owner).
type Branding struct {
	AccentColor    string `json:"accentColor,omitempty"`    // hex, ej. #F7931E
	SecondaryColor string `json:"secondaryColor,omitempty"` // hex, ej. #0B1F44
	LogoURL        string `json:"logoUrl,omitempty"`
}

// Invoice es el objeto de valor central: un documento (factura o cotización)
// con sus líneas y totales derivados.
//
// Invariante: Subtotal = Σ(Quantity_i * UnitRate_i) y
// Total = Subtotal * (1 + TaxPercent/100). Ambos campos se recalculan con
// billing.Recompute tras cada mutación de Items o TaxPercent; nunca se editan
// de forma independiente.
type Invoice struct {
	ID             string          `json:"id"`
	DocumentNumber string          `json:"documentNumber"`
	DocumentType   string          `json:"documentType"` // invoice | quotation
	IssueDate      string          `json:"issueDate"`    // YYYY-MM-DD
	DueDate        string          `json:"dueDate,omitempty"`
	Company        PartyInfo       `json:"company"`
	Client         PartyInfo       `json:"client"`
	Items          []LineItem      `json:"items"` // orden = orden de captura e impresión
	TaxPercent     decimal.Decimal `json:"taxPercent"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Total          decimal.Decimal `json:"total"`
	TemplateID     TemplateID      `json:"templateId"`
	Branding       Branding        `json:"brandingOverrides,omitempty"`
}

// Title devuelve el rótulo del documento según su tipo.
func (i Invoice) Title() string {
	if i.DocumentType == DocumentQuotation {
		return "Quotation"
	}
	return "Invoice"
}
