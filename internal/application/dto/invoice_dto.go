package dto

import "github.com/shopspring/decimal"

// CreateInvoiceRequest emite una factura contra un proyecto. Si Amount no se
// envía, el monto se toma del total del ledger del proyecto.
type CreateInvoiceRequest struct {
	ProjectID string           `json:"project_id"`
	Amount    *decimal.Decimal `json:"amount"`
	Notes     string           `json:"notes"`
}

// InvoiceResponse representación de una factura de proyecto.
type InvoiceResponse struct {
	ID        string          `json:"id"`
	ProjectID string          `json:"project_id"`
	Number    string          `json:"number"`
	IssueDate string          `json:"issue_date"` // YYYY-MM-DD
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	Notes     string          `json:"notes,omitempty"`
}

// InvoiceListResponse listado de facturas de un proyecto.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
}
