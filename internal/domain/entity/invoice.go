package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura de proyecto.
const (
	InvoiceStatusDraft = "DRAFT"
	InvoiceStatusSent  = "SENT"
	InvoiceStatusPaid  = "PAID"
)

// Invoice representa una factura emitida contra un proyecto (cliente del
// proyecto). El monto normalmente proviene del ledger del proyecto, pero
// puede fijarse manualmente.
type Invoice struct {
	ID        string
	ProjectID string
	Number    string
	IssueDate time.Time
	Amount    decimal.Decimal
	Status    string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
