package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectExpense es un gasto recurrente mensual de un proyecto (licencias,
// infraestructura, etc.). EndDate nil significa que sigue activo "hoy":
// el prorrateo factura hasta la fecha de cálculo.
type ProjectExpense struct {
	ID          string
	ProjectID   string
	Category    string
	Description string
	MonthlyCost decimal.Decimal
	StartDate   time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
