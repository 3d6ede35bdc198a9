package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectEmployee es la membresía de un empleado en un proyecto durante una
// ventana de fechas. Allocation es el porcentaje de dedicación (0–100).
// Un empleado puede tener varias asignaciones solapadas entre proyectos; no
// se valida que sus allocations sumen ≤ 100 — el agregado del dashboard
// expone el total crudo por empleado para que el consumidor lo detecte.
// Hours acumula las horas realmente registradas; es opcional.
type ProjectEmployee struct {
	ID         string
	ProjectID  string
	EmployeeID string
	Allocation decimal.Decimal
	StartDate  time.Time
	EndDate    *time.Time
	Hours      decimal.NullDecimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
