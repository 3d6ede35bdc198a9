package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeEntry son las horas de un empleado en un proyecto durante un día
// calendario. Pueden existir varias entradas del mismo empleado/proyecto/día;
// la deduplicación es una decisión explícita al pegar días copiados, no una
// invariante de creación.
type TimeEntry struct {
	ID          string
	EmployeeID  string
	ProjectID   string
	Date        time.Time // día calendario; la hora del día se ignora
	Hours       decimal.Decimal
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
