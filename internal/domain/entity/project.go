package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un proyecto.
const (
	ProjectStatusPlanning  = "PLANNING"
	ProjectStatusActive    = "ACTIVE"
	ProjectStatusOnHold    = "ON_HOLD"
	ProjectStatusCompleted = "COMPLETED"
	ProjectStatusCancelled = "CANCELLED"
)

// ProjectStatuses lista canónica de estados, en el orden en que se reportan.
// Los agregados del dashboard la usan para rellenar con cero los estados sin
// proyectos y dar una forma estable a los consumidores.
var ProjectStatuses = []string{
	ProjectStatusPlanning,
	ProjectStatusActive,
	ProjectStatusOnHold,
	ProjectStatusCompleted,
	ProjectStatusCancelled,
}

// Project representa un proyecto. OfficeID es la oficina principal (la que
// determina el scoping); OfficeIDs son asociaciones adicionales. Budget es el
// presupuesto total del proyecto, no mensual, y es opcional.
type Project struct {
	ID         string
	OfficeID   string
	OfficeIDs  []string
	Name       string
	Status     string
	StartDate  time.Time
	EndDate    *time.Time
	Budget     decimal.NullDecimal
	IsInternal bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
