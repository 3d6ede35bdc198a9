package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// TimeEntryRepository puerto de persistencia para entradas de horas.
type TimeEntryRepository interface {
	Create(e *entity.TimeEntry) error
	// CreateBatch inserta las entradas de un pegado en bloque; o todas o
	// ninguna (la implementación lo envuelve en una transacción).
	CreateBatch(ctx context.Context, entries []entity.TimeEntry) error
	Delete(id string) error
	// ListByEmployeeAndRange entradas de un empleado con fecha en [from, to],
	// ambos incluidos.
	ListByEmployeeAndRange(employeeID string, from, to time.Time) ([]entity.TimeEntry, error)
}
