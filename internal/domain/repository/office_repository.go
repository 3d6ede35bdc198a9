package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// OfficeRepository puerto de persistencia para oficinas.
type OfficeRepository interface {
	Create(office *entity.Office) error
	GetByID(id string) (*entity.Office, error)
	// ListAll devuelve todas las oficinas (cardinalidad pequeña; el resolver
	// de alcance siempre trabaja sobre el conjunto completo).
	ListAll() ([]entity.Office, error)
}

// ManagerOfficeRepository puerto para la tabla de asignación Manager ↔ Oficina.
type ManagerOfficeRepository interface {
	Assign(mo *entity.ManagerOffice) error
	Remove(userID, officeID string) error
	// ListByUser asignaciones de un manager concreto.
	ListByUser(userID string) ([]entity.ManagerOffice, error)
}
