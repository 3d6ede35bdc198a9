package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// DepartmentRepository puerto de persistencia para departamentos.
type DepartmentRepository interface {
	Create(dept *entity.Department) error
	GetByID(id string) (*entity.Department, error)
	ListByOffice(officeID string) ([]entity.Department, error)
	ListAll() ([]entity.Department, error)
}
