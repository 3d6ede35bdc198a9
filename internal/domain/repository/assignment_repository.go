package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// AssignmentRepository puerto de persistencia para asignaciones
// proyecto ↔ empleado (ProjectEmployee).
type AssignmentRepository interface {
	Create(a *entity.ProjectEmployee) error
	GetByID(id string) (*entity.ProjectEmployee, error)
	Update(a *entity.ProjectEmployee) error
	ListByProject(projectID string) ([]entity.ProjectEmployee, error)
	ListByEmployee(employeeID string) ([]entity.ProjectEmployee, error)
	ListAll() ([]entity.ProjectEmployee, error)
}
