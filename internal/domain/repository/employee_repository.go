package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// EmployeeRepository puerto de persistencia para empleados.
// Los empleados nunca se borran físicamente mientras existan asignaciones
// históricas que los referencien; el ciclo de vida se maneja por Status.
type EmployeeRepository interface {
	Create(emp *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	Update(emp *entity.Employee) error
	List(limit, offset int) ([]entity.Employee, error)
	// ListAll colección completa para los agregados del dashboard; el
	// filtrado por oficina ocurre en memoria contra el alcance resuelto.
	ListAll() ([]entity.Employee, error)
}
