// Package analytics contiene los casos de uso del dashboard financiero y del
// ledger por proyecto. Los cálculos en sí viven en internal/domain/finance
// (puros); aquí solo se cargan colecciones, se resuelve el alcance y se
// convierten resultados a DTO.
package analytics

import (
	"fmt"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/scope"
)

// scopeResolver resuelve el alcance de oficinas de un usuario cargando las
// piezas que el resolver de dominio necesita (usuario, oficinas, asignaciones
// de manager y registro de empleado).
type scopeResolver struct {
	userRepo          repository.UserRepository
	officeRepo        repository.OfficeRepository
	managerOfficeRepo repository.ManagerOfficeRepository
	employeeRepo      repository.EmployeeRepository
}

// resolve carga y resuelve el alcance del usuario. Un usuario inexistente
// produce domain.ErrUserNotFound; cualquier otro caso irregular (rol raro,
// empleado sin registro) resuelve alcance vacío, nunca error.
func (r *scopeResolver) resolve(userID string) (scope.Scope, *entity.User, error) {
	user, err := r.userRepo.GetByID(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("scope: cargar usuario: %w", err)
	}
	if user == nil {
		return nil, nil, domain.ErrUserNotFound
	}

	offices, err := r.officeRepo.ListAll()
	if err != nil {
		return nil, nil, fmt.Errorf("scope: cargar oficinas: %w", err)
	}

	var managerOffices []entity.ManagerOffice
	if user.Role == entity.RoleManager {
		managerOffices, err = r.managerOfficeRepo.ListByUser(user.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("scope: cargar asignaciones de manager: %w", err)
		}
	}

	var employee *entity.Employee
	if user.Role == entity.RoleEmployee && user.EmployeeID != nil {
		employee, err = r.employeeRepo.GetByID(*user.EmployeeID)
		if err != nil {
			return nil, nil, fmt.Errorf("scope: cargar empleado: %w", err)
		}
	}

	return scope.Resolve(user, offices, managerOffices, employee), user, nil
}
