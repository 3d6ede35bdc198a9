// Package scope resuelve el alcance de oficinas visible para un usuario
// según su rol (servicio de dominio, puro, sin I/O).
//
// La visibilidad es todo-o-nada por oficina: cualquier filtrado de proyectos,
// empleados, departamentos u horas debe reducirse a "officeID ∈ scope".
package scope

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// Scope es el conjunto de IDs de oficina que un usuario puede ver.
type Scope map[string]struct{}

// Contains indica si la oficina pertenece al alcance.
func (s Scope) Contains(officeID string) bool {
	_, ok := s[officeID]
	return ok
}

// Len cantidad de oficinas visibles.
func (s Scope) Len() int { return len(s) }

// IDs devuelve los IDs del alcance (orden no determinista).
func (s Scope) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return ids
}

// Resolve calcula el alcance de oficinas de un usuario:
//
//   - DIRECTOR: todas las oficinas, incondicionalmente.
//   - MANAGER: solo las oficinas asignadas vía ManagerOffice; sin
//     asignaciones el alcance es vacío (fail-closed, nunca fail-open).
//   - EMPLOYEE: la oficina de su registro de empleado; si el registro no
//     existe, alcance vacío.
//   - Rol desconocido o usuario nil: alcance vacío.
//
// Nunca retorna error ni nil: el peor caso es un Scope vacío.
func Resolve(user *entity.User, offices []entity.Office, managerOffices []entity.ManagerOffice, employee *entity.Employee) Scope {
	result := make(Scope)
	if user == nil {
		return result
	}

	switch user.Role {
	case entity.RoleDirector:
		for _, o := range offices {
			result[o.ID] = struct{}{}
		}
	case entity.RoleManager:
		for _, mo := range managerOffices {
			if mo.UserID == user.ID {
				result[mo.OfficeID] = struct{}{}
			}
		}
	case entity.RoleEmployee:
		if employee != nil && employee.OfficeID != "" {
			result[employee.OfficeID] = struct{}{}
		}
	}
	return result
}
