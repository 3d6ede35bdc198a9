package entity

import "time"

// Roles válidos para User. El rol determina el alcance de oficinas visible:
// DIRECTOR ve todas, MANAGER las asignadas vía ManagerOffice, EMPLOYEE solo
// la oficina de su registro de empleado.
const (
	RoleDirector = "DIRECTOR"
	RoleManager  = "MANAGER"
	RoleEmployee = "EMPLOYEE"
)

// User representa un usuario del sistema. EmployeeID enlaza al registro de
// empleado cuando existe (obligatorio para rol EMPLOYEE).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // DIRECTOR, MANAGER, EMPLOYEE
	EmployeeID   *string
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
