package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un empleado. Nunca se borra físicamente un
// empleado referenciado por asignaciones históricas; se marca TERMINATED.
const (
	EmployeeStatusActive     = "ACTIVE"
	EmployeeStatusInactive   = "INACTIVE"
	EmployeeStatusOnLeave    = "ON_LEAVE"
	EmployeeStatusTerminated = "TERMINATED"
)

// Employee representa un empleado con su oficina principal y, opcionalmente,
// un departamento. Salary es el salario bruto anual; es un campo opcional y
// sensible: su ausencia nunca es un error, implica contribución de costo cero.
type Employee struct {
	ID           string
	OfficeID     string
	DepartmentID *string
	FirstName    string
	LastName     string
	Email        string
	Position     string
	Status       string
	Salary       decimal.NullDecimal
	HireDate     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName nombre completo para listados.
func (e *Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
