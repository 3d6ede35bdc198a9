package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest alta de empleado. Salary es opcional (campo sensible);
// HireDate en formato YYYY-MM-DD.
type CreateEmployeeRequest struct {
	OfficeID     string           `json:"office_id"`
	DepartmentID *string          `json:"department_id"`
	FirstName    string           `json:"first_name"`
	LastName     string           `json:"last_name"`
	Email        string           `json:"email"`
	Position     string           `json:"position"`
	Salary       *decimal.Decimal `json:"salary"`
	HireDate     string           `json:"hire_date"`
}

// UpdateEmployeeStatusRequest transición de estado del ciclo de vida.
type UpdateEmployeeStatusRequest struct {
	Status string `json:"status"` // ACTIVE, INACTIVE, ON_LEAVE, TERMINATED
}

// EmployeeResponse representación de un empleado. Salary solo se incluye
// cuando existe.
type EmployeeResponse struct {
	ID           string           `json:"id"`
	OfficeID     string           `json:"office_id"`
	DepartmentID *string          `json:"department_id,omitempty"`
	FirstName    string           `json:"first_name"`
	LastName     string           `json:"last_name"`
	Email        string           `json:"email"`
	Position     string           `json:"position"`
	Status       string           `json:"status"`
	Salary       *decimal.Decimal `json:"salary,omitempty"`
	HireDate     string           `json:"hire_date"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// EmployeeListResponse listado paginado de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
