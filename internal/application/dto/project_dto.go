package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProjectRequest alta de proyecto. Fechas en YYYY-MM-DD; Budget es el
// presupuesto total del proyecto (no mensual) y es opcional.
type CreateProjectRequest struct {
	OfficeID   string           `json:"office_id"`
	OfficeIDs  []string         `json:"office_ids"` // oficinas adicionales
	Name       string           `json:"name"`
	Status     string           `json:"status"`
	StartDate  string           `json:"start_date"`
	EndDate    *string          `json:"end_date"`
	Budget     *decimal.Decimal `json:"budget"`
	IsInternal bool             `json:"is_internal"`
}

// UpdateProjectStatusRequest transición de estado del proyecto. EndDate se
// fija al completar/cancelar.
type UpdateProjectStatusRequest struct {
	Status  string  `json:"status"`
	EndDate *string `json:"end_date"`
}

// ProjectResponse representación de un proyecto.
type ProjectResponse struct {
	ID         string           `json:"id"`
	OfficeID   string           `json:"office_id"`
	OfficeIDs  []string         `json:"office_ids,omitempty"`
	Name       string           `json:"name"`
	Status     string           `json:"status"`
	StartDate  string           `json:"start_date"`
	EndDate    *string          `json:"end_date,omitempty"`
	Budget     *decimal.Decimal `json:"budget,omitempty"`
	IsInternal bool             `json:"is_internal"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// ProjectListResponse listado paginado de proyectos.
type ProjectListResponse struct {
	Items []ProjectResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateAssignmentRequest asigna un empleado a un proyecto con un porcentaje
// de dedicación (0–100).
type CreateAssignmentRequest struct {
	EmployeeID string           `json:"employee_id"`
	Allocation decimal.Decimal  `json:"allocation"`
	StartDate  string           `json:"start_date"`
	EndDate    *string          `json:"end_date"`
	Hours      *decimal.Decimal `json:"hours"`
}

// AssignmentResponse representación de una asignación.
type AssignmentResponse struct {
	ID         string           `json:"id"`
	ProjectID  string           `json:"project_id"`
	EmployeeID string           `json:"employee_id"`
	Allocation decimal.Decimal  `json:"allocation"`
	StartDate  string           `json:"start_date"`
	EndDate    *string          `json:"end_date,omitempty"`
	Hours      *decimal.Decimal `json:"hours,omitempty"`
}

// CreateExpenseRequest alta de gasto recurrente mensual de un proyecto.
type CreateExpenseRequest struct {
	Category    string          `json:"category"`
	Description string          `json:"description"`
	MonthlyCost decimal.Decimal `json:"monthly_cost"`
	StartDate   string          `json:"start_date"`
	EndDate     *string         `json:"end_date"`
}

// ExpenseResponse representación de un gasto de proyecto.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"project_id"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	MonthlyCost decimal.Decimal `json:"monthly_cost"`
	StartDate   string          `json:"start_date"`
	EndDate     *string         `json:"end_date,omitempty"`
}

// TechnologyResponse tecnología del catálogo.
type TechnologyResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}
