package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
// KPIs financieros y de carga sobre el alcance de oficinas del usuario.
type DashboardStatsDTO struct {
	// Financieros (anuales, nivel portafolio — modelo por allocation)
	AnnualBudget   decimal.Decimal `json:"annual_budget"`
	AnnualExpenses decimal.Decimal `json:"annual_expenses"`
	AnnualProfit   decimal.Decimal `json:"annual_profit"` // puede ser negativo

	TotalProjects  int `json:"total_projects"`
	TotalEmployees int `json:"total_employees"`

	// Siempre con los cinco estados (cero si no hay proyectos en ese estado)
	ProjectsByStatus map[string]int `json:"projects_by_status"`

	// Conteo por nombre visible de departamento; "Sin departamento" agrupa a
	// los empleados sin departamento
	EmployeesByDepartment map[string]int `json:"employees_by_department"`

	CompletedProjectsThisMonth int `json:"completed_projects_this_month"`

	// Allocation total cruda por empleado sobre las asignaciones visibles;
	// > 100 indica sobre-asignación (no se valida, solo se expone)
	AllocationByEmployee map[string]decimal.Decimal `json:"allocation_by_employee"`
}
