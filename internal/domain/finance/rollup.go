package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/scope"
)

// NoDepartmentBucket nombre del bucket para empleados sin departamento (o con
// departamento no resoluble). El agregado agrupa por nombre visible, no por ID.
const NoDepartmentBucket = "Sin departamento"

// DashboardStats resumen financiero y de carga del portafolio visible.
//
// AnnualExpenses usa el modelo por allocation (aproximación de nómina a nivel
// portafolio), NO las horas registradas — esa es la diferencia deliberada con
// el ledger por proyecto.
type DashboardStats struct {
	AnnualBudget   decimal.Decimal
	AnnualExpenses decimal.Decimal
	AnnualProfit   decimal.Decimal // Budget − Expenses; puede ser negativo, no se recorta

	TotalProjects  int
	TotalEmployees int

	// ProjectsByStatus siempre contiene los cinco estados, con cero si no hay
	// proyectos en ese estado, para dar forma estable a los consumidores.
	ProjectsByStatus map[string]int

	// EmployeesByDepartment cuenta por nombre visible del departamento;
	// NoDepartmentBucket agrupa a los empleados sin departamento.
	EmployeesByDepartment map[string]int

	// CompletedProjectsThisMonth proyectos COMPLETED con EndDate dentro de
	// [primer día del mes de now, now].
	CompletedProjectsThisMonth int

	// AllocationByEmployee total crudo de allocation por empleado sobre las
	// asignaciones visibles. No se valida que sume ≤ 100: se expone el total
	// para que el consumidor detecte sobre-asignación si le interesa.
	AllocationByEmployee map[string]decimal.Decimal
}

// ComputeDashboardStats calcula el rollup del dashboard sobre las colecciones
// ya cargadas, restringido al alcance de oficinas. Una sola pasada por
// colección; ninguna llamada re-resuelve el alcance por elemento.
func ComputeDashboardStats(
	sc scope.Scope,
	projects []entity.Project,
	employees []entity.Employee,
	departments []entity.Department,
	views []AssignmentView,
	now time.Time,
) DashboardStats {
	stats := DashboardStats{
		AnnualBudget:          decimal.Zero,
		AnnualExpenses:        decimal.Zero,
		ProjectsByStatus:      make(map[string]int, len(entity.ProjectStatuses)),
		EmployeesByDepartment: make(map[string]int),
		AllocationByEmployee:  make(map[string]decimal.Decimal),
	}
	for _, status := range entity.ProjectStatuses {
		stats.ProjectsByStatus[status] = 0
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	// Pasada por proyectos: presupuesto, conteos por estado, completados del
	// mes y el set de proyectos visibles que gobierna la pasada de asignaciones.
	visibleProjects := make(map[string]struct{})
	for _, p := range projects {
		if !sc.Contains(p.OfficeID) {
			continue
		}
		visibleProjects[p.ID] = struct{}{}
		stats.TotalProjects++
		stats.ProjectsByStatus[p.Status]++
		if p.Budget.Valid {
			stats.AnnualBudget = stats.AnnualBudget.Add(p.Budget.Decimal)
		}
		if p.Status == entity.ProjectStatusCompleted && p.EndDate != nil &&
			!p.EndDate.Before(monthStart) && !p.EndDate.After(now) {
			stats.CompletedProjectsThisMonth++
		}
	}

	// Pasada por empleados: conteo por nombre de departamento.
	departmentNames := make(map[string]string, len(departments))
	for _, d := range departments {
		departmentNames[d.ID] = d.Name
	}
	for _, e := range employees {
		if !sc.Contains(e.OfficeID) {
			continue
		}
		stats.TotalEmployees++
		bucket := NoDepartmentBucket
		if e.DepartmentID != nil {
			if name, ok := departmentNames[*e.DepartmentID]; ok && name != "" {
				bucket = name
			}
		}
		stats.EmployeesByDepartment[bucket]++
	}

	// Pasada por asignaciones: gasto anual con el modelo por allocation y el
	// total crudo de allocation por empleado.
	for _, v := range views {
		if _, ok := visibleProjects[v.Assignment.ProjectID]; !ok {
			continue
		}
		if v.EmployeeFound {
			stats.AnnualExpenses = stats.AnnualExpenses.Add(
				AllocationCost(v.Employee.Salary, v.Assignment.Allocation))
		}
		prev, ok := stats.AllocationByEmployee[v.Assignment.EmployeeID]
		if !ok {
			prev = decimal.Zero
		}
		stats.AllocationByEmployee[v.Assignment.EmployeeID] = prev.Add(v.Assignment.Allocation)
	}

	stats.AnnualProfit = stats.AnnualBudget.Sub(stats.AnnualExpenses)
	return stats
}
