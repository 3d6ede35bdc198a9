package finance_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/finance"
	"github.com/jhoicas/Gestion-api/internal/domain/scope"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: dos oficinas disjuntas con un proyecto y un empleado cada una.
//
// Oficina A: proyecto presupuesto 100.000, empleado salario 60.000 al 50%
//            → gasto 30.000, utilidad 70.000.
// Oficina B: proyecto presupuesto 40.000, empleado salario 80.000 al 25%
//            → gasto 20.000, utilidad 20.000.
// ──────────────────────────────────────────────────────────────────────────────

func budget(v int64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromInt(v), Valid: true}
}

func strPtr(s string) *string { return &s }

type rollupFixture struct {
	projects    []entity.Project
	employees   []entity.Employee
	departments []entity.Department
	views       []finance.AssignmentView
	now         time.Time
}

func buildRollupFixture() rollupFixture {
	now := day(2024, time.March, 15)
	endFeb := day(2024, time.March, 10)

	projects := []entity.Project{
		{ID: "pA", OfficeID: "ofA", Status: entity.ProjectStatusActive, Budget: budget(100_000), StartDate: day(2024, time.January, 1)},
		{ID: "pB", OfficeID: "ofB", Status: entity.ProjectStatusCompleted, Budget: budget(40_000), StartDate: day(2023, time.June, 1), EndDate: &endFeb},
	}
	employees := []entity.Employee{
		{ID: "eA", OfficeID: "ofA", DepartmentID: strPtr("d1"), Status: entity.EmployeeStatusActive, Salary: salary(60_000)},
		{ID: "eB", OfficeID: "ofB", Status: entity.EmployeeStatusActive, Salary: salary(80_000)},
	}
	departments := []entity.Department{
		{ID: "d1", OfficeID: "ofA", Name: "Ingeniería"},
	}
	assignments := []entity.ProjectEmployee{
		{ID: "a1", ProjectID: "pA", EmployeeID: "eA", Allocation: decimal.NewFromInt(50)},
		{ID: "a2", ProjectID: "pB", EmployeeID: "eB", Allocation: decimal.NewFromInt(25)},
	}
	return rollupFixture{
		projects:    projects,
		employees:   employees,
		departments: departments,
		views:       finance.JoinAssignments(assignments, employees),
		now:         now,
	}
}

func scopeOf(ids ...string) scope.Scope {
	sc := make(scope.Scope, len(ids))
	for _, id := range ids {
		sc[id] = struct{}{}
	}
	return sc
}

// ──────────────────────────────────────────────────────────────────────────────
// Totales y forma del resultado
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeDashboardStats_TotalesCompletos(t *testing.T) {
	f := buildRollupFixture()

	stats := finance.ComputeDashboardStats(scopeOf("ofA", "ofB"),
		f.projects, f.employees, f.departments, f.views, f.now)

	assert.True(t, decimal.NewFromInt(140_000).Equal(stats.AnnualBudget), "presupuesto: %s", stats.AnnualBudget)
	assert.True(t, decimal.NewFromInt(50_000).Equal(stats.AnnualExpenses), "gasto: %s", stats.AnnualExpenses)
	assert.True(t, decimal.NewFromInt(90_000).Equal(stats.AnnualProfit), "utilidad: %s", stats.AnnualProfit)
	assert.Equal(t, 2, stats.TotalProjects)
	assert.Equal(t, 2, stats.TotalEmployees)
}

func TestComputeDashboardStats_CincoEstadosSiemprePresentes(t *testing.T) {
	f := buildRollupFixture()

	stats := finance.ComputeDashboardStats(scopeOf("ofA"),
		f.projects, f.employees, f.departments, f.views, f.now)

	require.Len(t, stats.ProjectsByStatus, 5,
		"los cinco estados deben estar presentes aunque no tengan proyectos")
	assert.Equal(t, 1, stats.ProjectsByStatus[entity.ProjectStatusActive])
	assert.Equal(t, 0, stats.ProjectsByStatus[entity.ProjectStatusPlanning])
	assert.Equal(t, 0, stats.ProjectsByStatus[entity.ProjectStatusOnHold])
	assert.Equal(t, 0, stats.ProjectsByStatus[entity.ProjectStatusCompleted])
	assert.Equal(t, 0, stats.ProjectsByStatus[entity.ProjectStatusCancelled])
}

func TestComputeDashboardStats_BucketSinDepartamento(t *testing.T) {
	f := buildRollupFixture()

	stats := finance.ComputeDashboardStats(scopeOf("ofA", "ofB"),
		f.projects, f.employees, f.departments, f.views, f.now)

	assert.Equal(t, 1, stats.EmployeesByDepartment["Ingeniería"],
		"los departamentos se agrupan por nombre visible, no por ID")
	assert.Equal(t, 1, stats.EmployeesByDepartment[finance.NoDepartmentBucket],
		"el empleado sin departamento debe caer en el bucket centinela")
}

func TestComputeDashboardStats_CompletadosDelMes(t *testing.T) {
	f := buildRollupFixture()

	// pB terminó el 10 de marzo y "now" es 15 de marzo: cuenta.
	stats := finance.ComputeDashboardStats(scopeOf("ofA", "ofB"),
		f.projects, f.employees, f.departments, f.views, f.now)
	assert.Equal(t, 1, stats.CompletedProjectsThisMonth)

	// Un mes después ya no cae en [inicio de mes, now].
	statsAbril := finance.ComputeDashboardStats(scopeOf("ofA", "ofB"),
		f.projects, f.employees, f.departments, f.views, day(2024, time.April, 20))
	assert.Equal(t, 0, statsAbril.CompletedProjectsThisMonth,
		"un proyecto completado el mes anterior no debe contar este mes")
}

// ──────────────────────────────────────────────────────────────────────────────
// Aditividad: el rollup de la unión de dos alcances disjuntos es la suma de
// los rollups por separado.
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeDashboardStats_AditividadPorAlcance(t *testing.T) {
	f := buildRollupFixture()

	onlyA := finance.ComputeDashboardStats(scopeOf("ofA"), f.projects, f.employees, f.departments, f.views, f.now)
	onlyB := finance.ComputeDashboardStats(scopeOf("ofB"), f.projects, f.employees, f.departments, f.views, f.now)
	union := finance.ComputeDashboardStats(scopeOf("ofA", "ofB"), f.projects, f.employees, f.departments, f.views, f.now)

	assert.True(t, union.AnnualBudget.Equal(onlyA.AnnualBudget.Add(onlyB.AnnualBudget)),
		"el presupuesto debe ser aditivo sobre alcances disjuntos")
	assert.True(t, union.AnnualExpenses.Equal(onlyA.AnnualExpenses.Add(onlyB.AnnualExpenses)),
		"el gasto debe ser aditivo sobre alcances disjuntos")
	assert.Equal(t, union.TotalProjects, onlyA.TotalProjects+onlyB.TotalProjects)
	assert.Equal(t, union.TotalEmployees, onlyA.TotalEmployees+onlyB.TotalEmployees)
}

func TestComputeDashboardStats_AlcanceVacio_TodoCero(t *testing.T) {
	f := buildRollupFixture()

	stats := finance.ComputeDashboardStats(scopeOf(), f.projects, f.employees, f.departments, f.views, f.now)

	assert.True(t, stats.AnnualBudget.IsZero())
	assert.True(t, stats.AnnualExpenses.IsZero())
	assert.Equal(t, 0, stats.TotalProjects)
	assert.Equal(t, 0, stats.TotalEmployees)
	assert.Len(t, stats.ProjectsByStatus, 5, "la forma del resultado no depende del alcance")
}

// ──────────────────────────────────────────────────────────────────────────────
// Sobre-asignación: no se valida, pero el total crudo por empleado se expone.
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeDashboardStats_ExponeAllocationTotalPorEmpleado(t *testing.T) {
	now := day(2024, time.March, 1)
	projects := []entity.Project{
		{ID: "p1", OfficeID: "of1", Status: entity.ProjectStatusActive},
		{ID: "p2", OfficeID: "of1", Status: entity.ProjectStatusActive},
	}
	employees := []entity.Employee{{ID: "e1", OfficeID: "of1", Salary: salary(50_000)}}
	assignments := []entity.ProjectEmployee{
		{ID: "a1", ProjectID: "p1", EmployeeID: "e1", Allocation: decimal.NewFromInt(80)},
		{ID: "a2", ProjectID: "p2", EmployeeID: "e1", Allocation: decimal.NewFromInt(60)},
	}
	views := finance.JoinAssignments(assignments, employees)

	stats := finance.ComputeDashboardStats(scopeOf("of1"), projects, employees, nil, views, now)

	total, ok := stats.AllocationByEmployee["e1"]
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(140).Equal(total),
		"el total crudo (140%%) debe exponerse para que el consumidor detecte sobre-asignación")
}

// Idempotencia: dos llamadas con el mismo input producen el mismo resultado.
func TestComputeDashboardStats_Idempotente(t *testing.T) {
	f := buildRollupFixture()
	sc := scopeOf("ofA", "ofB")

	s1 := finance.ComputeDashboardStats(sc, f.projects, f.employees, f.departments, f.views, f.now)
	s2 := finance.ComputeDashboardStats(sc, f.projects, f.employees, f.departments, f.views, f.now)

	assert.True(t, s1.AnnualBudget.Equal(s2.AnnualBudget))
	assert.True(t, s1.AnnualExpenses.Equal(s2.AnnualExpenses))
	assert.Equal(t, s1.ProjectsByStatus, s2.ProjectsByStatus)
	assert.Equal(t, s1.EmployeesByDepartment, s2.EmployeesByDepartment)
}
