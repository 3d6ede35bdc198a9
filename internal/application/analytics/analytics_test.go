package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/analytics"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria — solo los métodos que los casos de uso ejercen tienen
// comportamiento real; el resto devuelve cero para satisfacer el puerto.
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct{ users map[string]*entity.User }

func (f *fakeUserRepo) Create(*entity.User) error { return nil }
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) GetByEmail(string) (*entity.User, error) { return nil, nil }

type fakeOfficeRepo struct{ offices []entity.Office }

func (f *fakeOfficeRepo) Create(*entity.Office) error { return nil }
func (f *fakeOfficeRepo) GetByID(id string) (*entity.Office, error) {
	for i := range f.offices {
		if f.offices[i].ID == id {
			return &f.offices[i], nil
		}
	}
	return nil, nil
}
func (f *fakeOfficeRepo) ListAll() ([]entity.Office, error) { return f.offices, nil }

type fakeManagerOfficeRepo struct{ rows []entity.ManagerOffice }

func (f *fakeManagerOfficeRepo) Assign(*entity.ManagerOffice) error { return nil }
func (f *fakeManagerOfficeRepo) Remove(string, string) error        { return nil }
func (f *fakeManagerOfficeRepo) ListByUser(userID string) ([]entity.ManagerOffice, error) {
	var out []entity.ManagerOffice
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct{ employees []entity.Employee }

func (f *fakeEmployeeRepo) Create(*entity.Employee) error { return nil }
func (f *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	for i := range f.employees {
		if f.employees[i].ID == id {
			return &f.employees[i], nil
		}
	}
	return nil, nil
}
func (f *fakeEmployeeRepo) Update(*entity.Employee) error            { return nil }
func (f *fakeEmployeeRepo) List(int, int) ([]entity.Employee, error) { return f.employees, nil }
func (f *fakeEmployeeRepo) ListAll() ([]entity.Employee, error)      { return f.employees, nil }

type fakeDepartmentRepo struct{ departments []entity.Department }

func (f *fakeDepartmentRepo) Create(*entity.Department) error { return nil }
func (f *fakeDepartmentRepo) GetByID(string) (*entity.Department, error) {
	return nil, nil
}
func (f *fakeDepartmentRepo) ListByOffice(string) ([]entity.Department, error) {
	return f.departments, nil
}
func (f *fakeDepartmentRepo) ListAll() ([]entity.Department, error) { return f.departments, nil }

type fakeProjectRepo struct{ projects []entity.Project }

func (f *fakeProjectRepo) Create(*entity.Project) error { return nil }
func (f *fakeProjectRepo) GetByID(id string) (*entity.Project, error) {
	for i := range f.projects {
		if f.projects[i].ID == id {
			return &f.projects[i], nil
		}
	}
	return nil, nil
}
func (f *fakeProjectRepo) Update(*entity.Project) error            { return nil }
func (f *fakeProjectRepo) List(int, int) ([]entity.Project, error) { return f.projects, nil }
func (f *fakeProjectRepo) ListAll() ([]entity.Project, error)      { return f.projects, nil }

type fakeAssignmentRepo struct{ rows []entity.ProjectEmployee }

func (f *fakeAssignmentRepo) Create(*entity.ProjectEmployee) error { return nil }
func (f *fakeAssignmentRepo) GetByID(string) (*entity.ProjectEmployee, error) {
	return nil, nil
}
func (f *fakeAssignmentRepo) Update(*entity.ProjectEmployee) error { return nil }
func (f *fakeAssignmentRepo) ListByProject(projectID string) ([]entity.ProjectEmployee, error) {
	var out []entity.ProjectEmployee
	for _, r := range f.rows {
		if r.ProjectID == projectID {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeAssignmentRepo) ListByEmployee(employeeID string) ([]entity.ProjectEmployee, error) {
	var out []entity.ProjectEmployee
	for _, r := range f.rows {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeAssignmentRepo) ListAll() ([]entity.ProjectEmployee, error) { return f.rows, nil }

type fakeExpenseRepo struct{ rows []entity.ProjectExpense }

func (f *fakeExpenseRepo) Create(*entity.ProjectExpense) error { return nil }
func (f *fakeExpenseRepo) GetByID(string) (*entity.ProjectExpense, error) {
	return nil, nil
}
func (f *fakeExpenseRepo) ListByProject(projectID string) ([]entity.ProjectExpense, error) {
	var out []entity.ProjectExpense
	for _, r := range f.rows {
		if r.ProjectID == projectID {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeExpenseRepo) Delete(string) error { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: dos oficinas, tres empleados, tres proyectos.
//
// Bogotá:   p1 ACTIVE (presupuesto 100.000), p3 COMPLETED este mes (20.000).
// Medellín: p2 ACTIVE (presupuesto 50.000).
// e1 está en p1 (50%) y en p3 (70%): sobre-asignado al 120%.
// ──────────────────────────────────────────────────────────────────────────────

const testNowYear = 2024

var testNow = time.Date(testNowYear, time.January, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	users       *fakeUserRepo
	offices     *fakeOfficeRepo
	managers    *fakeManagerOfficeRepo
	employees   *fakeEmployeeRepo
	departments *fakeDepartmentRepo
	projects    *fakeProjectRepo
	assignments *fakeAssignmentRepo
	expenses    *fakeExpenseRepo
}

func nullDec(v int64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromInt(v), Valid: true}
}

func strPtr(s string) *string { return &s }

func buildFixture() fixture {
	p3End := time.Date(testNowYear, time.January, 10, 0, 0, 0, 0, time.UTC)
	empID := "e1"

	return fixture{
		users: &fakeUserRepo{users: map[string]*entity.User{
			"u-dir":   {ID: "u-dir", Role: entity.RoleDirector},
			"u-man":   {ID: "u-man", Role: entity.RoleManager},
			"u-man-0": {ID: "u-man-0", Role: entity.RoleManager},
			"u-emp":   {ID: "u-emp", Role: entity.RoleEmployee, EmployeeID: &empID},
		}},
		offices: &fakeOfficeRepo{offices: []entity.Office{
			{ID: "of-bog", Name: "Bogotá"},
			{ID: "of-mde", Name: "Medellín"},
		}},
		managers: &fakeManagerOfficeRepo{rows: []entity.ManagerOffice{
			{UserID: "u-man", OfficeID: "of-bog"},
		}},
		employees: &fakeEmployeeRepo{employees: []entity.Employee{
			{ID: "e1", OfficeID: "of-bog", DepartmentID: strPtr("d1"), FirstName: "Ana", LastName: "García", Salary: nullDec(80_000)},
			{ID: "e2", OfficeID: "of-bog", FirstName: "Carlos", LastName: "Rojas", Salary: nullDec(60_000)},
			{ID: "e3", OfficeID: "of-mde", FirstName: "Jorge", LastName: "Paredes", Salary: nullDec(50_000)},
		}},
		departments: &fakeDepartmentRepo{departments: []entity.Department{
			{ID: "d1", OfficeID: "of-bog", Name: "Desarrollo"},
		}},
		projects: &fakeProjectRepo{projects: []entity.Project{
			{ID: "p1", OfficeID: "of-bog", Status: entity.ProjectStatusActive, Budget: nullDec(100_000), StartDate: time.Date(2023, time.November, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "p2", OfficeID: "of-mde", Status: entity.ProjectStatusActive, Budget: nullDec(50_000), StartDate: time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "p3", OfficeID: "of-bog", Status: entity.ProjectStatusCompleted, Budget: nullDec(20_000), EndDate: &p3End, StartDate: time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)},
		}},
		assignments: &fakeAssignmentRepo{rows: []entity.ProjectEmployee{
			{ID: "a1", ProjectID: "p1", EmployeeID: "e1", Allocation: decimal.NewFromInt(50), Hours: nullDec(100)},
			{ID: "a2", ProjectID: "p1", EmployeeID: "e2", Allocation: decimal.NewFromInt(100)},
			{ID: "a3", ProjectID: "p2", EmployeeID: "e3", Allocation: decimal.NewFromInt(80), Hours: nullDec(200)},
			{ID: "a4", ProjectID: "p3", EmployeeID: "e1", Allocation: decimal.NewFromInt(70), Hours: nullDec(600)},
		}},
		expenses: &fakeExpenseRepo{rows: []entity.ProjectExpense{
			{ID: "x1", ProjectID: "p1", Category: "Infraestructura", MonthlyCost: decimal.NewFromInt(300), StartDate: time.Date(2023, time.November, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "x2", ProjectID: "p1", Category: "Licencias", MonthlyCost: decimal.NewFromInt(100), StartDate: time.Date(testNowYear, time.January, 10, 0, 0, 0, 0, time.UTC)},
		}},
	}
}

func (f fixture) dashboardUC() *analytics.DashboardUseCase {
	return analytics.NewDashboardUseCase(
		f.users, f.offices, f.managers, f.employees, f.departments, f.projects, f.assignments,
	)
}

func (f fixture) ledgerUC() *analytics.LedgerUseCase {
	return analytics.NewLedgerUseCase(
		f.users, f.offices, f.managers, f.employees, f.projects, f.assignments, f.expenses,
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestGetStats_DirectorAgregaTodasLasOficinas(t *testing.T) {
	f := buildFixture()

	stats, err := f.dashboardUC().GetStats(context.Background(), "u-dir", testNow)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalProjects)
	assert.Equal(t, 3, stats.TotalEmployees)
	assert.True(t, stats.AnnualBudget.Equal(decimal.NewFromInt(170_000)),
		"presupuesto anual: got %s", stats.AnnualBudget)

	// Modelo por allocation: 80k×50% + 60k×100% + 50k×80% + 80k×70%.
	assert.True(t, stats.AnnualExpenses.Equal(decimal.NewFromInt(196_000)),
		"gasto anual: got %s", stats.AnnualExpenses)
	assert.True(t, stats.AnnualProfit.Equal(decimal.NewFromInt(-26_000)),
		"la utilidad puede ser negativa: got %s", stats.AnnualProfit)
}

func TestGetStats_EstadosSiempreCompletos(t *testing.T) {
	f := buildFixture()

	stats, err := f.dashboardUC().GetStats(context.Background(), "u-dir", testNow)
	require.NoError(t, err)

	require.Len(t, stats.ProjectsByStatus, len(entity.ProjectStatuses))
	assert.Equal(t, 2, stats.ProjectsByStatus[entity.ProjectStatusActive])
	assert.Equal(t, 1, stats.ProjectsByStatus[entity.ProjectStatusCompleted])
	assert.Equal(t, 0, stats.ProjectsByStatus[entity.ProjectStatusPlanning])
	assert.Equal(t, 0, stats.ProjectsByStatus[entity.ProjectStatusOnHold])
	assert.Equal(t, 0, stats.ProjectsByStatus[entity.ProjectStatusCancelled])
}

func TestGetStats_EmpleadosSinDepartamento(t *testing.T) {
	f := buildFixture()

	stats, err := f.dashboardUC().GetStats(context.Background(), "u-dir", testNow)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.EmployeesByDepartment["Desarrollo"])
	assert.Equal(t, 2, stats.EmployeesByDepartment["Sin departamento"])
}

func TestGetStats_CompletadosEsteMes(t *testing.T) {
	f := buildFixture()

	stats, err := f.dashboardUC().GetStats(context.Background(), "u-dir", testNow)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.CompletedProjectsThisMonth, "p3 terminó el 10 del mes de corte")
}

func TestGetStats_SobreAsignacionExpuesta(t *testing.T) {
	f := buildFixture()

	stats, err := f.dashboardUC().GetStats(context.Background(), "u-dir", testNow)
	require.NoError(t, err)

	alloc, ok := stats.AllocationByEmployee["e1"]
	require.True(t, ok)
	assert.True(t, alloc.Equal(decimal.NewFromInt(120)),
		"e1 suma 50%%+70%%: got %s", alloc)
}

func TestGetStats_ManagerSoloSusOficinas(t *testing.T) {
	f := buildFixture()

	stats, err := f.dashboardUC().GetStats(context.Background(), "u-man", testNow)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalProjects, "solo p1 y p3 son de Bogotá")
	assert.Equal(t, 2, stats.TotalEmployees)
	assert.True(t, stats.AnnualBudget.Equal(decimal.NewFromInt(120_000)),
		"presupuesto de Bogotá: got %s", stats.AnnualBudget)
	assert.True(t, stats.AnnualExpenses.Equal(decimal.NewFromInt(156_000)),
		"gasto de Bogotá: got %s", stats.AnnualExpenses)
}

func TestGetStats_ManagerSinOficinasVeTodoEnCero(t *testing.T) {
	f := buildFixture()

	stats, err := f.dashboardUC().GetStats(context.Background(), "u-man-0", testNow)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalProjects)
	assert.Equal(t, 0, stats.TotalEmployees)
	assert.True(t, stats.AnnualBudget.IsZero())
	assert.True(t, stats.AnnualExpenses.IsZero())
	require.Len(t, stats.ProjectsByStatus, len(entity.ProjectStatuses),
		"la forma de la respuesta no depende del alcance")
}

func TestGetStats_UsuarioInexistente(t *testing.T) {
	f := buildFixture()

	_, err := f.dashboardUC().GetStats(context.Background(), "u-fantasma", testNow)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ledger por proyecto
// ──────────────────────────────────────────────────────────────────────────────

func TestGetLedger_CostoPorHorasRegistradas(t *testing.T) {
	f := buildFixture()

	ledger, err := f.ledgerUC().GetLedger(context.Background(), "u-dir", "p1", testNow)
	require.NoError(t, err)

	// e1: 100h × (80.000 / 2.000) = 4.000. e2 sin horas no se itemiza.
	require.Len(t, ledger.EmployeeCosts, 1)
	assert.Equal(t, "e1", ledger.EmployeeCosts[0].EmployeeID)
	assert.Equal(t, "Ana García", ledger.EmployeeCosts[0].EmployeeName)
	assert.True(t, ledger.EmployeeCosts[0].Cost.Equal(decimal.NewFromInt(4_000)),
		"costo por horas: got %s", ledger.EmployeeCosts[0].Cost)
	assert.True(t, ledger.EmployeeTotal.Equal(decimal.NewFromInt(4_000)))
}

func TestGetLedger_GastosProrrateadosPorCategoria(t *testing.T) {
	f := buildFixture()

	ledger, err := f.ledgerUC().GetLedger(context.Background(), "u-dir", "p1", testNow)
	require.NoError(t, err)

	// x1 abierto desde el inicio del proyecto (2023-11-01 → corte 75 días,
	// 3 meses): 900. x2 abrió hace 5 días: piso de 1 mes, 100.
	infra, ok := ledger.OtherExpensesByCategory["Infraestructura"]
	require.True(t, ok)
	assert.True(t, infra.Equal(decimal.NewFromInt(900)), "got %s", infra)

	lic, ok := ledger.OtherExpensesByCategory["Licencias"]
	require.True(t, ok)
	assert.True(t, lic.Equal(decimal.NewFromInt(100)), "got %s", lic)

	assert.True(t, ledger.OtherExpensesTotal.Equal(decimal.NewFromInt(1_000)))
	assert.True(t, ledger.TotalExpense.Equal(decimal.NewFromInt(5_000)))
	assert.False(t, ledger.OverBudget)
}

func TestGetLedger_SobrePresupuesto(t *testing.T) {
	f := buildFixture()

	// p3: 600h × (80.000 / 2.000) = 24.000 > presupuesto 20.000.
	ledger, err := f.ledgerUC().GetLedger(context.Background(), "u-dir", "p3", testNow)
	require.NoError(t, err)

	assert.True(t, ledger.TotalExpense.Equal(decimal.NewFromInt(24_000)),
		"got %s", ledger.TotalExpense)
	assert.True(t, ledger.OverBudget)
}

func TestGetLedger_FueraDeAlcanceEsNotFound(t *testing.T) {
	f := buildFixture()

	// u-man solo ve Bogotá; p2 es de Medellín. Indistinguible de inexistente.
	_, err := f.ledgerUC().GetLedger(context.Background(), "u-man", "p2", testNow)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetLedger_ProyectoInexistente(t *testing.T) {
	f := buildFixture()

	_, err := f.ledgerUC().GetLedger(context.Background(), "u-dir", "p-fantasma", testNow)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetLedger_EmpleadoVeSuOficina(t *testing.T) {
	f := buildFixture()

	// u-emp está vinculado a e1 (Bogotá): ve p1 pero no p2.
	ledger, err := f.ledgerUC().GetLedger(context.Background(), "u-emp", "p1", testNow)
	require.NoError(t, err)
	assert.Equal(t, "p1", ledger.ProjectID)

	_, err = f.ledgerUC().GetLedger(context.Background(), "u-emp", "p2", testNow)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
