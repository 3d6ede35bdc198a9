package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/finance"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// DashboardUseCase genera los KPIs del dashboard para el alcance de oficinas
// del usuario autenticado.
//
// El gasto anual usa el modelo por allocation (nivel portafolio); el ledger
// por proyecto (LedgerUseCase) usa el modelo por horas. No conflarlos.
type DashboardUseCase struct {
	scopes       scopeResolver
	projectRepo  repository.ProjectRepository
	employeeRepo repository.EmployeeRepository
	deptRepo     repository.DepartmentRepository
	assignRepo   repository.AssignmentRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	userRepo repository.UserRepository,
	officeRepo repository.OfficeRepository,
	managerOfficeRepo repository.ManagerOfficeRepository,
	employeeRepo repository.EmployeeRepository,
	deptRepo repository.DepartmentRepository,
	projectRepo repository.ProjectRepository,
	assignRepo repository.AssignmentRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		scopes: scopeResolver{
			userRepo:          userRepo,
			officeRepo:        officeRepo,
			managerOfficeRepo: managerOfficeRepo,
			employeeRepo:      employeeRepo,
		},
		projectRepo:  projectRepo,
		employeeRepo: employeeRepo,
		deptRepo:     deptRepo,
		assignRepo:   assignRepo,
	}
}

// GetStats resuelve el alcance del usuario, carga las colecciones y delega el
// cálculo al rollup puro de dominio. "now" viene del borde (el handler) para
// que el cálculo sea determinista en tests.
func (uc *DashboardUseCase) GetStats(_ context.Context, userID string, now time.Time) (*dto.DashboardStatsDTO, error) {
	sc, _, err := uc.scopes.resolve(userID)
	if err != nil {
		return nil, err
	}

	// ── Cargar las 4 colecciones en paralelo (llamadas independientes) ────────
	type projectsResult struct {
		rows []entity.Project
		err  error
	}
	type employeesResult struct {
		rows []entity.Employee
		err  error
	}
	type deptsResult struct {
		rows []entity.Department
		err  error
	}
	type assignsResult struct {
		rows []entity.ProjectEmployee
		err  error
	}

	projCh := make(chan projectsResult, 1)
	empCh := make(chan employeesResult, 1)
	deptCh := make(chan deptsResult, 1)
	asgCh := make(chan assignsResult, 1)

	go func() {
		rows, err := uc.projectRepo.ListAll()
		projCh <- projectsResult{rows, err}
	}()
	go func() {
		rows, err := uc.employeeRepo.ListAll()
		empCh <- employeesResult{rows, err}
	}()
	go func() {
		rows, err := uc.deptRepo.ListAll()
		deptCh <- deptsResult{rows, err}
	}()
	go func() {
		rows, err := uc.assignRepo.ListAll()
		asgCh <- assignsResult{rows, err}
	}()

	projects := <-projCh
	employees := <-empCh
	depts := <-deptCh
	assigns := <-asgCh

	if projects.err != nil {
		return nil, fmt.Errorf("dashboard: proyectos: %w", projects.err)
	}
	if employees.err != nil {
		return nil, fmt.Errorf("dashboard: empleados: %w", employees.err)
	}
	if depts.err != nil {
		return nil, fmt.Errorf("dashboard: departamentos: %w", depts.err)
	}
	if assigns.err != nil {
		return nil, fmt.Errorf("dashboard: asignaciones: %w", assigns.err)
	}

	// Join inmutable asignación+empleado, una sola vez, antes del agregado.
	views := finance.JoinAssignments(assigns.rows, employees.rows)

	stats := finance.ComputeDashboardStats(sc, projects.rows, employees.rows, depts.rows, views, now)

	return &dto.DashboardStatsDTO{
		AnnualBudget:               stats.AnnualBudget.Round(2),
		AnnualExpenses:             stats.AnnualExpenses.Round(2),
		AnnualProfit:               stats.AnnualProfit.Round(2),
		TotalProjects:              stats.TotalProjects,
		TotalEmployees:             stats.TotalEmployees,
		ProjectsByStatus:           stats.ProjectsByStatus,
		EmployeesByDepartment:      stats.EmployeesByDepartment,
		CompletedProjectsThisMonth: stats.CompletedProjectsThisMonth,
		AllocationByEmployee:       stats.AllocationByEmployee,
	}, nil
}
