package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/finance"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// LedgerUseCase construye el desglose financiero itemizado de un proyecto
// (costos de empleados por horas registradas + gastos prorrateados).
type LedgerUseCase struct {
	scopes       scopeResolver
	projectRepo  repository.ProjectRepository
	assignRepo   repository.AssignmentRepository
	employeeRepo repository.EmployeeRepository
	expenseRepo  repository.ExpenseRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	userRepo repository.UserRepository,
	officeRepo repository.OfficeRepository,
	managerOfficeRepo repository.ManagerOfficeRepository,
	employeeRepo repository.EmployeeRepository,
	projectRepo repository.ProjectRepository,
	assignRepo repository.AssignmentRepository,
	expenseRepo repository.ExpenseRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		scopes: scopeResolver{
			userRepo:          userRepo,
			officeRepo:        officeRepo,
			managerOfficeRepo: managerOfficeRepo,
			employeeRepo:      employeeRepo,
		},
		projectRepo:  projectRepo,
		assignRepo:   assignRepo,
		employeeRepo: employeeRepo,
		expenseRepo:  expenseRepo,
	}
}

// GetLedger devuelve el ledger del proyecto si la oficina del proyecto cae
// dentro del alcance del usuario; fuera de alcance es indistinguible de
// inexistente (ErrNotFound, no ErrForbidden — no filtramos existencia).
func (uc *LedgerUseCase) GetLedger(_ context.Context, userID, projectID string, now time.Time) (*dto.ProjectLedgerDTO, error) {
	sc, _, err := uc.scopes.resolve(userID)
	if err != nil {
		return nil, err
	}

	project, err := uc.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("ledger: cargar proyecto: %w", err)
	}
	if project == nil || !sc.Contains(project.OfficeID) {
		return nil, domain.ErrNotFound
	}

	assignments, err := uc.assignRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("ledger: asignaciones: %w", err)
	}
	expenses, err := uc.expenseRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("ledger: gastos: %w", err)
	}

	// Cargar solo los empleados referenciados por las asignaciones.
	employees := make([]entity.Employee, 0, len(assignments))
	seen := make(map[string]struct{}, len(assignments))
	for _, a := range assignments {
		if _, ok := seen[a.EmployeeID]; ok {
			continue
		}
		seen[a.EmployeeID] = struct{}{}
		emp, err := uc.employeeRepo.GetByID(a.EmployeeID)
		if err != nil {
			return nil, fmt.Errorf("ledger: empleado %s: %w", a.EmployeeID, err)
		}
		if emp != nil {
			employees = append(employees, *emp)
		}
	}

	views := finance.JoinAssignments(assignments, employees)
	ledger := finance.BuildProjectLedger(project, views, expenses, now)

	return toLedgerDTO(ledger), nil
}

func toLedgerDTO(l finance.ProjectLedger) *dto.ProjectLedgerDTO {
	out := &dto.ProjectLedgerDTO{
		ProjectID:               l.ProjectID,
		EmployeeCosts:           make([]dto.LedgerEmployeeCostDTO, 0, len(l.EmployeeCosts)),
		EmployeeTotal:           l.EmployeeTotal.Round(2),
		OtherExpensesByCategory: make(map[string]decimal.Decimal, len(l.OtherExpensesByCategory)),
		OtherExpensesTotal:      l.OtherExpensesTotal.Round(2),
		TotalExpense:            l.TotalExpense.Round(2),
		OverBudget:              l.OverBudget,
	}
	for _, c := range l.EmployeeCosts {
		out.EmployeeCosts = append(out.EmployeeCosts, dto.LedgerEmployeeCostDTO{
			EmployeeID:   c.EmployeeID,
			EmployeeName: c.EmployeeName,
			Hours:        c.Hours,
			Cost:         c.Cost.Round(2),
		})
	}
	for cat, total := range l.OtherExpensesByCategory {
		out.OtherExpensesByCategory[cat] = total.Round(2)
	}
	if l.Budget.Valid {
		b := l.Budget.Decimal
		out.Budget = &b
	}
	return out
}
