package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

const projectDateLayout = "2006-01-02"

// transiciones válidas de estado de proyecto. COMPLETED y CANCELLED son
// terminales.
var projectTransitions = map[string][]string{
	entity.ProjectStatusPlanning:  {entity.ProjectStatusActive, entity.ProjectStatusCancelled},
	entity.ProjectStatusActive:    {entity.ProjectStatusOnHold, entity.ProjectStatusCompleted, entity.ProjectStatusCancelled},
	entity.ProjectStatusOnHold:    {entity.ProjectStatusActive, entity.ProjectStatusCancelled},
	entity.ProjectStatusCompleted: {},
	entity.ProjectStatusCancelled: {},
}

var maxAllocation = decimal.NewFromInt(100)

// ProjectUseCase casos de uso CRUD para proyectos y sus subrecursos:
// asignaciones de empleados, gastos recurrentes y tecnologías.
type ProjectUseCase struct {
	repo           repository.ProjectRepository
	officeRepo     repository.OfficeRepository
	employeeRepo   repository.EmployeeRepository
	assignmentRepo repository.AssignmentRepository
	expenseRepo    repository.ExpenseRepository
	technologyRepo repository.TechnologyRepository
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(
	repo repository.ProjectRepository,
	officeRepo repository.OfficeRepository,
	employeeRepo repository.EmployeeRepository,
	assignmentRepo repository.AssignmentRepository,
	expenseRepo repository.ExpenseRepository,
	technologyRepo repository.TechnologyRepository,
) *ProjectUseCase {
	return &ProjectUseCase{
		repo:           repo,
		officeRepo:     officeRepo,
		employeeRepo:   employeeRepo,
		assignmentRepo: assignmentRepo,
		expenseRepo:    expenseRepo,
		technologyRepo: technologyRepo,
	}
}

// Create crea un proyecto. El estado inicial por defecto es PLANNING.
func (uc *ProjectUseCase) Create(in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: el nombre del proyecto es obligatorio", domain.ErrInvalidInput)
	}
	office, err := uc.officeRepo.GetByID(in.OfficeID)
	if err != nil {
		return nil, err
	}
	if office == nil {
		return nil, fmt.Errorf("%w: la oficina principal no existe", domain.ErrInvalidInput)
	}
	status := in.Status
	if status == "" {
		status = entity.ProjectStatusPlanning
	}
	if !validProjectStatus(status) {
		return nil, fmt.Errorf("%w: estado de proyecto desconocido %q", domain.ErrInvalidInput, in.Status)
	}
	startDate, err := time.Parse(projectDateLayout, in.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha de inicio inválida %q", domain.ErrInvalidInput, in.StartDate)
	}
	endDate, err := parseOptionalDate(in.EndDate)
	if err != nil {
		return nil, err
	}
	if endDate != nil && endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: la fecha de fin es anterior al inicio", domain.ErrInvalidInput)
	}
	budget := decimal.NullDecimal{}
	if in.Budget != nil {
		if in.Budget.IsNegative() {
			return nil, fmt.Errorf("%w: el presupuesto no puede ser negativo", domain.ErrInvalidInput)
		}
		budget = decimal.NewNullDecimal(*in.Budget)
	}
	now := time.Now()
	project := &entity.Project{
		ID:         uuid.New().String(),
		OfficeID:   in.OfficeID,
		OfficeIDs:  in.OfficeIDs,
		Name:       in.Name,
		Status:     status,
		StartDate:  startDate,
		EndDate:    endDate,
		Budget:     budget,
		IsInternal: in.IsInternal,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// GetByID obtiene un proyecto por ID.
func (uc *ProjectUseCase) GetByID(id string) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, nil
	}
	return toProjectResponse(project), nil
}

// UpdateStatus aplica una transición de estado. Al pasar a COMPLETED o
// CANCELLED se fija la fecha de fin (la indicada o la fecha actual).
func (uc *ProjectUseCase) UpdateStatus(id string, in dto.UpdateProjectStatusRequest, now time.Time) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, nil
	}
	allowed, ok := projectTransitions[project.Status]
	if !ok {
		return nil, fmt.Errorf("%w: estado actual desconocido %q", domain.ErrConflict, project.Status)
	}
	valid := false
	for _, s := range allowed {
		if s == in.Status {
			valid = true
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("%w: transición %s → %s no permitida", domain.ErrConflict, project.Status, in.Status)
	}
	project.Status = in.Status
	if in.Status == entity.ProjectStatusCompleted || in.Status == entity.ProjectStatusCancelled {
		endDate, err := parseOptionalDate(in.EndDate)
		if err != nil {
			return nil, err
		}
		if endDate == nil {
			endDate = &now
		}
		project.EndDate = endDate
	}
	project.UpdatedAt = now
	if err := uc.repo.Update(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// List lista proyectos con paginación.
func (uc *ProjectUseCase) List(page dto.PageRequest) (*dto.ProjectListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ProjectListResponse{
		Items: make([]dto.ProjectResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for i := range list {
		out.Items = append(out.Items, *toProjectResponse(&list[i]))
	}
	return out, nil
}

// ── asignaciones ──────────────────────────────────────────────────────────────

// AssignEmployee asigna un empleado al proyecto con un porcentaje de
// dedicación en (0, 100]. Las asignaciones solapadas del mismo empleado entre
// proyectos son legales; el dashboard expone la sobreasignación total.
func (uc *ProjectUseCase) AssignEmployee(projectID string, in dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	project, err := uc.repo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	emp, err := uc.employeeRepo.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, fmt.Errorf("%w: el empleado no existe", domain.ErrInvalidInput)
	}
	if !in.Allocation.IsPositive() || in.Allocation.GreaterThan(maxAllocation) {
		return nil, fmt.Errorf("%w: la dedicación debe estar entre 0 y 100", domain.ErrInvalidInput)
	}
	startDate, err := time.Parse(projectDateLayout, in.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha de inicio inválida %q", domain.ErrInvalidInput, in.StartDate)
	}
	endDate, err := parseOptionalDate(in.EndDate)
	if err != nil {
		return nil, err
	}
	hours := decimal.NullDecimal{}
	if in.Hours != nil {
		if in.Hours.IsNegative() {
			return nil, fmt.Errorf("%w: las horas no pueden ser negativas", domain.ErrInvalidInput)
		}
		hours = decimal.NewNullDecimal(*in.Hours)
	}
	now := time.Now()
	assignment := &entity.ProjectEmployee{
		ID:         uuid.New().String(),
		ProjectID:  projectID,
		EmployeeID: in.EmployeeID,
		Allocation: in.Allocation,
		StartDate:  startDate,
		EndDate:    endDate,
		Hours:      hours,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.assignmentRepo.Create(assignment); err != nil {
		return nil, err
	}
	return toAssignmentResponse(assignment), nil
}

// ListAssignments asignaciones de un proyecto.
func (uc *ProjectUseCase) ListAssignments(projectID string) ([]dto.AssignmentResponse, error) {
	list, err := uc.assignmentRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AssignmentResponse, 0, len(list))
	for i := range list {
		out = append(out, *toAssignmentResponse(&list[i]))
	}
	return out, nil
}

// ── gastos ────────────────────────────────────────────────────────────────────

// AddExpense registra un gasto recurrente mensual del proyecto.
func (uc *ProjectUseCase) AddExpense(projectID string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	project, err := uc.repo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	if in.Category == "" {
		return nil, fmt.Errorf("%w: la categoría del gasto es obligatoria", domain.ErrInvalidInput)
	}
	if in.MonthlyCost.IsNegative() {
		return nil, fmt.Errorf("%w: el costo mensual no puede ser negativo", domain.ErrInvalidInput)
	}
	startDate, err := time.Parse(projectDateLayout, in.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha de inicio inválida %q", domain.ErrInvalidInput, in.StartDate)
	}
	endDate, err := parseOptionalDate(in.EndDate)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	expense := &entity.ProjectExpense{
		ID:          uuid.New().String(),
		ProjectID:   projectID,
		Category:    in.Category,
		Description: in.Description,
		MonthlyCost: in.MonthlyCost,
		StartDate:   startDate,
		EndDate:     endDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// ListExpenses gastos de un proyecto.
func (uc *ProjectUseCase) ListExpenses(projectID string) ([]dto.ExpenseResponse, error) {
	list, err := uc.expenseRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(list))
	for i := range list {
		out = append(out, *toExpenseResponse(&list[i]))
	}
	return out, nil
}

// RemoveExpense elimina un gasto. Solo se valida que pertenezca al proyecto.
func (uc *ProjectUseCase) RemoveExpense(projectID, expenseID string) error {
	expense, err := uc.expenseRepo.GetByID(expenseID)
	if err != nil {
		return err
	}
	if expense == nil || expense.ProjectID != projectID {
		return domain.ErrNotFound
	}
	return uc.expenseRepo.Delete(expenseID)
}

// ── tecnologías ───────────────────────────────────────────────────────────────

// AttachTechnology asocia una tecnología del catálogo al proyecto.
func (uc *ProjectUseCase) AttachTechnology(projectID, technologyID string) error {
	project, err := uc.repo.GetByID(projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.ErrNotFound
	}
	return uc.technologyRepo.Attach(projectID, technologyID)
}

// ListTechnologies tecnologías asociadas a un proyecto.
func (uc *ProjectUseCase) ListTechnologies(projectID string) ([]dto.TechnologyResponse, error) {
	list, err := uc.technologyRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TechnologyResponse, 0, len(list))
	for _, t := range list {
		out = append(out, dto.TechnologyResponse{ID: t.ID, Name: t.Name, Category: t.Category})
	}
	return out, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func validProjectStatus(s string) bool {
	for _, v := range entity.ProjectStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(projectDateLayout, *s)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha inválida %q", domain.ErrInvalidInput, *s)
	}
	return &t, nil
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	resp := &dto.ProjectResponse{
		ID:         p.ID,
		OfficeID:   p.OfficeID,
		OfficeIDs:  p.OfficeIDs,
		Name:       p.Name,
		Status:     p.Status,
		StartDate:  p.StartDate.Format(projectDateLayout),
		IsInternal: p.IsInternal,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	if p.EndDate != nil {
		s := p.EndDate.Format(projectDateLayout)
		resp.EndDate = &s
	}
	if p.Budget.Valid {
		b := p.Budget.Decimal
		resp.Budget = &b
	}
	return resp
}

func toAssignmentResponse(a *entity.ProjectEmployee) *dto.AssignmentResponse {
	resp := &dto.AssignmentResponse{
		ID:         a.ID,
		ProjectID:  a.ProjectID,
		EmployeeID: a.EmployeeID,
		Allocation: a.Allocation,
		StartDate:  a.StartDate.Format(projectDateLayout),
	}
	if a.EndDate != nil {
		s := a.EndDate.Format(projectDateLayout)
		resp.EndDate = &s
	}
	if a.Hours.Valid {
		h := a.Hours.Decimal
		resp.Hours = &h
	}
	return resp
}

func toExpenseResponse(e *entity.ProjectExpense) *dto.ExpenseResponse {
	resp := &dto.ExpenseResponse{
		ID:          e.ID,
		ProjectID:   e.ProjectID,
		Category:    e.Category,
		Description: e.Description,
		MonthlyCost: e.MonthlyCost,
		StartDate:   e.StartDate.Format(projectDateLayout),
	}
	if e.EndDate != nil {
		s := e.EndDate.Format(projectDateLayout)
		resp.EndDate = &s
	}
	return resp
}
