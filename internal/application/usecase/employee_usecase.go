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

const hireDateLayout = "2006-01-02"

// transiciones válidas del ciclo de vida de un empleado. TERMINATED es
// terminal: un empleado despedido no vuelve por esta vía.
var employeeTransitions = map[string][]string{
	entity.EmployeeStatusActive:     {entity.EmployeeStatusInactive, entity.EmployeeStatusOnLeave, entity.EmployeeStatusTerminated},
	entity.EmployeeStatusInactive:   {entity.EmployeeStatusActive, entity.EmployeeStatusTerminated},
	entity.EmployeeStatusOnLeave:    {entity.EmployeeStatusActive, entity.EmployeeStatusTerminated},
	entity.EmployeeStatusTerminated: {},
}

// EmployeeUseCase casos de uso CRUD para empleados.
type EmployeeUseCase struct {
	repo           repository.EmployeeRepository
	officeRepo     repository.OfficeRepository
	departmentRepo repository.DepartmentRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, officeRepo repository.OfficeRepository, departmentRepo repository.DepartmentRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, officeRepo: officeRepo, departmentRepo: departmentRepo}
}

// Create crea un empleado. La oficina es obligatoria; el departamento, si se
// indica, debe pertenecer a esa oficina.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.FirstName == "" || in.Email == "" {
		return nil, fmt.Errorf("%w: nombre y email son obligatorios", domain.ErrInvalidInput)
	}
	office, err := uc.officeRepo.GetByID(in.OfficeID)
	if err != nil {
		return nil, err
	}
	if office == nil {
		return nil, fmt.Errorf("%w: la oficina no existe", domain.ErrInvalidInput)
	}
	if in.DepartmentID != nil {
		dept, err := uc.departmentRepo.GetByID(*in.DepartmentID)
		if err != nil {
			return nil, err
		}
		if dept == nil {
			return nil, fmt.Errorf("%w: el departamento no existe", domain.ErrInvalidInput)
		}
		if dept.OfficeID != in.OfficeID {
			return nil, fmt.Errorf("%w: el departamento pertenece a otra oficina", domain.ErrInvalidInput)
		}
	}
	hireDate, err := time.Parse(hireDateLayout, in.HireDate)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha de ingreso inválida %q", domain.ErrInvalidInput, in.HireDate)
	}
	salary := decimal.NullDecimal{}
	if in.Salary != nil {
		if in.Salary.IsNegative() {
			return nil, fmt.Errorf("%w: el salario no puede ser negativo", domain.ErrInvalidInput)
		}
		salary = decimal.NewNullDecimal(*in.Salary)
	}
	now := time.Now()
	emp := &entity.Employee{
		ID:           uuid.New().String(),
		OfficeID:     in.OfficeID,
		DepartmentID: in.DepartmentID,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Position:     in.Position,
		Status:       entity.EmployeeStatusActive,
		Salary:       salary,
		HireDate:     hireDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(emp); err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// GetByID obtiene un empleado por ID.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, nil
	}
	return toEmployeeResponse(emp), nil
}

// UpdateStatus aplica una transición del ciclo de vida del empleado.
func (uc *EmployeeUseCase) UpdateStatus(id string, in dto.UpdateEmployeeStatusRequest) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, nil
	}
	allowed, ok := employeeTransitions[emp.Status]
	if !ok {
		return nil, fmt.Errorf("%w: estado actual desconocido %q", domain.ErrConflict, emp.Status)
	}
	valid := false
	for _, s := range allowed {
		if s == in.Status {
			valid = true
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("%w: transición %s → %s no permitida", domain.ErrConflict, emp.Status, in.Status)
	}
	emp.Status = in.Status
	emp.UpdatedAt = time.Now()
	if err := uc.repo.Update(emp); err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// List lista empleados con paginación.
func (uc *EmployeeUseCase) List(page dto.PageRequest) (*dto.EmployeeListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.EmployeeListResponse{
		Items: make([]dto.EmployeeResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for i := range list {
		out.Items = append(out.Items, *toEmployeeResponse(&list[i]))
	}
	return out, nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	resp := &dto.EmployeeResponse{
		ID:           e.ID,
		OfficeID:     e.OfficeID,
		DepartmentID: e.DepartmentID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		Position:     e.Position,
		Status:       e.Status,
		HireDate:     e.HireDate.Format(hireDateLayout),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	if e.Salary.Valid {
		s := e.Salary.Decimal
		resp.Salary = &s
	}
	return resp
}
