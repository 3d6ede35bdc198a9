package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// OfficeUseCase casos de uso de oficinas, departamentos y asignación de
// oficinas a managers.
type OfficeUseCase struct {
	officeRepo        repository.OfficeRepository
	departmentRepo    repository.DepartmentRepository
	managerOfficeRepo repository.ManagerOfficeRepository
	userRepo          repository.UserRepository
}

// NewOfficeUseCase construye el caso de uso.
func NewOfficeUseCase(
	officeRepo repository.OfficeRepository,
	departmentRepo repository.DepartmentRepository,
	managerOfficeRepo repository.ManagerOfficeRepository,
	userRepo repository.UserRepository,
) *OfficeUseCase {
	return &OfficeUseCase{
		officeRepo:        officeRepo,
		departmentRepo:    departmentRepo,
		managerOfficeRepo: managerOfficeRepo,
		userRepo:          userRepo,
	}
}

// Create crea una oficina.
func (uc *OfficeUseCase) Create(in dto.CreateOfficeRequest) (*dto.OfficeResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: el nombre de la oficina es obligatorio", domain.ErrInvalidInput)
	}
	now := time.Now()
	office := &entity.Office{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Country:   in.Country,
		Timezone:  in.Timezone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.officeRepo.Create(office); err != nil {
		return nil, err
	}
	return toOfficeResponse(office), nil
}

// GetByID obtiene una oficina por ID.
func (uc *OfficeUseCase) GetByID(id string) (*dto.OfficeResponse, error) {
	office, err := uc.officeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if office == nil {
		return nil, nil
	}
	return toOfficeResponse(office), nil
}

// List lista todas las oficinas.
func (uc *OfficeUseCase) List() (*dto.OfficeListResponse, error) {
	offices, err := uc.officeRepo.ListAll()
	if err != nil {
		return nil, err
	}
	out := &dto.OfficeListResponse{Items: make([]dto.OfficeResponse, 0, len(offices))}
	for i := range offices {
		out.Items = append(out.Items, *toOfficeResponse(&offices[i]))
	}
	return out, nil
}

// AssignManager asigna una oficina a un usuario con rol MANAGER. Solo los
// managers llevan asignaciones explícitas; para los demás roles la fila no
// tendría efecto y se rechaza.
func (uc *OfficeUseCase) AssignManager(in dto.AssignManagerRequest) error {
	user, err := uc.userRepo.GetByID(in.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if user.Role != entity.RoleManager {
		return fmt.Errorf("%w: solo un usuario MANAGER puede recibir oficinas", domain.ErrInvalidInput)
	}
	office, err := uc.officeRepo.GetByID(in.OfficeID)
	if err != nil {
		return err
	}
	if office == nil {
		return domain.ErrNotFound
	}
	existing, err := uc.managerOfficeRepo.ListByUser(in.UserID)
	if err != nil {
		return err
	}
	for _, mo := range existing {
		if mo.OfficeID == in.OfficeID {
			return domain.ErrDuplicate
		}
	}
	return uc.managerOfficeRepo.Assign(&entity.ManagerOffice{
		ID:        uuid.New().String(),
		UserID:    in.UserID,
		OfficeID:  in.OfficeID,
		CreatedAt: time.Now(),
	})
}

// RemoveManager retira una oficina de un manager.
func (uc *OfficeUseCase) RemoveManager(userID, officeID string) error {
	return uc.managerOfficeRepo.Remove(userID, officeID)
}

// CreateDepartment crea un departamento dentro de una oficina existente.
func (uc *OfficeUseCase) CreateDepartment(in dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: el nombre del departamento es obligatorio", domain.ErrInvalidInput)
	}
	office, err := uc.officeRepo.GetByID(in.OfficeID)
	if err != nil {
		return nil, err
	}
	if office == nil {
		return nil, fmt.Errorf("%w: la oficina no existe", domain.ErrInvalidInput)
	}
	now := time.Now()
	dept := &entity.Department{
		ID:        uuid.New().String(),
		OfficeID:  in.OfficeID,
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.departmentRepo.Create(dept); err != nil {
		return nil, err
	}
	return toDepartmentResponse(dept), nil
}

// ListDepartments lista los departamentos de una oficina, o todos si officeID
// viene vacío.
func (uc *OfficeUseCase) ListDepartments(officeID string) (*dto.DepartmentListResponse, error) {
	var (
		depts []entity.Department
		err   error
	)
	if officeID == "" {
		depts, err = uc.departmentRepo.ListAll()
	} else {
		depts, err = uc.departmentRepo.ListByOffice(officeID)
	}
	if err != nil {
		return nil, err
	}
	out := &dto.DepartmentListResponse{Items: make([]dto.DepartmentResponse, 0, len(depts))}
	for i := range depts {
		out.Items = append(out.Items, *toDepartmentResponse(&depts[i]))
	}
	return out, nil
}

func toOfficeResponse(o *entity.Office) *dto.OfficeResponse {
	return &dto.OfficeResponse{
		ID:        o.ID,
		Name:      o.Name,
		Country:   o.Country,
		Timezone:  o.Timezone,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func toDepartmentResponse(d *entity.Department) *dto.DepartmentResponse {
	return &dto.DepartmentResponse{
		ID:        d.ID,
		OfficeID:  d.OfficeID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
	}
}
