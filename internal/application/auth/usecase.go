package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	employeeRepo repository.EmployeeRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, employeeRepo repository.EmployeeRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, employeeRepo: employeeRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: valida rol, hashea password con bcrypt y
// persiste. Un rol EMPLOYEE exige un registro de empleado existente; sin ese
// enlace el usuario no tendría oficina y su alcance quedaría vacío.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	role := in.Role
	if role == "" {
		role = entity.RoleEmployee
	}
	switch role {
	case entity.RoleDirector, entity.RoleManager, entity.RoleEmployee:
	default:
		return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, in.Role)
	}
	if role == entity.RoleEmployee {
		if in.EmployeeID == nil || *in.EmployeeID == "" {
			return nil, fmt.Errorf("%w: un usuario EMPLOYEE requiere employee_id", domain.ErrInvalidInput)
		}
		emp, err := uc.employeeRepo.GetByID(*in.EmployeeID)
		if err != nil {
			return nil, err
		}
		if emp == nil {
			return nil, fmt.Errorf("%w: el empleado enlazado no existe", domain.ErrInvalidInput)
		}
	}

	existing, _ := uc.userRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		EmployeeID:   in.EmployeeID,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	employeeID := ""
	if user.EmployeeID != nil {
		employeeID = *user.EmployeeID
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, employeeID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		EmployeeID: u.EmployeeID,
		Status:     u.Status,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
