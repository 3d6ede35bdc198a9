package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	"github.com/jhoicas/Gestion-api/internal/domain"
)

// OfficeHandler oficinas, departamentos y asignación de managers.
type OfficeHandler struct {
	uc *usecase.OfficeUseCase
}

// NewOfficeHandler construye el handler.
func NewOfficeHandler(uc *usecase.OfficeUseCase) *OfficeHandler {
	return &OfficeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear oficina
// @Tags         offices
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.OfficeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/offices [post]
func (h *OfficeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOfficeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar oficinas
// @Tags         offices
// @Produce      json
// @Success      200  {object}  dto.OfficeListResponse
// @Router       /api/offices [get]
func (h *OfficeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener oficina
// @Tags         offices
// @Produce      json
// @Param        id  path  string  true  "ID de la oficina"
// @Success      200  {object}  dto.OfficeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/offices/{id} [get]
func (h *OfficeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "oficina no encontrada"})
	}
	return c.JSON(out)
}

// AssignManager godoc
// @Summary      Asignar oficina a un manager
// @Tags         offices
// @Accept       json
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/offices/managers [post]
func (h *OfficeHandler) AssignManager(c *fiber.Ctx) error {
	var in dto.AssignManagerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UserID == "" || in.OfficeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_id y office_id son requeridos"})
	}
	if err := h.uc.AssignManager(in); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RemoveManager godoc
// @Summary      Retirar oficina de un manager
// @Tags         offices
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/offices/managers/{userId}/{officeId} [delete]
func (h *OfficeHandler) RemoveManager(c *fiber.Ctx) error {
	if err := h.uc.RemoveManager(c.Params("userId"), c.Params("officeId")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateDepartment godoc
// @Summary      Crear departamento
// @Tags         departments
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.DepartmentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/departments [post]
func (h *OfficeHandler) CreateDepartment(c *fiber.Ctx) error {
	var in dto.CreateDepartmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateDepartment(in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListDepartments godoc
// @Summary      Listar departamentos
// @Tags         departments
// @Produce      json
// @Param        office_id  query  string  false  "filtrar por oficina"
// @Success      200  {object}  dto.DepartmentListResponse
// @Router       /api/departments [get]
func (h *OfficeHandler) ListDepartments(c *fiber.Ctx) error {
	out, err := h.uc.ListDepartments(c.Query("office_id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// mapDomainError traduce errores sentinel del dominio a códigos HTTP. Los
// handlers lo usan para no repetir la misma escalera de ifs.
func mapDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autorizado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
