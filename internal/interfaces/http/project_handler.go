package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/analytics"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
)

// ProjectHandler CRUD de proyectos y sus subrecursos: asignaciones, gastos,
// tecnologías y el ledger financiero.
type ProjectHandler struct {
	uc       *usecase.ProjectUseCase
	ledgerUC *analytics.LedgerUseCase
}

// NewProjectHandler construye el handler.
func NewProjectHandler(uc *usecase.ProjectUseCase, ledgerUC *analytics.LedgerUseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc, ledgerUC: ledgerUC}
}

// Create godoc
// @Summary      Crear proyecto
// @Tags         projects
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.ProjectResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener proyecto
// @Tags         projects
// @Produce      json
// @Param        id  path  string  true  "ID del proyecto"
// @Success      200  {object}  dto.ProjectResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proyecto no encontrado"})
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado del proyecto
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "ID del proyecto"
// @Success      200  {object}  dto.ProjectResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/status [put]
func (h *ProjectHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateProjectStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStatus(c.Params("id"), in, time.Now())
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proyecto no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar proyectos
// @Tags         projects
// @Produce      json
// @Success      200  {object}  dto.ProjectListResponse
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.uc.List(page)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// GetLedger godoc
// @Summary      Ledger financiero del proyecto
// @Description  Desglose itemizado: costos de personal por horas registradas y
// @Description  otros gastos prorrateados por categoría, con alerta de sobrecosto.
// @Tags         projects
// @Produce      json
// @Param        id  path  string  true  "ID del proyecto"
// @Success      200  {object}  dto.ProjectLedgerDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/ledger [get]
func (h *ProjectHandler) GetLedger(c *fiber.Ctx) error {
	out, err := h.ledgerUC.GetLedger(c.Context(), GetUserID(c), c.Params("id"), time.Now())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// AssignEmployee godoc
// @Summary      Asignar empleado al proyecto
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "ID del proyecto"
// @Success      201  {object}  dto.AssignmentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/assignments [post]
func (h *ProjectHandler) AssignEmployee(c *fiber.Ctx) error {
	var in dto.CreateAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AssignEmployee(c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListAssignments godoc
// @Summary      Asignaciones del proyecto
// @Tags         projects
// @Produce      json
// @Param        id  path  string  true  "ID del proyecto"
// @Success      200  {array}  dto.AssignmentResponse
// @Router       /api/projects/{id}/assignments [get]
func (h *ProjectHandler) ListAssignments(c *fiber.Ctx) error {
	out, err := h.uc.ListAssignments(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// AddExpense godoc
// @Summary      Registrar gasto recurrente
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "ID del proyecto"
// @Success      201  {object}  dto.ExpenseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/expenses [post]
func (h *ProjectHandler) AddExpense(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddExpense(c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListExpenses godoc
// @Summary      Gastos del proyecto
// @Tags         projects
// @Produce      json
// @Param        id  path  string  true  "ID del proyecto"
// @Success      200  {array}  dto.ExpenseResponse
// @Router       /api/projects/{id}/expenses [get]
func (h *ProjectHandler) ListExpenses(c *fiber.Ctx) error {
	out, err := h.uc.ListExpenses(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// RemoveExpense godoc
// @Summary      Eliminar gasto
// @Tags         projects
// @Param        id         path  string  true  "ID del proyecto"
// @Param        expenseId  path  string  true  "ID del gasto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/expenses/{expenseId} [delete]
func (h *ProjectHandler) RemoveExpense(c *fiber.Ctx) error {
	if err := h.uc.RemoveExpense(c.Params("id"), c.Params("expenseId")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AttachTechnology godoc
// @Summary      Asociar tecnología al proyecto
// @Tags         projects
// @Param        id      path  string  true  "ID del proyecto"
// @Param        techId  path  string  true  "ID de la tecnología"
// @Success      204
// @Router       /api/projects/{id}/technologies/{techId} [post]
func (h *ProjectHandler) AttachTechnology(c *fiber.Ctx) error {
	if err := h.uc.AttachTechnology(c.Params("id"), c.Params("techId")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListTechnologies godoc
// @Summary      Tecnologías del proyecto
// @Tags         projects
// @Produce      json
// @Param        id  path  string  true  "ID del proyecto"
// @Success      200  {array}  dto.TechnologyResponse
// @Router       /api/projects/{id}/technologies [get]
func (h *ProjectHandler) ListTechnologies(c *fiber.Ctx) error {
	out, err := h.uc.ListTechnologies(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
