package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
)

// TechnologyHandler catálogo de tecnologías.
type TechnologyHandler struct {
	uc *usecase.TechnologyUseCase
}

// NewTechnologyHandler construye el handler.
func NewTechnologyHandler(uc *usecase.TechnologyUseCase) *TechnologyHandler {
	return &TechnologyHandler{uc: uc}
}

type createTechnologyRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Create godoc
// @Summary      Agregar tecnología al catálogo
// @Tags         technologies
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.TechnologyResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/technologies [post]
func (h *TechnologyHandler) Create(c *fiber.Ctx) error {
	var in createTechnologyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in.Name, in.Category)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar catálogo de tecnologías
// @Tags         technologies
// @Produce      json
// @Success      200  {array}  dto.TechnologyResponse
// @Router       /api/technologies [get]
func (h *TechnologyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
