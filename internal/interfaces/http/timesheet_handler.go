package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	appschedule "github.com/jhoicas/Gestion-api/internal/application/schedule"
)

// TimesheetHandler calendario de horas del empleado del token: vistas de
// semana y mes, alta de entradas y copiar/pegar días.
type TimesheetHandler struct {
	uc *appschedule.TimesheetUseCase
}

// NewTimesheetHandler construye el handler.
func NewTimesheetHandler(uc *appschedule.TimesheetUseCase) *TimesheetHandler {
	return &TimesheetHandler{uc: uc}
}

// requireEmployee obtiene el employee_id del token; los usuarios sin registro
// de empleado no tienen calendario.
func requireEmployee(c *fiber.Ctx) (string, bool) {
	employeeID := GetEmployeeID(c)
	if employeeID == "" {
		_ = c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "NO_EMPLOYEE",
			Message: "el usuario no está enlazado a un empleado",
		})
		return "", false
	}
	return employeeID, true
}

// GetWeek godoc
// @Summary      Grilla semanal de horas
// @Tags         timesheet
// @Produce      json
// @Param        date  query  string  true  "fecha ancla YYYY-MM-DD"
// @Success      200  {object}  dto.WeekGridDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/timesheet/week [get]
func (h *TimesheetHandler) GetWeek(c *fiber.Ctx) error {
	employeeID, ok := requireEmployee(c)
	if !ok {
		return nil
	}
	out, err := h.uc.GetWeek(employeeID, c.Query("date"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// GetMonth godoc
// @Summary      Grilla mensual de horas
// @Tags         timesheet
// @Produce      json
// @Param        date  query  string  true  "fecha ancla YYYY-MM-DD"
// @Success      200  {object}  dto.MonthMatrixDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/timesheet/month [get]
func (h *TimesheetHandler) GetMonth(c *fiber.Ctx) error {
	employeeID, ok := requireEmployee(c)
	if !ok {
		return nil
	}
	out, err := h.uc.GetMonth(employeeID, c.Query("date"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// CreateEntry godoc
// @Summary      Registrar horas
// @Tags         timesheet
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.TimeEntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/timesheet/entries [post]
func (h *TimesheetHandler) CreateEntry(c *fiber.Ctx) error {
	employeeID, ok := requireEmployee(c)
	if !ok {
		return nil
	}
	var in dto.CreateTimeEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateEntry(employeeID, in, time.Now())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// PasteDay godoc
// @Summary      Copiar un día de horas sobre otros días
// @Description  Copia las entradas del día origen a los días destino; los pares
// @Description  (proyecto, día) ya registrados se suprimen silenciosamente y se
// @Description  reportan en el contador de suprimidos.
// @Tags         timesheet
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.PasteResultDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/timesheet/paste [post]
func (h *TimesheetHandler) PasteDay(c *fiber.Ctx) error {
	employeeID, ok := requireEmployee(c)
	if !ok {
		return nil
	}
	var in dto.PasteDayRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.PasteDay(c.Context(), employeeID, in, time.Now())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
