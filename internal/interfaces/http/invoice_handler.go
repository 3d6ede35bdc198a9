package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/billing"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
)

// InvoiceHandler emisión, listado y descarga en PDF de facturas de proyecto.
type InvoiceHandler struct {
	uc *billing.InvoiceUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Create godoc
// @Summary      Emitir factura de proyecto
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.InvoiceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateInvoice(c.Context(), GetUserID(c), in, time.Now())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByProject godoc
// @Summary      Facturas de un proyecto
// @Tags         invoices
// @Produce      json
// @Param        projectId  path  string  true  "ID del proyecto"
// @Success      200  {object}  dto.InvoiceListResponse
// @Router       /api/projects/{projectId}/invoices [get]
func (h *InvoiceHandler) ListByProject(c *fiber.Ctx) error {
	out, err := h.uc.ListByProject(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Descargar factura en PDF
// @Tags         invoices
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.DownloadInvoicePDF(c.Context(), GetUserID(c), c.Params("id"), time.Now())
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
