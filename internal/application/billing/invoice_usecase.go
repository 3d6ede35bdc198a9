// Package billing emite facturas contra proyectos y genera su representación
// gráfica en PDF. El monto de una factura sale del ledger del proyecto salvo
// que el emisor lo fije manualmente.
package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// InvoiceUseCase emisión y consulta de facturas de proyecto.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	projectRepo repository.ProjectRepository
	ledger      LedgerSource
	generator   InvoicePDFGenerator
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	projectRepo repository.ProjectRepository,
	ledger LedgerSource,
	generator InvoicePDFGenerator,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoiceRepo: invoiceRepo,
		projectRepo: projectRepo,
		ledger:      ledger,
		generator:   generator,
	}
}

// CreateInvoice emite una factura contra un proyecto. El número es un
// consecutivo anual (FAC-AAAA-NNNN). Si el monto no viene en la petición se
// toma del total del ledger; el ledger ya aplica el alcance del usuario, así
// que un proyecto fuera de alcance se reporta como inexistente.
func (uc *InvoiceUseCase) CreateInvoice(ctx context.Context, userID string, in dto.CreateInvoiceRequest, now time.Time) (*dto.InvoiceResponse, error) {
	if in.ProjectID == "" {
		return nil, fmt.Errorf("%w: el proyecto es obligatorio", domain.ErrInvalidInput)
	}
	ledger, err := uc.ledger.GetLedger(ctx, userID, in.ProjectID, now)
	if err != nil {
		return nil, err
	}

	amount := ledger.TotalExpense
	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: el monto no puede ser negativo", domain.ErrInvalidInput)
		}
		amount = *in.Amount
	}

	count, err := uc.invoiceRepo.CountByYear(now.Year())
	if err != nil {
		return nil, fmt.Errorf("billing: consecutivo anual: %w", err)
	}

	inv := &entity.Invoice{
		ID:        uuid.New().String(),
		ProjectID: in.ProjectID,
		Number:    fmt.Sprintf("FAC-%d-%04d", now.Year(), count+1),
		IssueDate: now,
		Amount:    amount,
		Status:    entity.InvoiceStatusDraft,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.invoiceRepo.Create(inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// ListByProject facturas emitidas contra un proyecto.
func (uc *InvoiceUseCase) ListByProject(projectID string) (*dto.InvoiceListResponse, error) {
	list, err := uc.invoiceRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	out := &dto.InvoiceListResponse{Items: make([]dto.InvoiceResponse, 0, len(list))}
	for i := range list {
		out.Items = append(out.Items, *toInvoiceResponse(&list[i]))
	}
	return out, nil
}

// DownloadInvoicePDF genera el PDF de una factura con el ledger vigente del
// proyecto como detalle itemizado.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura o el proyecto no existen o
//     están fuera del alcance del usuario.
func (uc *InvoiceUseCase) DownloadInvoicePDF(ctx context.Context, userID, invoiceID string, now time.Time) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	// El ledger valida el alcance: un usuario sin acceso al proyecto tampoco
	// puede descargar sus facturas.
	ledger, err := uc.ledger.GetLedger(ctx, userID, inv.ProjectID, now)
	if err != nil {
		return nil, "", err
	}
	project, err := uc.projectRepo.GetByID(inv.ProjectID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener proyecto: %w", err)
	}
	if project == nil {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, project, ledger)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("factura_%s.pdf", inv.Number), nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:        inv.ID,
		ProjectID: inv.ProjectID,
		Number:    inv.Number,
		IssueDate: inv.IssueDate.Format("2006-01-02"),
		Amount:    inv.Amount.Round(2),
		Status:    inv.Status,
		Notes:     inv.Notes,
	}
}
