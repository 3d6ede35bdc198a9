package billing

import (
	"context"
	"time"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// LedgerSource expone el desglose financiero de un proyecto respetando el
// alcance de oficinas del usuario que factura.
type LedgerSource interface {
	GetLedger(ctx context.Context, userID, projectID string, now time.Time) (*dto.ProjectLedgerDTO, error)
}

// InvoicePDFGenerator genera la representación gráfica (PDF) de una factura
// con las líneas del ledger del proyecto.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, inv *entity.Invoice, project *entity.Project, ledger *dto.ProjectLedgerDTO) ([]byte, error)
}
