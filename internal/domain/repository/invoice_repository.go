package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// InvoiceRepository puerto de persistencia para facturas de proyecto.
type InvoiceRepository interface {
	Create(inv *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	ListByProject(projectID string) ([]entity.Invoice, error)
	// CountByYear facturas emitidas en el año dado; alimenta el consecutivo
	// del número de factura.
	CountByYear(year int) (int, error)
}
