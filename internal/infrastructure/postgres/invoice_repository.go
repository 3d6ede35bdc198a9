package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL.
type InvoiceRepo struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository construye el adaptador de persistencia para facturas.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool}
}

const invoiceColumns = `id, project_id, number, issue_date, amount, status, notes, created_at, updated_at`

// Create persiste una factura.
func (r *InvoiceRepo) Create(inv *entity.Invoice) error {
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		inv.ID, inv.ProjectID, inv.Number, inv.IssueDate, inv.Amount, inv.Status, inv.Notes,
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.ProjectID, &inv.Number, &inv.IssueDate, &inv.Amount, &inv.Status, &inv.Notes,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice by id: %w", err)
	}
	return &inv, nil
}

// ListByProject facturas de un proyecto, más recientes primero.
func (r *InvoiceRepo) ListByProject(projectID string) ([]entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE project_id = $1 ORDER BY issue_date DESC`
	rows, err := r.pool.Query(context.Background(), query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.ProjectID, &inv.Number, &inv.IssueDate, &inv.Amount, &inv.Status, &inv.Notes,
			&inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// CountByYear facturas emitidas en el año dado (consecutivo anual).
func (r *InvoiceRepo) CountByYear(year int) (int, error) {
	var count int
	err := r.pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM invoices WHERE EXTRACT(YEAR FROM issue_date) = $1`, year,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count invoices by year: %w", err)
	}
	return count, nil
}
