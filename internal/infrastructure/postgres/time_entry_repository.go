package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.TimeEntryRepository = (*TimeEntryRepo)(nil)

// TimeEntryRepo implementación del puerto TimeEntryRepository sobre PostgreSQL.
type TimeEntryRepo struct {
	pool *pgxpool.Pool
}

// NewTimeEntryRepository construye el adaptador de persistencia para entradas de horas.
func NewTimeEntryRepository(pool *pgxpool.Pool) *TimeEntryRepo {
	return &TimeEntryRepo{pool: pool}
}

const timeEntryColumns = `id, employee_id, project_id, entry_date, hours, description, created_at, updated_at`

// Create persiste una entrada de horas.
func (r *TimeEntryRepo) Create(e *entity.TimeEntry) error {
	query := `
		INSERT INTO time_entries (` + timeEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		e.ID, e.EmployeeID, e.ProjectID, e.Date, e.Hours, e.Description, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert time entry: %w", err)
	}
	return nil
}

// CreateBatch inserta las entradas de un pegado dentro de una transacción:
// o se crean todas o ninguna.
func (r *TimeEntryRepo) CreateBatch(ctx context.Context, entries []entity.TimeEntry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO time_entries (` + timeEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, e := range entries {
		if _, err := tx.Exec(ctx, query,
			e.ID, e.EmployeeID, e.ProjectID, e.Date, e.Hours, e.Description, e.CreatedAt, e.UpdatedAt,
		); err != nil {
			return fmt.Errorf("insert time entry batch: %w", err)
		}
	}
	return tx.Commit(ctx)
}

// Delete elimina una entrada.
func (r *TimeEntryRepo) Delete(id string) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM time_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByEmployeeAndRange entradas de un empleado con fecha en [from, to].
func (r *TimeEntryRepo) ListByEmployeeAndRange(employeeID string, from, to time.Time) ([]entity.TimeEntry, error) {
	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries
		WHERE employee_id = $1 AND entry_date >= $2 AND entry_date <= $3
		ORDER BY entry_date`
	rows, err := r.pool.Query(context.Background(), query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	defer rows.Close()
	var list []entity.TimeEntry
	for rows.Next() {
		var e entity.TimeEntry
		if err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.ProjectID, &e.Date, &e.Hours, &e.Description,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan time entry: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
