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

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación del puerto ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository construye el adaptador de persistencia para gastos de proyecto.
func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepo {
	return &ExpenseRepo{pool: pool}
}

const expenseColumns = `id, project_id, category, description, monthly_cost, start_date, end_date, created_at, updated_at`

// Create persiste un nuevo gasto.
func (r *ExpenseRepo) Create(e *entity.ProjectExpense) error {
	query := `
		INSERT INTO project_expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		e.ID, e.ProjectID, e.Category, e.Description, e.MonthlyCost, e.StartDate, e.EndDate,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID.
func (r *ExpenseRepo) GetByID(id string) (*entity.ProjectExpense, error) {
	query := `SELECT ` + expenseColumns + ` FROM project_expenses WHERE id = $1`
	var e entity.ProjectExpense
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.ProjectID, &e.Category, &e.Description, &e.MonthlyCost, &e.StartDate, &e.EndDate,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense by id: %w", err)
	}
	return &e, nil
}

// ListByProject gastos de un proyecto.
func (r *ExpenseRepo) ListByProject(projectID string) ([]entity.ProjectExpense, error) {
	query := `SELECT ` + expenseColumns + ` FROM project_expenses WHERE project_id = $1 ORDER BY category`
	rows, err := r.pool.Query(context.Background(), query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []entity.ProjectExpense
	for rows.Next() {
		var e entity.ProjectExpense
		if err := rows.Scan(
			&e.ID, &e.ProjectID, &e.Category, &e.Description, &e.MonthlyCost, &e.StartDate, &e.EndDate,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Delete elimina un gasto.
func (r *ExpenseRepo) Delete(id string) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM project_expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
