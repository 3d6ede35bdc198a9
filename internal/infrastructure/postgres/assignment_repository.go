package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.AssignmentRepository = (*AssignmentRepo)(nil)

// AssignmentRepo implementación del puerto AssignmentRepository sobre PostgreSQL.
type AssignmentRepo struct {
	pool *pgxpool.Pool
}

// NewAssignmentRepository construye el adaptador de persistencia para
// asignaciones proyecto ↔ empleado.
func NewAssignmentRepository(pool *pgxpool.Pool) *AssignmentRepo {
	return &AssignmentRepo{pool: pool}
}

const assignmentColumns = `id, project_id, employee_id, allocation, start_date, end_date, hours, created_at, updated_at`

// Create persiste una nueva asignación.
func (r *AssignmentRepo) Create(a *entity.ProjectEmployee) error {
	query := `
		INSERT INTO project_employees (` + assignmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		a.ID, a.ProjectID, a.EmployeeID, a.Allocation, a.StartDate, a.EndDate, a.Hours,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

// GetByID obtiene una asignación por ID.
func (r *AssignmentRepo) GetByID(id string) (*entity.ProjectEmployee, error) {
	query := `SELECT ` + assignmentColumns + ` FROM project_employees WHERE id = $1`
	var a entity.ProjectEmployee
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.ProjectID, &a.EmployeeID, &a.Allocation, &a.StartDate, &a.EndDate, &a.Hours,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assignment by id: %w", err)
	}
	return &a, nil
}

// Update actualiza una asignación.
func (r *AssignmentRepo) Update(a *entity.ProjectEmployee) error {
	query := `
		UPDATE project_employees
		SET allocation = $2, start_date = $3, end_date = $4, hours = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		a.ID, a.Allocation, a.StartDate, a.EndDate, a.Hours, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update assignment: %w", err)
	}
	return nil
}

// ListByProject asignaciones de un proyecto.
func (r *AssignmentRepo) ListByProject(projectID string) ([]entity.ProjectEmployee, error) {
	query := `SELECT ` + assignmentColumns + ` FROM project_employees WHERE project_id = $1`
	return r.list(query, projectID)
}

// ListByEmployee asignaciones de un empleado.
func (r *AssignmentRepo) ListByEmployee(employeeID string) ([]entity.ProjectEmployee, error) {
	query := `SELECT ` + assignmentColumns + ` FROM project_employees WHERE employee_id = $1`
	return r.list(query, employeeID)
}

// ListAll colección completa para los agregados del dashboard.
func (r *AssignmentRepo) ListAll() ([]entity.ProjectEmployee, error) {
	query := `SELECT ` + assignmentColumns + ` FROM project_employees`
	return r.list(query)
}

func (r *AssignmentRepo) list(query string, args ...any) ([]entity.ProjectEmployee, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()
	var list []entity.ProjectEmployee
	for rows.Next() {
		var a entity.ProjectEmployee
		if err := rows.Scan(
			&a.ID, &a.ProjectID, &a.EmployeeID, &a.Allocation, &a.StartDate, &a.EndDate, &a.Hours,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
