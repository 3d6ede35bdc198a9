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

var _ repository.DepartmentRepository = (*DepartmentRepo)(nil)

// DepartmentRepo implementación del puerto DepartmentRepository sobre PostgreSQL.
type DepartmentRepo struct {
	pool *pgxpool.Pool
}

// NewDepartmentRepository construye el adaptador de persistencia para departamentos.
func NewDepartmentRepository(pool *pgxpool.Pool) *DepartmentRepo {
	return &DepartmentRepo{pool: pool}
}

// Create persiste un nuevo departamento.
func (r *DepartmentRepo) Create(dept *entity.Department) error {
	query := `
		INSERT INTO departments (id, office_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		dept.ID, dept.OfficeID, dept.Name, dept.CreatedAt, dept.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert department: %w", err)
	}
	return nil
}

// GetByID obtiene un departamento por ID.
func (r *DepartmentRepo) GetByID(id string) (*entity.Department, error) {
	query := `
		SELECT id, office_id, name, created_at, updated_at
		FROM departments WHERE id = $1`
	var d entity.Department
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.OfficeID, &d.Name, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get department by id: %w", err)
	}
	return &d, nil
}

// ListByOffice departamentos de una oficina.
func (r *DepartmentRepo) ListByOffice(officeID string) ([]entity.Department, error) {
	return r.list(`
		SELECT id, office_id, name, created_at, updated_at
		FROM departments WHERE office_id = $1 ORDER BY name`, officeID)
}

// ListAll todos los departamentos.
func (r *DepartmentRepo) ListAll() ([]entity.Department, error) {
	return r.list(`
		SELECT id, office_id, name, created_at, updated_at
		FROM departments ORDER BY name`)
}

func (r *DepartmentRepo) list(query string, args ...any) ([]entity.Department, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()
	var list []entity.Department
	for rows.Next() {
		var d entity.Department
		if err := rows.Scan(&d.ID, &d.OfficeID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
