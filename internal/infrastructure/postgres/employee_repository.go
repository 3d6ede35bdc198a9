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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
// salary es NUMERIC NULL: el codec de decimal lo mapea a decimal.NullDecimal.
type EmployeeRepo struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepo {
	return &EmployeeRepo{pool: pool}
}

const employeeColumns = `id, office_id, department_id, first_name, last_name, email, position, status, salary, hire_date, created_at, updated_at`

// Create persiste un nuevo empleado.
func (r *EmployeeRepo) Create(emp *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(context.Background(), query,
		emp.ID, emp.OfficeID, emp.DepartmentID, emp.FirstName, emp.LastName, emp.Email,
		emp.Position, emp.Status, emp.Salary, emp.HireDate, emp.CreatedAt, emp.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	var e entity.Employee
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.OfficeID, &e.DepartmentID, &e.FirstName, &e.LastName, &e.Email,
		&e.Position, &e.Status, &e.Salary, &e.HireDate, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by id: %w", err)
	}
	return &e, nil
}

// Update actualiza un empleado.
func (r *EmployeeRepo) Update(emp *entity.Employee) error {
	query := `
		UPDATE employees
		SET office_id = $2, department_id = $3, first_name = $4, last_name = $5, email = $6,
		    position = $7, status = $8, salary = $9, hire_date = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		emp.ID, emp.OfficeID, emp.DepartmentID, emp.FirstName, emp.LastName, emp.Email,
		emp.Position, emp.Status, emp.Salary, emp.HireDate, emp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// List lista empleados con paginación.
func (r *EmployeeRepo) List(limit, offset int) ([]entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY last_name, first_name LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListAll colección completa para los agregados del dashboard.
func (r *EmployeeRepo) ListAll() ([]entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees`
	return r.list(query)
}

func (r *EmployeeRepo) list(query string, args ...any) ([]entity.Employee, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(
			&e.ID, &e.OfficeID, &e.DepartmentID, &e.FirstName, &e.LastName, &e.Email,
			&e.Position, &e.Status, &e.Salary, &e.HireDate, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
