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

var _ repository.OfficeRepository = (*OfficeRepo)(nil)
var _ repository.ManagerOfficeRepository = (*ManagerOfficeRepo)(nil)

// OfficeRepo implementación del puerto OfficeRepository sobre PostgreSQL.
type OfficeRepo struct {
	pool *pgxpool.Pool
}

// NewOfficeRepository construye el adaptador de persistencia para oficinas.
func NewOfficeRepository(pool *pgxpool.Pool) *OfficeRepo {
	return &OfficeRepo{pool: pool}
}

// Create persiste una nueva oficina.
func (r *OfficeRepo) Create(office *entity.Office) error {
	query := `
		INSERT INTO offices (id, name, country, timezone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		office.ID, office.Name, office.Country, office.Timezone, office.CreatedAt, office.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert office: %w", err)
	}
	return nil
}

// GetByID obtiene una oficina por ID.
func (r *OfficeRepo) GetByID(id string) (*entity.Office, error) {
	query := `
		SELECT id, name, country, timezone, created_at, updated_at
		FROM offices WHERE id = $1`
	var o entity.Office
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Name, &o.Country, &o.Timezone, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get office by id: %w", err)
	}
	return &o, nil
}

// ListAll lista todas las oficinas.
func (r *OfficeRepo) ListAll() ([]entity.Office, error) {
	query := `
		SELECT id, name, country, timezone, created_at, updated_at
		FROM offices ORDER BY name`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list offices: %w", err)
	}
	defer rows.Close()
	var list []entity.Office
	for rows.Next() {
		var o entity.Office
		if err := rows.Scan(&o.ID, &o.Name, &o.Country, &o.Timezone, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan office: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// ManagerOfficeRepo implementación del puerto ManagerOfficeRepository.
type ManagerOfficeRepo struct {
	pool *pgxpool.Pool
}

// NewManagerOfficeRepository construye el adaptador para asignaciones
// manager ↔ oficina.
func NewManagerOfficeRepository(pool *pgxpool.Pool) *ManagerOfficeRepo {
	return &ManagerOfficeRepo{pool: pool}
}

// Assign persiste una asignación de oficina a un manager.
func (r *ManagerOfficeRepo) Assign(mo *entity.ManagerOffice) error {
	query := `
		INSERT INTO manager_offices (id, user_id, office_id, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(context.Background(), query, mo.ID, mo.UserID, mo.OfficeID, mo.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert manager office: %w", err)
	}
	return nil
}

// Remove elimina la asignación de una oficina a un manager.
func (r *ManagerOfficeRepo) Remove(userID, officeID string) error {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM manager_offices WHERE user_id = $1 AND office_id = $2`, userID, officeID)
	if err != nil {
		return fmt.Errorf("delete manager office: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByUser asignaciones de oficina de un manager.
func (r *ManagerOfficeRepo) ListByUser(userID string) ([]entity.ManagerOffice, error) {
	query := `
		SELECT id, user_id, office_id, created_at
		FROM manager_offices WHERE user_id = $1`
	rows, err := r.pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list manager offices: %w", err)
	}
	defer rows.Close()
	var list []entity.ManagerOffice
	for rows.Next() {
		var mo entity.ManagerOffice
		if err := rows.Scan(&mo.ID, &mo.UserID, &mo.OfficeID, &mo.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan manager office: %w", err)
		}
		list = append(list, mo)
	}
	return list, rows.Err()
}
