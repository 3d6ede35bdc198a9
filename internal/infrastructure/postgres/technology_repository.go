package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.TechnologyRepository = (*TechnologyRepo)(nil)

// TechnologyRepo implementación del puerto TechnologyRepository sobre PostgreSQL.
type TechnologyRepo struct {
	pool *pgxpool.Pool
}

// NewTechnologyRepository construye el adaptador para el catálogo de tecnologías.
func NewTechnologyRepository(pool *pgxpool.Pool) *TechnologyRepo {
	return &TechnologyRepo{pool: pool}
}

// Create agrega una tecnología al catálogo.
func (r *TechnologyRepo) Create(t *entity.Technology) error {
	query := `
		INSERT INTO technologies (id, name, category, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(context.Background(), query, t.ID, t.Name, t.Category, t.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert technology: %w", err)
	}
	return nil
}

// ListAll todas las tecnologías del catálogo.
func (r *TechnologyRepo) ListAll() ([]entity.Technology, error) {
	return r.list(`SELECT id, name, category, created_at FROM technologies ORDER BY name`)
}

// Attach asocia una tecnología a un proyecto.
func (r *TechnologyRepo) Attach(projectID, technologyID string) error {
	query := `
		INSERT INTO project_technologies (project_id, technology_id)
		VALUES ($1, $2)`
	_, err := r.pool.Exec(context.Background(), query, projectID, technologyID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("attach technology: %w", err)
	}
	return nil
}

// ListByProject tecnologías asociadas a un proyecto.
func (r *TechnologyRepo) ListByProject(projectID string) ([]entity.Technology, error) {
	return r.list(`
		SELECT t.id, t.name, t.category, t.created_at
		FROM technologies t
		JOIN project_technologies pt ON pt.technology_id = t.id
		WHERE pt.project_id = $1
		ORDER BY t.name`, projectID)
}

func (r *TechnologyRepo) list(query string, args ...any) ([]entity.Technology, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list technologies: %w", err)
	}
	defer rows.Close()
	var list []entity.Technology
	for rows.Next() {
		var t entity.Technology
		if err := rows.Scan(&t.ID, &t.Name, &t.Category, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan technology: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
