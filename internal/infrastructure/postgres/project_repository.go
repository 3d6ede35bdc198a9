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

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implementación del puerto ProjectRepository sobre PostgreSQL.
// Las oficinas adicionales viven en la tabla puente project_offices y se
// recogen con array_agg en las lecturas.
type ProjectRepo struct {
	pool *pgxpool.Pool
}

// NewProjectRepository construye el adaptador de persistencia para proyectos.
func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepo {
	return &ProjectRepo{pool: pool}
}

const projectSelect = `
	SELECT p.id, p.office_id, p.name, p.status, p.start_date, p.end_date, p.budget, p.is_internal,
	       p.created_at, p.updated_at,
	       COALESCE(array_agg(po.office_id) FILTER (WHERE po.office_id IS NOT NULL), '{}') AS office_ids
	FROM projects p
	LEFT JOIN project_offices po ON po.project_id = p.id`

// Create persiste un proyecto y sus oficinas adicionales en una transacción.
func (r *ProjectRepo) Create(project *entity.Project) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO projects (id, office_id, name, status, start_date, end_date, budget, is_internal, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = tx.Exec(ctx, query,
		project.ID, project.OfficeID, project.Name, project.Status, project.StartDate,
		project.EndDate, project.Budget, project.IsInternal, project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert project: %w", err)
	}
	for _, officeID := range project.OfficeIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO project_offices (project_id, office_id) VALUES ($1, $2)`,
			project.ID, officeID,
		); err != nil {
			return fmt.Errorf("insert project office: %w", err)
		}
	}
	return tx.Commit(ctx)
}

// GetByID obtiene un proyecto por ID con sus oficinas adicionales.
func (r *ProjectRepo) GetByID(id string) (*entity.Project, error) {
	query := projectSelect + ` WHERE p.id = $1 GROUP BY p.id`
	var p entity.Project
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.OfficeID, &p.Name, &p.Status, &p.StartDate, &p.EndDate, &p.Budget,
		&p.IsInternal, &p.CreatedAt, &p.UpdatedAt, &p.OfficeIDs,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project by id: %w", err)
	}
	return &p, nil
}

// Update actualiza la cabecera del proyecto (las oficinas adicionales no
// cambian por esta vía).
func (r *ProjectRepo) Update(project *entity.Project) error {
	query := `
		UPDATE projects
		SET name = $2, status = $3, start_date = $4, end_date = $5, budget = $6,
		    is_internal = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		project.ID, project.Name, project.Status, project.StartDate, project.EndDate,
		project.Budget, project.IsInternal, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// List lista proyectos con paginación.
func (r *ProjectRepo) List(limit, offset int) ([]entity.Project, error) {
	query := projectSelect + ` GROUP BY p.id ORDER BY p.created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListAll colección completa para los agregados del dashboard.
func (r *ProjectRepo) ListAll() ([]entity.Project, error) {
	query := projectSelect + ` GROUP BY p.id`
	return r.list(query)
}

func (r *ProjectRepo) list(query string, args ...any) ([]entity.Project, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	var list []entity.Project
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(
			&p.ID, &p.OfficeID, &p.Name, &p.Status, &p.StartDate, &p.EndDate, &p.Budget,
			&p.IsInternal, &p.CreatedAt, &p.UpdatedAt, &p.OfficeIDs,
		); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
