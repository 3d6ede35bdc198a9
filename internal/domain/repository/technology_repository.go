package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// TechnologyRepository puerto de persistencia para el catálogo de tecnologías
// y su asociación con proyectos.
type TechnologyRepository interface {
	Create(t *entity.Technology) error
	ListAll() ([]entity.Technology, error)
	Attach(projectID, technologyID string) error
	ListByProject(projectID string) ([]entity.Technology, error)
}
