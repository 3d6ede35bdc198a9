package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// ProjectRepository puerto de persistencia para proyectos.
type ProjectRepository interface {
	Create(project *entity.Project) error
	GetByID(id string) (*entity.Project, error)
	Update(project *entity.Project) error
	List(limit, offset int) ([]entity.Project, error)
	ListAll() ([]entity.Project, error)
}
