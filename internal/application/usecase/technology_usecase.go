package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// TechnologyUseCase catálogo de tecnologías.
type TechnologyUseCase struct {
	repo repository.TechnologyRepository
}

// NewTechnologyUseCase construye el caso de uso.
func NewTechnologyUseCase(repo repository.TechnologyRepository) *TechnologyUseCase {
	return &TechnologyUseCase{repo: repo}
}

// Create agrega una tecnología al catálogo.
func (uc *TechnologyUseCase) Create(name, category string) (*dto.TechnologyResponse, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre de la tecnología es obligatorio", domain.ErrInvalidInput)
	}
	tech := &entity.Technology{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  category,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(tech); err != nil {
		return nil, err
	}
	return &dto.TechnologyResponse{ID: tech.ID, Name: tech.Name, Category: tech.Category}, nil
}

// List todas las tecnologías del catálogo.
func (uc *TechnologyUseCase) List() ([]dto.TechnologyResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TechnologyResponse, 0, len(list))
	for _, t := range list {
		out = append(out, dto.TechnologyResponse{ID: t.ID, Name: t.Name, Category: t.Category})
	}
	return out, nil
}
