package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// ExpenseRepository puerto de persistencia para gastos recurrentes de proyecto.
type ExpenseRepository interface {
	Create(e *entity.ProjectExpense) error
	GetByID(id string) (*entity.ProjectExpense, error)
	ListByProject(projectID string) ([]entity.ProjectExpense, error)
	Delete(id string) error
}
