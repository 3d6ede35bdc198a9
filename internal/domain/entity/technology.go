package entity

import "time"

// Technology catálogo de tecnologías asociables a proyectos.
type Technology struct {
	ID        string
	Name      string
	Category  string // lenguaje, framework, base de datos, cloud...
	CreatedAt time.Time
}

// ProjectTechnology asociación proyecto ↔ tecnología.
type ProjectTechnology struct {
	ProjectID    string
	TechnologyID string
}
