package dto

import "time"

// CreateOfficeRequest alta de oficina.
type CreateOfficeRequest struct {
	Name     string `json:"name"`
	Country  string `json:"country"`
	Timezone string `json:"timezone"`
}

// OfficeResponse representación de una oficina.
type OfficeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OfficeListResponse listado de oficinas.
type OfficeListResponse struct {
	Items []OfficeResponse `json:"items"`
}

// AssignManagerRequest asigna una oficina a un manager.
type AssignManagerRequest struct {
	UserID   string `json:"user_id"`
	OfficeID string `json:"office_id"`
}

// CreateDepartmentRequest alta de departamento dentro de una oficina.
type CreateDepartmentRequest struct {
	OfficeID string `json:"office_id"`
	Name     string `json:"name"`
}

// DepartmentResponse representación de un departamento.
type DepartmentResponse struct {
	ID        string    `json:"id"`
	OfficeID  string    `json:"office_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// DepartmentListResponse listado de departamentos.
type DepartmentListResponse struct {
	Items []DepartmentResponse `json:"items"`
}
