package entity

import "time"

// Office es la unidad raíz de alcance (scoping): todo empleado y proyecto
// pertenece a exactamente una oficina principal.
type Office struct {
	ID        string
	Name      string
	Country   string
	Timezone  string // IANA, ej: "America/Bogota"
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ManagerOffice asigna explícitamente una oficina a un usuario con rol MANAGER.
// Un manager sin filas aquí no ve ninguna oficina (fail-closed).
type ManagerOffice struct {
	ID        string
	UserID    string
	OfficeID  string
	CreatedAt time.Time
}
