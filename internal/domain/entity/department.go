package entity

import "time"

// Department agrupa empleados dentro de una oficina.
type Department struct {
	ID        string
	OfficeID  string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
