package dto

import "github.com/shopspring/decimal"

// TimeEntryResponse representación de una entrada de horas.
type TimeEntryResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	ProjectID   string          `json:"project_id"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Hours       decimal.Decimal `json:"hours"`
	Description string          `json:"description,omitempty"`
}

// CreateTimeEntryRequest alta de una entrada de horas (0 < hours ≤ 24).
type CreateTimeEntryRequest struct {
	ProjectID   string          `json:"project_id"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Hours       decimal.Decimal `json:"hours"`
	Description string          `json:"description"`
}

// WeekGridDTO grilla semanal: cinco días hábiles con sus entradas.
type WeekGridDTO struct {
	Days []DayBucketDTO `json:"days"`
}

// MonthMatrixDTO grilla mensual: hasta 6 semanas de días hábiles.
type MonthMatrixDTO struct {
	Weeks [][]DayBucketDTO `json:"weeks"`
}

// DayBucketDTO un día de la grilla con sus entradas y el total de horas.
type DayBucketDTO struct {
	Date       string              `json:"date"` // YYYY-MM-DD
	Entries    []TimeEntryResponse `json:"entries"`
	TotalHours decimal.Decimal     `json:"total_hours"`
}

// PasteDayRequest copia las entradas de un día origen sobre varios días
// destino. Los pares (proyecto, día destino) ya existentes se suprimen.
type PasteDayRequest struct {
	SourceDate  string   `json:"source_date"`  // YYYY-MM-DD
	TargetDates []string `json:"target_dates"` // YYYY-MM-DD cada uno
}

// PasteResultDTO resultado del pegado: cuántas entradas se crearon y cuántas
// se suprimieron por duplicado.
type PasteResultDTO struct {
	Created     []TimeEntryResponse `json:"created"`
	CreatedN    int                 `json:"created_count"`
	SuppressedN int                 `json:"suppressed_count"`
}
