// Package schedule (capa de aplicación) expone las vistas de calendario del
// registro de horas y la operación copiar/pegar días. La construcción de
// grillas y la supresión de duplicados viven en internal/domain/schedule;
// aquí se valida la entrada del usuario y se persiste.
package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	domsched "github.com/jhoicas/Gestion-api/internal/domain/schedule"
)

const dayLayout = "2006-01-02"

// maxHoursPerEntry cota superior de una entrada: un día tiene 24 horas.
var maxHoursPerEntry = decimal.NewFromInt(24)

// TimesheetUseCase vistas de calendario y registro de horas de un empleado.
type TimesheetUseCase struct {
	entryRepo   repository.TimeEntryRepository
	projectRepo repository.ProjectRepository
}

// NewTimesheetUseCase construye el caso de uso.
func NewTimesheetUseCase(entryRepo repository.TimeEntryRepository, projectRepo repository.ProjectRepository) *TimesheetUseCase {
	return &TimesheetUseCase{entryRepo: entryRepo, projectRepo: projectRepo}
}

// GetWeek devuelve la grilla de la semana hábil que contiene la fecha ancla,
// con las entradas del empleado agrupadas por día.
func (uc *TimesheetUseCase) GetWeek(employeeID, anchorStr string) (*dto.WeekGridDTO, error) {
	anchor, err := parseDay(anchorStr)
	if err != nil {
		return nil, err
	}

	grid := domsched.BuildWeek(anchor)
	buckets, err := uc.bucketsFor(employeeID, grid)
	if err != nil {
		return nil, err
	}

	out := &dto.WeekGridDTO{Days: make([]dto.DayBucketDTO, 0, len(grid))}
	for _, d := range grid {
		out.Days = append(out.Days, toDayBucket(d, buckets))
	}
	return out, nil
}

// GetMonth devuelve la grilla mensual (hasta 6 semanas de días hábiles) con
// las entradas del empleado agrupadas por día.
func (uc *TimesheetUseCase) GetMonth(employeeID, anchorStr string) (*dto.MonthMatrixDTO, error) {
	anchor, err := parseDay(anchorStr)
	if err != nil {
		return nil, err
	}

	matrix := domsched.BuildMonthMatrix(anchor)
	flat := make([]time.Time, 0, len(matrix)*domsched.BusinessDaysPerWeek)
	for _, week := range matrix {
		flat = append(flat, week...)
	}
	buckets, err := uc.bucketsFor(employeeID, flat)
	if err != nil {
		return nil, err
	}

	out := &dto.MonthMatrixDTO{Weeks: make([][]dto.DayBucketDTO, 0, len(matrix))}
	for _, week := range matrix {
		row := make([]dto.DayBucketDTO, 0, len(week))
		for _, d := range week {
			row = append(row, toDayBucket(d, buckets))
		}
		out.Weeks = append(out.Weeks, row)
	}
	return out, nil
}

// CreateEntry registra horas de un empleado en un proyecto. Reglas:
// 0 < hours ≤ 24, fecha válida y proyecto existente. Los rechazos llevan un
// motivo descriptivo para que el borde lo traduzca al usuario.
func (uc *TimesheetUseCase) CreateEntry(employeeID string, in dto.CreateTimeEntryRequest, now time.Time) (*dto.TimeEntryResponse, error) {
	if !in.Hours.IsPositive() {
		return nil, fmt.Errorf("%w: las horas deben ser mayores a cero", domain.ErrInvalidInput)
	}
	if in.Hours.GreaterThan(maxHoursPerEntry) {
		return nil, fmt.Errorf("%w: una entrada no puede superar 24 horas", domain.ErrInvalidInput)
	}
	date, err := parseDay(in.Date)
	if err != nil {
		return nil, err
	}
	project, err := uc.projectRepo.GetByID(in.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("timesheet: cargar proyecto: %w", err)
	}
	if project == nil {
		return nil, fmt.Errorf("%w: el proyecto no existe", domain.ErrInvalidInput)
	}

	entry := &entity.TimeEntry{
		ID:          uuid.New().String(),
		EmployeeID:  employeeID,
		ProjectID:   in.ProjectID,
		Date:        date,
		Hours:       in.Hours,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.entryRepo.Create(entry); err != nil {
		return nil, err
	}
	resp := toEntryResponse(*entry)
	return &resp, nil
}

// PasteDay copia las entradas del día origen sobre los días destino,
// suprimiendo los pares (proyecto, día) que el empleado ya tiene registrados.
// Cero días destino o un día origen vacío son errores de validación del
// llamador (reportados con motivo); la supresión de duplicados en cambio es
// silenciosa y se refleja en los contadores del resultado.
func (uc *TimesheetUseCase) PasteDay(ctx context.Context, employeeID string, in dto.PasteDayRequest, now time.Time) (*dto.PasteResultDTO, error) {
	if len(in.TargetDates) == 0 {
		return nil, fmt.Errorf("%w: debe seleccionar al menos un día destino", domain.ErrInvalidInput)
	}
	source, err := parseDay(in.SourceDate)
	if err != nil {
		return nil, err
	}
	targets := make([]time.Time, 0, len(in.TargetDates))
	for _, s := range in.TargetDates {
		t, err := parseDay(s)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}

	sourceEntries, err := uc.entryRepo.ListByEmployeeAndRange(employeeID, source, source)
	if err != nil {
		return nil, fmt.Errorf("timesheet: entradas del día origen: %w", err)
	}
	copied := domsched.CopyDay(source, sourceEntries)
	if copied.IsEmpty() {
		return nil, fmt.Errorf("%w: el día origen no tiene entradas para copiar", domain.ErrInvalidInput)
	}

	from, to := dateRange(targets)
	existing, err := uc.entryRepo.ListByEmployeeAndRange(employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("timesheet: entradas existentes: %w", err)
	}

	toCreate := domsched.PasteToDays(copied, targets, existing)

	entries := make([]entity.TimeEntry, 0, len(toCreate))
	for _, e := range toCreate {
		e.ID = uuid.New().String()
		e.EmployeeID = employeeID
		e.CreatedAt = now
		e.UpdatedAt = now
		entries = append(entries, e)
	}
	if len(entries) > 0 {
		if err := uc.entryRepo.CreateBatch(ctx, entries); err != nil {
			return nil, fmt.Errorf("timesheet: persistir pegado: %w", err)
		}
	}

	result := &dto.PasteResultDTO{
		Created:     make([]dto.TimeEntryResponse, 0, len(entries)),
		CreatedN:    len(entries),
		SuppressedN: len(copied.Entries)*len(targets) - len(entries),
	}
	for _, e := range entries {
		result.Created = append(result.Created, toEntryResponse(e))
	}
	return result, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (uc *TimesheetUseCase) bucketsFor(employeeID string, grid []time.Time) (map[string][]entity.TimeEntry, error) {
	if len(grid) == 0 {
		return map[string][]entity.TimeEntry{}, nil
	}
	from, to := dateRange(grid)
	entries, err := uc.entryRepo.ListByEmployeeAndRange(employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("timesheet: entradas del rango: %w", err)
	}
	return domsched.BucketEntries(entries, grid), nil
}

func toDayBucket(d time.Time, buckets map[string][]entity.TimeEntry) dto.DayBucketDTO {
	key := domsched.DateKey(d)
	bucket := dto.DayBucketDTO{
		Date:       key,
		Entries:    make([]dto.TimeEntryResponse, 0, len(buckets[key])),
		TotalHours: decimal.Zero,
	}
	for _, e := range buckets[key] {
		bucket.Entries = append(bucket.Entries, toEntryResponse(e))
		bucket.TotalHours = bucket.TotalHours.Add(e.Hours)
	}
	return bucket
}

func toEntryResponse(e entity.TimeEntry) dto.TimeEntryResponse {
	return dto.TimeEntryResponse{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		ProjectID:   e.ProjectID,
		Date:        domsched.DateKey(e.Date),
		Hours:       e.Hours,
		Description: e.Description,
	}
}

func parseDay(s string) (time.Time, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha inválida %q (formato YYYY-MM-DD)", domain.ErrInvalidInput, s)
	}
	return t, nil
}

func dateRange(dates []time.Time) (from, to time.Time) {
	from, to = dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(from) {
			from = d
		}
		if d.After(to) {
			to = d
		}
	}
	return from, to
}
