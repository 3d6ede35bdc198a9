// Package schedule construye las grillas de calendario (solo días hábiles)
// para el registro de horas, y el algoritmo de copiar/pegar días con
// supresión de duplicados. Todo puro: jamás lanza error — entradas vacías
// producen resultados vacíos, y la validación de negocio (cero días
// seleccionados, cero entradas copiadas) pertenece a la capa de aplicación.
package schedule

import (
	"time"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// BusinessDaysPerWeek días renderizados por semana: lunes a viernes.
// Los fines de semana nunca se renderizan.
const BusinessDaysPerWeek = 5

// maxWeeksPerMonth una grilla mensual nunca necesita más de 6 semanas.
const maxWeeksPerMonth = 6

// dateKeyLayout clave normalizada de día calendario local.
const dateKeyLayout = "2006-01-02"

// DateKey normaliza una fecha a su clave de día calendario local
// (YYYY-MM-DD, hora del día descartada). Todo el bucketing usa esta clave
// para que un desfase horario no mueva una entrada de día.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// mondayOnOrBefore retrocede hasta el lunes de la semana de t (t incluido).
func mondayOnOrBefore(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	// time.Weekday: domingo = 0; el desfase al lunes anterior es (wd+6)%7.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// BuildWeek devuelve los cinco días hábiles (lunes a viernes) de la semana
// que contiene la fecha ancla.
func BuildWeek(anchor time.Time) []time.Time {
	monday := mondayOnOrBefore(anchor)
	week := make([]time.Time, 0, BusinessDaysPerWeek)
	for i := 0; i < BusinessDaysPerWeek; i++ {
		week = append(week, monday.AddDate(0, 0, i))
	}
	return week
}

// BuildMonthMatrix devuelve hasta 6 semanas × 5 días hábiles para el mes de
// la fecha ancla. La grilla siempre comienza en el lunes en-o-antes del día 1
// (la primera semana se conserva aunque empiece en el mes anterior); las
// semanas finales sin ningún día del mes ancla se descartan.
func BuildMonthMatrix(anchor time.Time) [][]time.Time {
	firstOfMonth := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	cursor := mondayOnOrBefore(firstOfMonth)

	matrix := make([][]time.Time, 0, maxWeeksPerMonth)
	for w := 0; w < maxWeeksPerMonth; w++ {
		week := BuildWeek(cursor)
		if w > 0 && !weekTouchesMonth(week, anchor.Month(), anchor.Year()) {
			break
		}
		matrix = append(matrix, week)
		cursor = cursor.AddDate(0, 0, 7)
	}
	return matrix
}

// weekTouchesMonth indica si algún día de la semana cae en el mes/año ancla.
func weekTouchesMonth(week []time.Time, month time.Month, year int) bool {
	for _, d := range week {
		if d.Month() == month && d.Year() == year {
			return true
		}
	}
	return false
}

// BucketEntries agrupa las entradas de horas por clave de día sobre una
// grilla de fechas. Solo las claves presentes en la grilla aparecen en el
// resultado; entradas fuera de la grilla se ignoran.
func BucketEntries(entries []entity.TimeEntry, grid []time.Time) map[string][]entity.TimeEntry {
	buckets := make(map[string][]entity.TimeEntry, len(grid))
	inGrid := make(map[string]struct{}, len(grid))
	for _, d := range grid {
		key := DateKey(d)
		inGrid[key] = struct{}{}
		buckets[key] = nil
	}
	for _, e := range entries {
		key := DateKey(e.Date)
		if _, ok := inGrid[key]; !ok {
			continue
		}
		buckets[key] = append(buckets[key], e)
	}
	return buckets
}
