package schedule_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/schedule"
)

// ──────────────────────────────────────────────────────────────────────────────
// CopyDay
// ──────────────────────────────────────────────────────────────────────────────

func TestCopyDay_CopiaSoloElDiaIndicado(t *testing.T) {
	source := day(2024, time.January, 1)
	entries := []entity.TimeEntry{
		entry("t1", "p1", source, 6),
		entry("t2", "p2", source, 2),
		entry("t3", "p1", day(2024, time.January, 2), 8),
	}

	copied := schedule.CopyDay(source, entries)

	require.Len(t, copied.Entries, 2)
	assert.Equal(t, "p1", copied.Entries[0].ProjectID)
	assert.Equal(t, "p2", copied.Entries[1].ProjectID)
}

func TestCopyDay_DiaVacio_SetVacioSinError(t *testing.T) {
	copied := schedule.CopyDay(day(2024, time.January, 5), nil)
	assert.True(t, copied.IsEmpty(),
		"copiar un día sin entradas produce un set vacío; rechazarlo es del llamador")
}

// ──────────────────────────────────────────────────────────────────────────────
// PasteToDays — supresión de duplicados por par (proyecto, día destino).
// Escenario de referencia: existe (p1, 2024-01-01); pegar un set con p1 sobre
// el 01 no crea nada, sobre el 02 crea una entrada.
// ──────────────────────────────────────────────────────────────────────────────

func buildCopiedSet() schedule.CopiedSet {
	source := day(2024, time.January, 1)
	return schedule.CopyDay(source, []entity.TimeEntry{
		entry("t1", "p1", source, 8),
	})
}

func TestPasteToDays_SuprimeParesExistentes(t *testing.T) {
	existing := []entity.TimeEntry{entry("t1", "p1", day(2024, time.January, 1), 8)}
	copied := buildCopiedSet()

	created := schedule.PasteToDays(copied, []time.Time{day(2024, time.January, 1)}, existing)

	assert.Empty(t, created,
		"el par (p1, 2024-01-01) ya existe: pegar sobre él no debe crear nada")
}

func TestPasteToDays_CreaEnDiaLibre(t *testing.T) {
	existing := []entity.TimeEntry{entry("t1", "p1", day(2024, time.January, 1), 8)}
	copied := buildCopiedSet()

	created := schedule.PasteToDays(copied, []time.Time{day(2024, time.January, 2)}, existing)

	require.Len(t, created, 1)
	assert.Equal(t, "p1", created[0].ProjectID)
	assert.Equal(t, day(2024, time.January, 2), created[0].Date)
	assert.True(t, decimal.NewFromInt(8).Equal(created[0].Hours))
	assert.Empty(t, created[0].ID, "el ID lo asigna la capa de aplicación al persistir")
}

func TestPasteToDays_AbanicoSobreVariosDias(t *testing.T) {
	source := day(2024, time.January, 1)
	copied := schedule.CopyDay(source, []entity.TimeEntry{
		entry("t1", "p1", source, 6),
		entry("t2", "p2", source, 2),
	})
	targets := []time.Time{
		day(2024, time.January, 8),
		day(2024, time.January, 9),
		day(2024, time.January, 10),
	}

	created := schedule.PasteToDays(copied, targets, nil)

	assert.Len(t, created, 6,
		"cada entrada del día origen se reproduce una vez por cada día destino")
}

func TestPasteToDays_AbanicoConDuplicadosParciales(t *testing.T) {
	source := day(2024, time.January, 1)
	copied := schedule.CopyDay(source, []entity.TimeEntry{
		entry("t1", "p1", source, 6),
		entry("t2", "p2", source, 2),
	})
	// p1 ya tiene horas el día 9: solo se suprime ese par.
	existing := []entity.TimeEntry{entry("t9", "p1", day(2024, time.January, 9), 4)}
	targets := []time.Time{day(2024, time.January, 8), day(2024, time.January, 9)}

	created := schedule.PasteToDays(copied, targets, existing)

	require.Len(t, created, 3)
	for _, e := range created {
		if e.ProjectID == "p1" {
			assert.NotEqual(t, "2024-01-09", schedule.DateKey(e.Date),
				"el par (p1, 09) existente debe suprimirse; el resto del abanico se crea")
		}
	}
}

func TestPasteToDays_EntradasVaciasODiasVacios_ResultadoVacio(t *testing.T) {
	copied := buildCopiedSet()

	assert.Nil(t, schedule.PasteToDays(schedule.CopiedSet{}, []time.Time{day(2024, time.January, 2)}, nil),
		"sin entradas copiadas no hay nada que pegar (el rechazo lo reporta la aplicación)")
	assert.Nil(t, schedule.PasteToDays(copied, nil, nil),
		"sin días destino no hay nada que pegar")
}
