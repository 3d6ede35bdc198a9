package finance_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/finance"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func buildExpense(monthly int64, start time.Time, end *time.Time) *entity.ProjectExpense {
	return &entity.ProjectExpense{
		ID:          "x1",
		ProjectID:   "p1",
		Category:    "Infraestructura",
		MonthlyCost: decimal.NewFromInt(monthly),
		StartDate:   start,
		EndDate:     end,
	}
}

// Vector de referencia: gasto de 200/mes iniciado el 2024-01-01 sin fecha fin,
// proyecto iniciado el 2023-12-01, "now" = 2024-03-15.
// Inicio efectivo = 2024-01-01 (el inicio del proyecto no lo adelanta),
// días ≈ 74 → meses = ceil(74/30) = 3 → total = 600.
func TestProratedCost_VectorExacto(t *testing.T) {
	expense := buildExpense(200, day(2024, time.January, 1), nil)
	now := day(2024, time.March, 15)

	total := finance.ProratedCost(expense, day(2023, time.December, 1), now)

	assert.True(t, decimal.NewFromInt(600).Equal(total),
		"74 días deben prorratearse a 3 meses × 200 = 600, obtuvo %s", total)
}

func TestProratedCost_InicioEfectivoEsElDelProyecto(t *testing.T) {
	// El gasto "existe" desde antes del proyecto; no puede facturarse antes
	// de que el proyecto exista.
	expense := buildExpense(100, day(2023, time.June, 1), nil)
	now := day(2024, time.January, 30)

	total := finance.ProratedCost(expense, day(2024, time.January, 1), now)

	// 29 días desde el inicio del proyecto → 1 mes.
	assert.True(t, decimal.NewFromInt(100).Equal(total),
		"el inicio efectivo debe ser el inicio del proyecto, obtuvo %s", total)
}

func TestProratedCost_ConFechaFinCerrada(t *testing.T) {
	end := day(2024, time.March, 2)
	expense := buildExpense(150, day(2024, time.January, 1), &end)

	// "now" muy posterior: no debe influir porque el gasto está cerrado.
	total := finance.ProratedCost(expense, day(2024, time.January, 1), day(2025, time.June, 1))

	// 61 días → ceil(61/30) = 3 meses → 450.
	assert.True(t, decimal.NewFromInt(450).Equal(total), "obtuvo %s", total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Piso de 1 mes: cualquier rango degenerado factura exactamente 1 mes.
// Política deliberada heredada del sistema: infla el costo de datos malformados
// en lugar de reportar cero.
// ──────────────────────────────────────────────────────────────────────────────

func TestProratedCost_PisoUnMes_RangoVacio(t *testing.T) {
	start := day(2024, time.May, 1)
	expense := buildExpense(300, start, nil)

	total := finance.ProratedCost(expense, start, start) // 0 días

	assert.True(t, decimal.NewFromInt(300).Equal(total),
		"un rango de 0 días debe facturar exactamente 1 mes")
}

func TestProratedCost_PisoUnMes_FinAntesDelInicio(t *testing.T) {
	// Gasto terminado antes de que empezara el proyecto: rango negativo.
	end := day(2023, time.November, 30)
	expense := buildExpense(250, day(2023, time.October, 1), &end)

	total := finance.ProratedCost(expense, day(2024, time.January, 1), day(2024, time.June, 1))

	assert.True(t, decimal.NewFromInt(250).Equal(total),
		"un rango negativo debe caer en el piso de 1 mes, nunca cero ni negativo")
}

func TestProratedCost_MesParcialRedondeaArriba(t *testing.T) {
	expense := buildExpense(100, day(2024, time.January, 1), nil)

	// 31 días → ceil(31/30) = 2 meses.
	total := finance.ProratedCost(expense, day(2024, time.January, 1), day(2024, time.February, 1))

	assert.True(t, decimal.NewFromInt(200).Equal(total),
		"un mes parcial debe redondear hacia arriba, obtuvo %s", total)
}

func TestProratedCost_GastoNil(t *testing.T) {
	assert.True(t, finance.ProratedCost(nil, time.Time{}, time.Time{}).IsZero())
}
