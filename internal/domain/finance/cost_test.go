package finance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/finance"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vectores exactos de los dos modelos de costo.
//
// Empleado con salario anual 60.000:
//   - Modelo allocation, 50%            → 60.000 × 0.50        = 30.000
//   - Modelo horas, 1.000 h registradas → (60.000/2.000) × 1.000 = 30.000
//
// Ambos modelos coexisten a propósito; estos tests fijan sus fórmulas para
// que nadie los unifique sin darse cuenta de que cambia las cifras.
// ──────────────────────────────────────────────────────────────────────────────

func salary(v int64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromInt(v), Valid: true}
}

func noSalary() decimal.NullDecimal { return decimal.NullDecimal{} }

func TestAllocationCost_VectorExacto(t *testing.T) {
	cost := finance.AllocationCost(salary(60_000), decimal.NewFromInt(50))
	assert.True(t, decimal.NewFromInt(30_000).Equal(cost),
		"salario 60.000 con allocation 50%% debe costar 30.000, obtuvo %s", cost)
}

func TestHoursCost_VectorExacto(t *testing.T) {
	hours := decimal.NullDecimal{Decimal: decimal.NewFromInt(1_000), Valid: true}
	cost := finance.HoursCost(salary(60_000), hours)
	// tarifa horaria = 60.000 / 2.000 = 30; costo = 1.000 × 30 = 30.000
	assert.True(t, decimal.NewFromInt(30_000).Equal(cost),
		"1.000 horas a tarifa 30 deben costar 30.000, obtuvo %s", cost)
}

func TestAllocationCost_AllocationCompleta(t *testing.T) {
	cost := finance.AllocationCost(salary(48_000), decimal.NewFromInt(100))
	assert.True(t, decimal.NewFromInt(48_000).Equal(cost))
}

// ──────────────────────────────────────────────────────────────────────────────
// Campos opcionales y entradas degeneradas: siempre cero, nunca error/NaN.
// ──────────────────────────────────────────────────────────────────────────────

func TestAllocationCost_SinSalario_CostoCero(t *testing.T) {
	cost := finance.AllocationCost(noSalary(), decimal.NewFromInt(80))
	assert.True(t, cost.IsZero(), "sin salario la contribución debe ser cero")
}

func TestHoursCost_SinHoras_CostoCero(t *testing.T) {
	cost := finance.HoursCost(salary(60_000), decimal.NullDecimal{})
	assert.True(t, cost.IsZero(), "sin horas registradas la contribución debe ser cero")
}

func TestAllocationCost_EntradasNegativas_CostoCero(t *testing.T) {
	assert.True(t, finance.AllocationCost(salary(-10_000), decimal.NewFromInt(50)).IsZero(),
		"salario negativo debe tratarse como cero")
	assert.True(t, finance.AllocationCost(salary(60_000), decimal.NewFromInt(-5)).IsZero(),
		"allocation negativa debe tratarse como cero")
}

func TestHoursCost_EntradasNegativas_CostoCero(t *testing.T) {
	negHours := decimal.NullDecimal{Decimal: decimal.NewFromInt(-40), Valid: true}
	assert.True(t, finance.HoursCost(salary(60_000), negHours).IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Monotonía: a más allocation / más horas, nunca menos costo; y nunca < 0.
// ──────────────────────────────────────────────────────────────────────────────

func TestAllocationCost_MonotonaEnAllocation(t *testing.T) {
	s := salary(75_000)
	prev := decimal.NewFromInt(-1)
	for _, alloc := range []int64{0, 10, 25, 50, 75, 100} {
		cost := finance.AllocationCost(s, decimal.NewFromInt(alloc))
		assert.False(t, cost.IsNegative(), "el costo nunca puede ser negativo")
		assert.True(t, cost.GreaterThanOrEqual(prev),
			"el costo debe ser no-decreciente en allocation (alloc=%d)", alloc)
		prev = cost
	}
}

func TestHoursCost_MonotonaEnHoras(t *testing.T) {
	s := salary(75_000)
	prev := decimal.NewFromInt(-1)
	for _, h := range []int64{0, 8, 160, 500, 2_000} {
		cost := finance.HoursCost(s, decimal.NullDecimal{Decimal: decimal.NewFromInt(h), Valid: true})
		assert.False(t, cost.IsNegative())
		assert.True(t, cost.GreaterThanOrEqual(prev),
			"el costo debe ser no-decreciente en horas (h=%d)", h)
		prev = cost
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// EmployeeCost: despacho por modelo.
// ──────────────────────────────────────────────────────────────────────────────

func TestEmployeeCost_DespachaPorModelo(t *testing.T) {
	emp := &entity.Employee{ID: "e1", Salary: salary(60_000)}
	asg := &entity.ProjectEmployee{
		ID:         "a1",
		EmployeeID: "e1",
		Allocation: decimal.NewFromInt(50),
		Hours:      decimal.NullDecimal{Decimal: decimal.NewFromInt(500), Valid: true},
	}

	byAlloc := finance.EmployeeCost(finance.ModelAllocation, emp, asg)
	byHours := finance.EmployeeCost(finance.ModelHours, emp, asg)

	assert.True(t, decimal.NewFromInt(30_000).Equal(byAlloc))
	assert.True(t, decimal.NewFromInt(15_000).Equal(byHours),
		"500 h × tarifa 30 = 15.000, obtuvo %s", byHours)
}

func TestEmployeeCost_EntradasNil(t *testing.T) {
	assert.True(t, finance.EmployeeCost(finance.ModelAllocation, nil, nil).IsZero())
}
