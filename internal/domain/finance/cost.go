// Package finance contiene los servicios de dominio financieros: costo de
// asignaciones, prorrateo de gastos recurrentes y los agregados (rollup del
// dashboard y ledger por proyecto).
//
// Todo es puro: cada función depende solo de sus argumentos — incluida la
// fecha "now", que siempre se recibe como parámetro para que los tests sean
// deterministas. Todo el dinero es decimal, jamás float.
package finance

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// StandardAnnualHours horas laborales anuales de referencia para la tarifa
// horaria: 40 h/semana × 50 semanas. Constante fija, no configurable.
const StandardAnnualHours = 2000

// CostModel identifica cuál de los dos modelos de costo se aplica.
//
// Los dos modelos coexisten a propósito — son una inconsistencia de dominio
// real, no un accidente: el rollup anual del dashboard usa el modelo por
// allocation y el ledger por proyecto usa el modelo por horas registradas.
// Unificarlos cambiaría silenciosamente las cifras reportadas.
type CostModel int

const (
	// ModelAllocation costo = salario anual × (allocation / 100).
	// Usado en agregados anuales / de portafolio.
	ModelAllocation CostModel = iota
	// ModelHours costo = horas registradas × (salario / StandardAnnualHours).
	// Usado en el ledger por proyecto, donde existen horas reales.
	ModelHours
)

var (
	hundred             = decimal.NewFromInt(100)
	standardAnnualHours = decimal.NewFromInt(StandardAnnualHours)
)

// AllocationCost calcula la contribución de costo anual de una asignación por
// porcentaje de dedicación. Sin salario la contribución es cero (nunca error,
// nunca NaN); entradas negativas se tratan como cero.
func AllocationCost(salary decimal.NullDecimal, allocation decimal.Decimal) decimal.Decimal {
	if !salary.Valid || salary.Decimal.IsNegative() {
		return decimal.Zero
	}
	if allocation.IsNegative() {
		return decimal.Zero
	}
	return salary.Decimal.Mul(allocation).Div(hundred)
}

// HoursCost calcula la contribución de costo por horas realmente registradas:
// tarifa horaria = salario / StandardAnnualHours. Sin salario o sin horas la
// contribución es cero; entradas negativas se tratan como cero.
func HoursCost(salary decimal.NullDecimal, hours decimal.NullDecimal) decimal.Decimal {
	if !salary.Valid || salary.Decimal.IsNegative() {
		return decimal.Zero
	}
	if !hours.Valid || hours.Decimal.IsNegative() {
		return decimal.Zero
	}
	rate := salary.Decimal.Div(standardAnnualHours)
	return hours.Decimal.Mul(rate)
}

// EmployeeCost calcula el costo de una asignación bajo el modelo indicado.
// Un modelo desconocido contribuye cero, nunca error.
func EmployeeCost(model CostModel, employee *entity.Employee, assignment *entity.ProjectEmployee) decimal.Decimal {
	if employee == nil || assignment == nil {
		return decimal.Zero
	}
	switch model {
	case ModelAllocation:
		return AllocationCost(employee.Salary, assignment.Allocation)
	case ModelHours:
		return HoursCost(employee.Salary, assignment.Hours)
	}
	return decimal.Zero
}
