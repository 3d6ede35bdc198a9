package finance

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// daysPerMonth divisor fijo del prorrateo: un "mes" son 30 días.
const daysPerMonth = 30.0

// ProratedCost convierte el costo mensual recurrente de un gasto en un costo
// total sobre su ventana efectiva:
//
//   - inicio efectivo = max(gasto.StartDate, projectStart): un gasto no puede
//     facturarse antes de que exista el proyecto.
//   - fin efectivo = gasto.EndDate, o "now" si el gasto sigue abierto.
//   - meses = max(1, ceil(días / 30)): siempre se factura al menos un mes y
//     los meses parciales redondean hacia arriba (nunca se sub-factura).
//
// Rangos degenerados (fin efectivo antes del inicio efectivo) también caen en
// el piso de 1 mes: política deliberada, no un bug — cambiarla cambiaría las
// cifras financieras reportadas.
func ProratedCost(expense *entity.ProjectExpense, projectStart, now time.Time) decimal.Decimal {
	if expense == nil {
		return decimal.Zero
	}

	effectiveStart := expense.StartDate
	if projectStart.After(effectiveStart) {
		effectiveStart = projectStart
	}

	effectiveEnd := now
	if expense.EndDate != nil {
		effectiveEnd = *expense.EndDate
	}

	days := effectiveEnd.Sub(effectiveStart).Hours() / 24
	months := int64(math.Ceil(days / daysPerMonth))
	if months < 1 {
		months = 1
	}

	return expense.MonthlyCost.Mul(decimal.NewFromInt(months))
}
