package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// LedgerEmployeeCost línea itemizada del ledger: costo por horas registradas
// de una asignación. Solo se itemizan contribuciones > 0; las de costo cero
// existen conceptualmente pero no ocupan línea.
type LedgerEmployeeCost struct {
	AssignmentID string
	EmployeeID   string
	EmployeeName string
	Hours        decimal.Decimal
	Cost         decimal.Decimal
}

// ProjectLedger desglose financiero itemizado de un proyecto. A diferencia
// del rollup del dashboard, los costos de empleados usan el modelo por horas
// realmente registradas.
type ProjectLedger struct {
	ProjectID string

	EmployeeCosts []LedgerEmployeeCost
	EmployeeTotal decimal.Decimal

	// OtherExpensesByCategory gastos recurrentes prorrateados, agrupados y
	// sumados por categoría.
	OtherExpensesByCategory map[string]decimal.Decimal
	OtherExpensesTotal      decimal.Decimal

	TotalExpense decimal.Decimal

	Budget     decimal.NullDecimal
	OverBudget bool // TotalExpense > Budget, sin banda de tolerancia; false si no hay presupuesto
}

// BuildProjectLedger construye el ledger de un proyecto a partir de sus
// asignaciones (pre-unidas con empleado) y sus gastos recurrentes.
func BuildProjectLedger(
	project *entity.Project,
	views []AssignmentView,
	expenses []entity.ProjectExpense,
	now time.Time,
) ProjectLedger {
	ledger := ProjectLedger{
		EmployeeTotal:           decimal.Zero,
		OtherExpensesTotal:      decimal.Zero,
		TotalExpense:            decimal.Zero,
		OtherExpensesByCategory: make(map[string]decimal.Decimal),
	}
	if project == nil {
		return ledger
	}
	ledger.ProjectID = project.ID
	ledger.Budget = project.Budget

	for _, v := range views {
		if v.Assignment.ProjectID != project.ID {
			continue
		}
		var cost decimal.Decimal
		if v.EmployeeFound {
			cost = HoursCost(v.Employee.Salary, v.Assignment.Hours)
		} else {
			cost = decimal.Zero
		}
		if !cost.IsPositive() {
			continue
		}
		hours := decimal.Zero
		if v.Assignment.Hours.Valid {
			hours = v.Assignment.Hours.Decimal
		}
		ledger.EmployeeCosts = append(ledger.EmployeeCosts, LedgerEmployeeCost{
			AssignmentID: v.Assignment.ID,
			EmployeeID:   v.Assignment.EmployeeID,
			EmployeeName: v.Employee.FullName(),
			Hours:        hours,
			Cost:         cost,
		})
		ledger.EmployeeTotal = ledger.EmployeeTotal.Add(cost)
	}

	for i := range expenses {
		e := &expenses[i]
		if e.ProjectID != project.ID {
			continue
		}
		cost := ProratedCost(e, project.StartDate, now)
		prev, ok := ledger.OtherExpensesByCategory[e.Category]
		if !ok {
			prev = decimal.Zero
		}
		ledger.OtherExpensesByCategory[e.Category] = prev.Add(cost)
		ledger.OtherExpensesTotal = ledger.OtherExpensesTotal.Add(cost)
	}

	ledger.TotalExpense = ledger.EmployeeTotal.Add(ledger.OtherExpensesTotal)
	ledger.OverBudget = project.Budget.Valid && ledger.TotalExpense.GreaterThan(project.Budget.Decimal)
	return ledger
}
