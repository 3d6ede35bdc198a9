package dto

import "github.com/shopspring/decimal"

// LedgerEmployeeCostDTO línea itemizada de costo por empleado (modelo por
// horas registradas).
type LedgerEmployeeCostDTO struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Hours        decimal.Decimal `json:"hours"`
	Cost         decimal.Decimal `json:"cost"`
}

// ProjectLedgerDTO respuesta de GET /api/projects/{id}/ledger: desglose
// financiero itemizado de un proyecto.
type ProjectLedgerDTO struct {
	ProjectID string `json:"project_id"`

	EmployeeCosts []LedgerEmployeeCostDTO `json:"employee_costs"`
	EmployeeTotal decimal.Decimal         `json:"employee_total"`

	OtherExpensesByCategory map[string]decimal.Decimal `json:"other_expenses_by_category"`
	OtherExpensesTotal      decimal.Decimal            `json:"other_expenses_total"`

	TotalExpense decimal.Decimal  `json:"total_expense"`
	Budget       *decimal.Decimal `json:"budget,omitempty"`
	OverBudget   bool             `json:"over_budget"`
}
