// Package pdf genera la representación gráfica de una factura de proyecto.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del proyecto  │  N° Factura + Fecha         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Costos de personal (empleado | horas | costo)       │
//	│  TABLA: Otros gastos prorrateados por categoría             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Personal / Otros gastos / TOTAL                   │
//	│  FOOTER: presupuesto y alerta de sobrecosto + notas         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appbilling "github.com/jhoicas/Gestion-api/internal/application/billing"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes. El detalle itemizado
// sale del ledger del proyecto: una fila por empleado y una por categoría de
// gasto prorrateado.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	project *entity.Project,
	ledger *dto.ProjectLedgerDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura de Proyecto", true).
		WithAuthor(project.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice, project))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Costos de personal
	m.AddRows(sectionTitleRow("COSTOS DE PERSONAL (horas registradas)"))
	m.AddRows(employeeHeaderRow())
	for _, r := range employeeRows(ledger.EmployeeCosts) {
		m.AddRows(r)
	}
	m.AddRows(subtotalRow("Subtotal personal:", ledger.EmployeeTotal.StringFixed(2)))

	// Otros gastos por categoría
	m.AddRows(sectionTitleRow("OTROS GASTOS (prorrateados a la fecha)"))
	for _, r := range expenseRows(ledger.OtherExpensesByCategory) {
		m.AddRows(r)
	}
	m.AddRows(subtotalRow("Subtotal otros gastos:", ledger.OtherExpensesTotal.StringFixed(2)))

	// Totales
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(invoice))

	// Presupuesto y notas
	for _, r := range footerRows(invoice, ledger) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del proyecto (izq) y N° Factura + Fecha (der).
func headerRow(invoice *entity.Invoice, project *entity.Project) core.Row {
	fecha := invoice.IssueDate.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(project.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Proyecto: "+project.ID, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA DE PROYECTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

// employeeHeaderRow: cabecera de la tabla de costos de personal.
func employeeHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Empleado", 6, align.Left),
		h("Horas", 3, align.Right),
		h("Costo", 3, align.Right),
	)
}

// employeeRows: una fila por empleado con costo positivo.
func employeeRows(costs []dto.LedgerEmployeeCostDTO) []core.Row {
	result := make([]core.Row, 0, len(costs))
	for _, c := range costs {
		result = append(result, row.New(6).Add(
			col.New(6).Add(text.New(c.EmployeeName, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(3).Add(text.New(c.Hours.StringFixed(1), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(3).Add(text.New("$"+c.Cost.StringFixed(2), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// expenseRows: una fila por categoría de gasto, en orden alfabético para que
// el documento sea estable entre generaciones.
func expenseRows(byCategory map[string]decimal.Decimal) []core.Row {
	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	result := make([]core.Row, 0, len(categories))
	for _, c := range categories {
		result = append(result, row.New(6).Add(
			col.New(9).Add(text.New(c, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(3).Add(text.New("$"+byCategory[c].StringFixed(2), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

func subtotalRow(label, amount string) core.Row {
	return row.New(7).Add(
		col.New(9).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 2,
		})),
		col.New(3).Add(text.New("$"+amount, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

// totalsRow: total facturado en grande.
func totalsRow(invoice *entity.Invoice) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL FACTURADO:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 3, Right: 2,
		})),
		col.New(3).Add(text.New("$"+invoice.Amount.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 3, Right: 1,
		})),
	)
}

// footerRows: presupuesto del proyecto, alerta de sobrecosto y notas.
func footerRows(invoice *entity.Invoice, ledger *dto.ProjectLedgerDTO) []core.Row {
	rows := []core.Row{line.NewRow(3)}

	if ledger.Budget != nil {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Presupuesto del proyecto: $"+ledger.Budget.StringFixed(2), props.Text{
				Size: 8, Color: colorGray, Top: 1,
			}),
		)))
	}
	if ledger.OverBudget {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("ATENCIÓN: el gasto acumulado supera el presupuesto del proyecto.", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorAlert, Top: 1,
			}),
		)))
	}
	if invoice.Notes != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("Notas: "+invoice.Notes, props.Text{
				Size: 7.5, Color: colorGray, Top: 2,
			}),
		)))
	}
	return rows
}
