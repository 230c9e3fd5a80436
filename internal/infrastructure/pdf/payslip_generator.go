// Package pdf genera el recibo de haberes en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  EMPLEADOR: Razón social + CUIT  │  RECIBO N° + Período      │
//	│  EMPLEADO: Apellido, Nombre + CUIL + Categoría + Ingreso     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONCEPTOS: Concepto | Cantidad/% | Haberes | Descuentos     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Bruto / Descuentos / Neto / Anticipo / A cobrar    │
//	│  FIRMAS                                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	apppayroll "github.com/jhoicas/Gestion-api/internal/application/payroll"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/payroll"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// etiquetas de las deducciones en el recibo.
var deductionLabels = map[string]string{
	payroll.DeductionPension:         "Jubilación",
	payroll.DeductionLawX:            "Ley 19.032",
	payroll.DeductionHealthInsurance: "Obra social",
	payroll.DeductionInsurance:       "Seguro",
	payroll.DeductionSolidarityFund:  "Fondo solidario",
}

var _ apppayroll.PayslipGenerator = (*MarotoPayslipGenerator)(nil)

// MarotoPayslipGenerator implementa payroll.PayslipGenerator usando Maroto v2.
type MarotoPayslipGenerator struct{}

// NewMarotoPayslipGenerator construye el generador.
func NewMarotoPayslipGenerator() *MarotoPayslipGenerator { return &MarotoPayslipGenerator{} }

// GeneratePayslipPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPayslipGenerator) GeneratePayslipPDF(
	_ context.Context,
	employer *entity.Tenant,
	employee *entity.Employee,
	entry *entity.PayrollEntry,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de haberes", true).
		WithAuthor(employer.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(employer, entry))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(employeeRow(employee))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(conceptHeaderRow())
	for _, r := range conceptRows(entry) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(entry.Breakdown))
	m.AddRows(line.NewRow(20))
	m.AddRows(signatureRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(employer *entity.Tenant, entry *entity.PayrollEntry) core.Row {
	legal := nonEmpty(employer.LegalName, employer.Name)
	return row.New(18).Add(
		col.New(7).Add(
			text.New(legal, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("CUIT: "+nonEmpty(employer.TaxID, "-")+"   "+nonEmpty(employer.Address, ""),
				props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("RECIBO DE HABERES", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %06d", entry.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha de pago: "+entry.PayDate.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func employeeRow(e *entity.Employee) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("EMPLEADO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(e.FullName(), props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("CUIL: %s   |   Categoría: %s   |   Ingreso: %s",
				nonEmpty(e.CUIL, "-"),
				nonEmpty(e.CategoryName, "-"),
				e.HireDate.Format("02/01/2006"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func conceptHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Concepto", 5, align.Left),
		h("Cant. / %", 2, align.Center),
		h("Haberes", 2, align.Right),
		h("Descuentos", 3, align.Right),
	)
}

type concept struct {
	label     string
	qty       string
	earning   decimal.Decimal
	deduction decimal.Decimal
}

func conceptRows(e *entity.PayrollEntry) []core.Row {
	in, b := e.Inputs, e.Breakdown
	concepts := []concept{
		{label: "Sueldo básico", qty: in.DaysWorked.String() + " días", earning: b.Base},
		{label: "Antigüedad", qty: in.SeniorityPercent.String() + "%", earning: b.SeniorityAmount},
		{label: "Asignación familiar", earning: in.FamilyAllowance},
		{label: "No remunerativo", earning: in.NonTaxableAmount},
		{label: "Premio", earning: in.Bonus},
	}
	for _, d := range b.Deductions {
		concepts = append(concepts, concept{label: deductionLabels[d.Code], qty: d.Percent.String() + "%", deduction: d.Amount})
	}

	rows := make([]core.Row, 0, len(concepts))
	for _, c := range concepts {
		if c.earning.IsZero() && c.deduction.IsZero() {
			continue
		}
		rows = append(rows, row.New(6).Add(
			col.New(5).Add(text.New(c.label, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(c.qty, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(moneyOrBlank(c.earning), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(moneyOrBlank(c.deduction), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func totalsRow(b payroll.Breakdown) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(30).Add(
		col.New(4),
		col.New(4).Add(
			label("Total bruto:"),
			label("Total descuentos:"),
			label("Neto:"),
			label("Anticipo:"),
			text.New("A COBRAR:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2}),
		),
		col.New(4).Add(
			value(formatMoney(b.GrossPay)),
			value(formatMoney(b.TotalDeductions)),
			value(formatMoney(b.NetPay)),
			value(formatMoney(b.Advance)),
			text.New(formatMoney(b.FinalPayable), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1}),
		),
	)
}

func signatureRow() core.Row {
	sign := func(label string) core.Col {
		return col.New(6).Add(text.New("______________________\n"+label, props.Text{
			Size: 8, Align: align.Center, Color: colorGray,
		}))
	}
	return row.New(12).Add(sign("Firma del empleador"), sign("Firma del empleado"))
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func moneyOrBlank(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return formatMoney(d)
}

// formatMoney formatea con separador de miles "." y decimales ",": 22500.5 → "$22.500,50".
func formatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + "$" + string(buf) + "," + frac
}
