// Package payroll implementa el cálculo de haberes: una cascada fija de pasos donde cada
// resultado alimenta al siguiente. Todo el cálculo es decimal; el redondeo a centavos se
// aplica una sola vez, en Rounded, al persistir.
package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Códigos de las deducciones, en el orden en que se aplican.
const (
	DeductionPension         = "pension"          // jubilación
	DeductionLawX            = "law_x"            // ley 19.032
	DeductionHealthInsurance = "health_insurance" // obra social
	DeductionInsurance       = "insurance"        // seguro
	DeductionSolidarityFund  = "solidarity_fund"  // fondo solidario / sindical
)

// Percentages son los porcentajes de deducción de un recibo (se guardan por recibo).
type Percentages struct {
	Pension         decimal.Decimal
	LawX            decimal.Decimal
	HealthInsurance decimal.Decimal
	Insurance       decimal.Decimal
	SolidarityFund  decimal.Decimal
}

func (p Percentages) ordered() []struct {
	code string
	pct  decimal.Decimal
} {
	return []struct {
		code string
		pct  decimal.Decimal
	}{
		{DeductionPension, p.Pension},
		{DeductionLawX, p.LawX},
		{DeductionHealthInsurance, p.HealthInsurance},
		{DeductionInsurance, p.Insurance},
		{DeductionSolidarityFund, p.SolidarityFund},
	}
}

// Inputs son los datos crudos de un período de pago.
type Inputs struct {
	DaysWorked       decimal.Decimal
	UnitRate         decimal.Decimal
	SeniorityPercent decimal.Decimal
	FamilyAllowance  decimal.Decimal
	NonTaxableAmount decimal.Decimal
	Bonus            decimal.Decimal
	Advance          decimal.Decimal
	Percentages      Percentages
}

// Límites de las columnas donde se guarda un recibo. Una entrada que no entra exacta se
// rechaza: si la base de datos la redondeara, el desglose guardado dejaría de derivarse de ella.
const (
	AmountScale  = 2
	PercentScale = 3

	// MaxDaysWorked acota days_worked a un año.
	MaxDaysWorked = 366
)

// MaxAmount es el primer importe que no entra en NUMERIC(14,2).
var MaxAmount = decimal.New(1, 12)

type field struct {
	name  string
	v     decimal.Decimal
	scale int32
	max   decimal.Decimal
}

func (f field) check() error {
	switch {
	case f.v.IsNegative():
		return fmt.Errorf("%s no puede ser negativo", f.name)
	case !f.v.Equal(f.v.Round(f.scale)):
		return fmt.Errorf("%s admite como máximo %d decimales", f.name, f.scale)
	case f.v.GreaterThan(f.max):
		return fmt.Errorf("%s no puede superar %s", f.name, f.max.String())
	}
	return nil
}

// Validate rechaza montos negativos, porcentajes fuera de [0, 100] y valores que no entran
// exactos en las columnas del recibo.
func (in Inputs) Validate() error {
	upToAmount := MaxAmount.Sub(decimal.New(1, -AmountScale))
	fields := []field{
		{"days_worked", in.DaysWorked, AmountScale, decimal.NewFromInt(MaxDaysWorked)},
		{"unit_rate", in.UnitRate, AmountScale, upToAmount},
		{"seniority_percent", in.SeniorityPercent, AmountScale, hundred},
		{"family_allowance", in.FamilyAllowance, AmountScale, upToAmount},
		{"non_taxable_amount", in.NonTaxableAmount, AmountScale, upToAmount},
		{"bonus", in.Bonus, AmountScale, upToAmount},
		{"advance", in.Advance, AmountScale, upToAmount},
	}
	for _, d := range in.Percentages.ordered() {
		fields = append(fields, field{"porcentaje " + d.code, d.pct, PercentScale, hundred})
	}
	for _, f := range fields {
		if err := f.check(); err != nil {
			return err
		}
	}
	return nil
}

// CheckLimits rechaza un desglose cuyos importes no entran en las columnas del recibo.
func (b Breakdown) CheckLimits() error {
	for _, v := range []decimal.Decimal{b.Base, b.SeniorityAmount, b.GrossPay, b.FinalPayable} {
		if v.Abs().GreaterThanOrEqual(MaxAmount) {
			return fmt.Errorf("el importe %s supera el máximo admitido", v.Round(AmountScale).String())
		}
	}
	return nil
}

// Deduction es una línea de descuento del recibo.
type Deduction struct {
	Code    string
	Percent decimal.Decimal
	Amount  decimal.Decimal
}

// Breakdown es el desglose completo de un recibo.
type Breakdown struct {
	Base            decimal.Decimal
	SeniorityAmount decimal.Decimal
	GrossPay        decimal.Decimal
	Deductions      []Deduction
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
	Advance         decimal.Decimal
	FinalPayable    decimal.Decimal
}

// Compute aplica la cascada de haberes. Es una función pura de in.
//
//	base       = días * valor unitario
//	antigüedad = base * %antigüedad / 100
//	bruto      = base + antigüedad + asig. familiar + no remunerativo + premio
//	deducción  = bruto > 0 ? bruto * % / 100 : 0   (por cada porcentaje)
//	neto       = bruto - Σ deducciones
//	cancelación = neto - anticipo
func Compute(in Inputs) Breakdown {
	base := in.DaysWorked.Mul(in.UnitRate)
	seniority := base.Mul(in.SeniorityPercent).Div(hundred)
	gross := base.Add(seniority).Add(in.FamilyAllowance).Add(in.NonTaxableAmount).Add(in.Bonus)

	ordered := in.Percentages.ordered()
	deductions := make([]Deduction, 0, len(ordered))
	total := decimal.Zero
	for _, d := range ordered {
		amount := decimal.Zero
		if gross.IsPositive() {
			amount = gross.Mul(d.pct).Div(hundred)
		}
		deductions = append(deductions, Deduction{Code: d.code, Percent: d.pct, Amount: amount})
		total = total.Add(amount)
	}

	net := gross.Sub(total)
	return Breakdown{
		Base:            base,
		SeniorityAmount: seniority,
		GrossPay:        gross,
		Deductions:      deductions,
		TotalDeductions: total,
		NetPay:          net,
		Advance:         in.Advance,
		FinalPayable:    net.Sub(in.Advance),
	}
}

// Rounded redondea a 2 decimales los importes calculados y vuelve a derivar bruto, total,
// neto y cancelación de los valores redondeados, de modo que las identidades
// bruto = base + antigüedad + adicionales, neto = bruto - total y
// cancelación = neto - anticipo se mantienen exactas.
func (b Breakdown) Rounded() Breakdown {
	out := Breakdown{
		Base:            b.Base.Round(AmountScale),
		SeniorityAmount: b.SeniorityAmount.Round(AmountScale),
		Advance:         b.Advance.Round(AmountScale),
		Deductions:      make([]Deduction, 0, len(b.Deductions)),
		TotalDeductions: decimal.Zero,
	}
	// el bruto es la suma de sus partes ya redondeadas
	additions := b.GrossPay.Sub(b.Base).Sub(b.SeniorityAmount).Round(AmountScale)
	out.GrossPay = out.Base.Add(out.SeniorityAmount).Add(additions)
	for _, d := range b.Deductions {
		amount := d.Amount.Round(AmountScale)
		out.Deductions = append(out.Deductions, Deduction{Code: d.Code, Percent: d.Percent, Amount: amount})
		out.TotalDeductions = out.TotalDeductions.Add(amount)
	}
	out.NetPay = out.GrossPay.Sub(out.TotalDeductions)
	out.FinalPayable = out.NetPay.Sub(out.Advance)
	return out
}

// Deduction busca una línea de descuento por código.
func (b Breakdown) Deduction(code string) (Deduction, bool) {
	for _, d := range b.Deductions {
		if d.Code == code {
			return d, true
		}
	}
	return Deduction{}, false
}
