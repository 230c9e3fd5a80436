package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollPercentages porcentajes de deducción. Al crear, los omitidos toman el valor por defecto
// configurado; al editar, conservan el guardado en el recibo.
type PayrollPercentages struct {
	Pension         *decimal.Decimal `json:"pension"`
	LawX            *decimal.Decimal `json:"law_x"`
	HealthInsurance *decimal.Decimal `json:"health_insurance"`
	Insurance       *decimal.Decimal `json:"insurance"`
	SolidarityFund  *decimal.Decimal `json:"solidarity_fund"`
}

// PayrollRequest entradas crudas de un recibo.
type PayrollRequest struct {
	EmployeeID       int64              `json:"employee_id"`
	PayDate          string             `json:"pay_date"`
	DaysWorked       decimal.Decimal    `json:"days_worked"`
	UnitRate         decimal.Decimal    `json:"unit_rate"`
	SeniorityPercent decimal.Decimal    `json:"seniority_percent"`
	FamilyAllowance  decimal.Decimal    `json:"family_allowance"`
	NonTaxableAmount decimal.Decimal    `json:"non_taxable_amount"`
	Bonus            decimal.Decimal    `json:"bonus"`
	Advance          decimal.Decimal    `json:"advance"`
	Percentages      PayrollPercentages `json:"percentages"`
}

// PayrollFilterRequest query de listado de recibos.
type PayrollFilterRequest struct {
	PageRequest
	EmployeeID int64  `query:"employee_id"`
	From       string `query:"from"`
	To         string `query:"to"`
}

// DeductionResponse una línea de descuento.
type DeductionResponse struct {
	Code    string          `json:"code"`
	Percent decimal.Decimal `json:"percent"`
	Amount  decimal.Decimal `json:"amount"`
}

// PayrollBreakdownResponse desglose calculado.
type PayrollBreakdownResponse struct {
	Base            decimal.Decimal     `json:"base"`
	SeniorityAmount decimal.Decimal     `json:"seniority_amount"`
	FamilyAllowance decimal.Decimal     `json:"family_allowance"`
	NonTaxable      decimal.Decimal     `json:"non_taxable_amount"`
	Bonus           decimal.Decimal     `json:"bonus"`
	GrossPay        decimal.Decimal     `json:"gross_pay"`
	Deductions      []DeductionResponse `json:"deductions"`
	TotalDeductions decimal.Decimal     `json:"total_deductions"`
	NetPay          decimal.Decimal     `json:"net_pay"`
	Advance         decimal.Decimal     `json:"advance"`
	FinalPayable    decimal.Decimal     `json:"final_payable"`
}

// PayrollResponse recibo persistido.
type PayrollResponse struct {
	ID               int64                    `json:"id"`
	EmployeeID       int64                    `json:"employee_id"`
	EmployeeName     string                   `json:"employee_name"`
	CategoryName     string                   `json:"category_name"`
	PayDate          string                   `json:"pay_date"`
	DaysWorked       decimal.Decimal          `json:"days_worked"`
	UnitRate         decimal.Decimal          `json:"unit_rate"`
	SeniorityPercent decimal.Decimal          `json:"seniority_percent"`
	Breakdown        PayrollBreakdownResponse `json:"breakdown"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

// PayrollListResponse lista paginada de recibos.
type PayrollListResponse struct {
	Items []PayrollResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
