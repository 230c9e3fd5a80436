package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/payroll"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

var _ repository.PayrollRepository = (*PayrollRepo)(nil)

// PayrollRepo implementación de PayrollRepository (usable con pool o tx).
// Guarda entradas y desglose ya redondeado en columnas planas de payroll_entries.
type PayrollRepo struct {
	ex *Executor
}

// NewPayrollRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPayrollRepository(q Querier) *PayrollRepo {
	return &PayrollRepo{ex: NewExecutor(q)}
}

// columnas en orden de persistencia (sin id ni timestamps).
const payrollValueColumns = `employee_id, pay_date,
	days_worked, unit_rate, seniority_percent, family_allowance, non_taxable_amount, bonus, advance,
	pension_percent, law_x_percent, health_insurance_percent, insurance_percent, solidarity_fund_percent,
	base_amount, seniority_amount, gross_pay,
	pension_amount, law_x_amount, health_insurance_amount, insurance_amount, solidarity_fund_amount,
	total_deductions, net_pay, final_payable`

const payrollSelect = `
	SELECT pe.id, pe.employee_id, e.surname || ', ' || e.name, COALESCE(c.name, ''), pe.pay_date,
		pe.days_worked, pe.unit_rate, pe.seniority_percent, pe.family_allowance, pe.non_taxable_amount,
		pe.bonus, pe.advance,
		pe.pension_percent, pe.law_x_percent, pe.health_insurance_percent, pe.insurance_percent,
		pe.solidarity_fund_percent,
		pe.base_amount, pe.seniority_amount, pe.gross_pay,
		pe.pension_amount, pe.law_x_amount, pe.health_insurance_amount, pe.insurance_amount,
		pe.solidarity_fund_amount,
		pe.total_deductions, pe.net_pay, pe.final_payable, pe.created_at, pe.updated_at
	FROM {payroll_entries} pe
	JOIN {employees} e ON e.id = pe.employee_id
	LEFT JOIN {categories} c ON c.id = e.category_id`

// amounts devuelve los importes de deducción en el orden de las columnas.
func amounts(b payroll.Breakdown) [5]decimal.Decimal {
	var out [5]decimal.Decimal
	for i, code := range deductionCodes {
		if d, ok := b.Deduction(code); ok {
			out[i] = d.Amount
		}
	}
	return out
}

var deductionCodes = [5]string{
	payroll.DeductionPension, payroll.DeductionLawX, payroll.DeductionHealthInsurance,
	payroll.DeductionInsurance, payroll.DeductionSolidarityFund,
}

func payrollValues(e *entity.PayrollEntry) []any {
	in, b := e.Inputs, e.Breakdown
	a := amounts(b)
	return []any{
		e.EmployeeID, e.PayDate,
		in.DaysWorked, in.UnitRate, in.SeniorityPercent, in.FamilyAllowance, in.NonTaxableAmount, in.Bonus, in.Advance,
		in.Percentages.Pension, in.Percentages.LawX, in.Percentages.HealthInsurance, in.Percentages.Insurance,
		in.Percentages.SolidarityFund,
		b.Base, b.SeniorityAmount, b.GrossPay,
		a[0], a[1], a[2], a[3], a[4],
		b.TotalDeductions, b.NetPay, b.FinalPayable,
	}
}

func scanPayroll(row pgx.Row) (*entity.PayrollEntry, error) {
	var (
		e   entity.PayrollEntry
		a   [5]decimal.Decimal
		in  = &e.Inputs
		pct = &e.Inputs.Percentages
		b   = &e.Breakdown
	)
	err := row.Scan(&e.ID, &e.EmployeeID, &e.EmployeeName, &e.CategoryName, &e.PayDate,
		&in.DaysWorked, &in.UnitRate, &in.SeniorityPercent, &in.FamilyAllowance, &in.NonTaxableAmount,
		&in.Bonus, &in.Advance,
		&pct.Pension, &pct.LawX, &pct.HealthInsurance, &pct.Insurance, &pct.SolidarityFund,
		&b.Base, &b.SeniorityAmount, &b.GrossPay,
		&a[0], &a[1], &a[2], &a[3], &a[4],
		&b.TotalDeductions, &b.NetPay, &b.FinalPayable, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	percents := [5]decimal.Decimal{pct.Pension, pct.LawX, pct.HealthInsurance, pct.Insurance, pct.SolidarityFund}
	b.Deductions = make([]payroll.Deduction, 0, len(deductionCodes))
	for i, code := range deductionCodes {
		b.Deductions = append(b.Deductions, payroll.Deduction{Code: code, Percent: percents[i], Amount: a[i]})
	}
	b.Advance = in.Advance
	return &e, nil
}

func placeholders(from, n int) string {
	p := make([]string, n)
	for i := range p {
		p[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(p, ", ")
}

// Create persiste un recibo con su desglose.
func (r *PayrollRepo) Create(ctx context.Context, ns tenant.Namespace, e *entity.PayrollEntry) error {
	vals := append(payrollValues(e), e.CreatedAt, e.UpdatedAt)
	err := r.ex.QueryRow(ctx, ns,
		`INSERT INTO {payroll_entries} (`+payrollValueColumns+`, created_at, updated_at)
		VALUES (`+placeholders(1, len(vals))+`) RETURNING id`,
		vals...,
	).Scan(&e.ID)
	if err != nil {
		return mapError("insert payroll entry", err)
	}
	return nil
}

// GetByID obtiene un recibo con datos del empleado. nil si no existe.
func (r *PayrollRepo) GetByID(ctx context.Context, ns tenant.Namespace, id int64) (*entity.PayrollEntry, error) {
	e, err := scanPayroll(r.ex.QueryRow(ctx, ns, payrollSelect+` WHERE pe.id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payroll entry: %w", err)
	}
	return e, nil
}

// Update reemplaza entradas y desglose completos del recibo.
func (r *PayrollRepo) Update(ctx context.Context, ns tenant.Namespace, e *entity.PayrollEntry) error {
	cols := strings.Split(payrollValueColumns, ",")
	sets := make([]string, 0, len(cols)+1)
	for i, c := range cols {
		sets = append(sets, fmt.Sprintf("%s = $%d", strings.TrimSpace(c), i+2))
	}
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(cols)+2))
	args := append([]any{e.ID}, payrollValues(e)...)
	args = append(args, e.UpdatedAt)

	n, err := r.ex.Exec(ctx, ns, `UPDATE {payroll_entries} SET `+strings.Join(sets, ", ")+` WHERE id = $1`, args...)
	if err != nil {
		return mapError("update payroll entry", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un recibo.
func (r *PayrollRepo) Delete(ctx context.Context, ns tenant.Namespace, id int64) error {
	return r.ex.Delete(ctx, ns, entity.TablePayrollEntries, id)
}

// List lista recibos filtrados, más recientes primero.
func (r *PayrollRepo) List(ctx context.Context, ns tenant.Namespace, f repository.PayrollFilter) ([]*entity.PayrollEntry, int64, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.EmployeeID > 0 {
		add("pe.employee_id = $%d", f.EmployeeID)
	}
	if f.From != nil {
		add("pe.pay_date >= $%d", *f.From)
	}
	if f.To != nil {
		add("pe.pay_date <= $%d", *f.To)
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	total, err := r.ex.Count(ctx, ns, `SELECT count(*) FROM {payroll_entries} pe`+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("count payroll entries: %w", err)
	}
	page := fmt.Sprintf(" ORDER BY pe.pay_date DESC, pe.id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	rows, err := r.ex.Query(ctx, ns, payrollSelect+where+page, append(args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list payroll entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.PayrollEntry
	for rows.Next() {
		e, err := scanPayroll(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan payroll entry: %w", err)
		}
		list = append(list, e)
	}
	return list, total, rows.Err()
}
