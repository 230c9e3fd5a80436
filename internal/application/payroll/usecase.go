package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/payroll"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

// UseCase administra recibos de haberes. El desglose siempre se recalcula completo desde las
// entradas con payroll.Compute y se redondea una sola vez antes de persistir.
type UseCase struct {
	entries   repository.PayrollRepository
	employees repository.EmployeeRepository
	tenants   repository.TenantRepository
	generator PayslipGenerator
	defaults  payroll.Percentages
	now       func() time.Time
}

// NewUseCase construye el caso de uso. defaults son los porcentajes de deducción que se
// aplican cuando el request no los informa; quedan guardados en cada recibo.
func NewUseCase(
	entries repository.PayrollRepository,
	employees repository.EmployeeRepository,
	tenants repository.TenantRepository,
	generator PayslipGenerator,
	defaults payroll.Percentages,
) *UseCase {
	return &UseCase{
		entries:   entries,
		employees: employees,
		tenants:   tenants,
		generator: generator,
		defaults:  defaults,
		now:       time.Now,
	}
}

func pick(v *decimal.Decimal, def decimal.Decimal) decimal.Decimal {
	if v == nil {
		return def
	}
	return *v
}

// inputs arma las entradas del cálculo. Los porcentajes que el request no informa se toman
// de fallback: los defaults de config al crear, los guardados en el recibo al editar.
func inputs(in dto.PayrollRequest, fallback payroll.Percentages) (payroll.Inputs, error) {
	pi := payroll.Inputs{
		DaysWorked:       in.DaysWorked,
		UnitRate:         in.UnitRate,
		SeniorityPercent: in.SeniorityPercent,
		FamilyAllowance:  in.FamilyAllowance,
		NonTaxableAmount: in.NonTaxableAmount,
		Bonus:            in.Bonus,
		Advance:          in.Advance,
		Percentages: payroll.Percentages{
			Pension:         pick(in.Percentages.Pension, fallback.Pension),
			LawX:            pick(in.Percentages.LawX, fallback.LawX),
			HealthInsurance: pick(in.Percentages.HealthInsurance, fallback.HealthInsurance),
			Insurance:       pick(in.Percentages.Insurance, fallback.Insurance),
			SolidarityFund:  pick(in.Percentages.SolidarityFund, fallback.SolidarityFund),
		},
	}
	if err := pi.Validate(); err != nil {
		return payroll.Inputs{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return pi, nil
}

func compute(pi payroll.Inputs) (payroll.Breakdown, error) {
	b := payroll.Compute(pi).Rounded()
	if err := b.CheckLimits(); err != nil {
		return payroll.Breakdown{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return b, nil
}

// Preview calcula el desglose sin persistir.
func (uc *UseCase) Preview(_ context.Context, rc tenant.RequestContext, in dto.PayrollRequest) (*dto.PayrollBreakdownResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	pi, err := inputs(in, uc.defaults)
	if err != nil {
		return nil, err
	}
	breakdown, err := compute(pi)
	if err != nil {
		return nil, err
	}
	b := toBreakdownResponse(pi, breakdown)
	return &b, nil
}

func (uc *UseCase) build(ctx context.Context, rc tenant.RequestContext, in dto.PayrollRequest, fallback payroll.Percentages, requireActive bool) (*entity.PayrollEntry, error) {
	if in.EmployeeID <= 0 {
		return nil, domain.Invalid("employee_id", "obligatorio")
	}
	payDate, err := dto.ParseDate("pay_date", in.PayDate)
	if err != nil {
		return nil, err
	}
	pi, err := inputs(in, fallback)
	if err != nil {
		return nil, err
	}
	breakdown, err := compute(pi)
	if err != nil {
		return nil, err
	}
	emp, err := uc.employees.GetByID(ctx, rc.Namespace, in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.Invalid("employee_id", "no existe")
	}
	if requireActive && !emp.Active {
		return nil, domain.Invalid("employee_id", "empleado dado de baja")
	}
	return &entity.PayrollEntry{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName(),
		CategoryName: emp.CategoryName,
		PayDate:      payDate,
		Inputs:       pi,
		Breakdown:    breakdown,
	}, nil
}

// Create calcula y registra un recibo. El empleado debe existir y estar activo.
func (uc *UseCase) Create(ctx context.Context, rc tenant.RequestContext, in dto.PayrollRequest) (*dto.PayrollResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	e, err := uc.build(ctx, rc, in, uc.defaults, true)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	e.CreatedAt, e.UpdatedAt = now, now
	if err := uc.entries.Create(ctx, rc.Namespace, e); err != nil {
		return nil, err
	}
	return toPayrollResponse(e), nil
}

// Update reemplaza las entradas del recibo y recalcula todos los campos derivados. Un
// porcentaje omitido conserva el guardado en el recibo.
func (uc *UseCase) Update(ctx context.Context, rc tenant.RequestContext, id int64, in dto.PayrollRequest) (*dto.PayrollResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	current, err := uc.entries.GetByID(ctx, rc.Namespace, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	e, err := uc.build(ctx, rc, in, current.Inputs.Percentages, current.EmployeeID != in.EmployeeID)
	if err != nil {
		return nil, err
	}
	e.ID = id
	e.CreatedAt = current.CreatedAt
	e.UpdatedAt = uc.now()
	if err := uc.entries.Update(ctx, rc.Namespace, e); err != nil {
		return nil, err
	}
	return toPayrollResponse(e), nil
}

// Delete elimina un recibo.
func (uc *UseCase) Delete(ctx context.Context, rc tenant.RequestContext, id int64) error {
	if err := rc.Check(); err != nil {
		return err
	}
	return uc.entries.Delete(ctx, rc.Namespace, id)
}

// Get obtiene un recibo.
func (uc *UseCase) Get(ctx context.Context, rc tenant.RequestContext, id int64) (*dto.PayrollResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	e, err := uc.entries.GetByID(ctx, rc.Namespace, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return toPayrollResponse(e), nil
}

// List lista recibos filtrados por empleado y rango de fechas.
func (uc *UseCase) List(ctx context.Context, rc tenant.RequestContext, in dto.PayrollFilterRequest) (*dto.PayrollListResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	in.DefaultPage()
	from, err := dto.ParseOptionalDate("from", in.From)
	if err != nil {
		return nil, err
	}
	to, err := dto.ParseOptionalDate("to", in.To)
	if err != nil {
		return nil, err
	}
	list, total, err := uc.entries.List(ctx, rc.Namespace, repository.PayrollFilter{
		EmployeeID: in.EmployeeID, From: from, To: to, Limit: in.Limit, Offset: in.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.PayrollResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toPayrollResponse(e))
	}
	return &dto.PayrollListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// Payslip genera el PDF del recibo. Devuelve los bytes y un nombre de archivo sugerido.
func (uc *UseCase) Payslip(ctx context.Context, rc tenant.RequestContext, id int64) ([]byte, string, error) {
	if err := rc.Check(); err != nil {
		return nil, "", err
	}
	e, err := uc.entries.GetByID(ctx, rc.Namespace, id)
	if err != nil {
		return nil, "", err
	}
	if e == nil {
		return nil, "", domain.ErrNotFound
	}
	emp, err := uc.employees.GetByID(ctx, rc.Namespace, e.EmployeeID)
	if err != nil {
		return nil, "", err
	}
	if emp == nil {
		return nil, "", fmt.Errorf("%w: empleado %d del recibo %d", domain.ErrConsistencyViolation, e.EmployeeID, id)
	}
	employer, err := uc.tenants.GetByID(ctx, rc.TenantID)
	if err != nil {
		return nil, "", err
	}
	if employer == nil {
		return nil, "", domain.ErrUnauthorized
	}
	pdf, err := uc.generator.GeneratePayslipPDF(ctx, employer, emp, e)
	if err != nil {
		return nil, "", fmt.Errorf("payslip: %w", err)
	}
	return pdf, fmt.Sprintf("recibo-%d-%s.pdf", id, e.PayDate.Format("2006-01")), nil
}

func toBreakdownResponse(in payroll.Inputs, b payroll.Breakdown) dto.PayrollBreakdownResponse {
	deductions := make([]dto.DeductionResponse, 0, len(b.Deductions))
	for _, d := range b.Deductions {
		deductions = append(deductions, dto.DeductionResponse{Code: d.Code, Percent: d.Percent, Amount: d.Amount})
	}
	return dto.PayrollBreakdownResponse{
		Base:            b.Base,
		SeniorityAmount: b.SeniorityAmount,
		FamilyAllowance: in.FamilyAllowance,
		NonTaxable:      in.NonTaxableAmount,
		Bonus:           in.Bonus,
		GrossPay:        b.GrossPay,
		Deductions:      deductions,
		TotalDeductions: b.TotalDeductions,
		NetPay:          b.NetPay,
		Advance:         b.Advance,
		FinalPayable:    b.FinalPayable,
	}
}

func toPayrollResponse(e *entity.PayrollEntry) *dto.PayrollResponse {
	return &dto.PayrollResponse{
		ID:               e.ID,
		EmployeeID:       e.EmployeeID,
		EmployeeName:     e.EmployeeName,
		CategoryName:     e.CategoryName,
		PayDate:          dto.FormatDate(e.PayDate),
		DaysWorked:       e.Inputs.DaysWorked,
		UnitRate:         e.Inputs.UnitRate,
		SeniorityPercent: e.Inputs.SeniorityPercent,
		Breakdown:        toBreakdownResponse(e.Inputs, e.Breakdown),
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}
