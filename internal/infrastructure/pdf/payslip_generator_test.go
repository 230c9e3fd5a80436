package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/payroll"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$22.500,00", formatMoney(decimal.NewFromInt(22500)))
	assert.Equal(t, "$1.000.000,50", formatMoney(decimal.RequireFromString("1000000.5")))
	assert.Equal(t, "$0,25", formatMoney(decimal.RequireFromString("0.25")))
	assert.Equal(t, "-$150,00", formatMoney(decimal.NewFromInt(-150)))
}

func TestGeneratePayslipPDF(t *testing.T) {
	in := payroll.Inputs{
		DaysWorked: decimal.NewFromInt(20), UnitRate: decimal.NewFromInt(1000),
		SeniorityPercent: decimal.NewFromInt(10), FamilyAllowance: decimal.NewFromInt(500),
		Percentages: payroll.Percentages{Pension: decimal.NewFromInt(11), LawX: decimal.NewFromInt(3)},
	}
	entry := &entity.PayrollEntry{
		ID: 12, EmployeeID: 1, PayDate: time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
		Inputs: in, Breakdown: payroll.Compute(in).Rounded(),
	}
	employee := &entity.Employee{ID: 1, Surname: "Pérez", Name: "Ana", CUIL: "27-12345678-0"}
	employer := &entity.Tenant{ID: 1, Name: "Panadería", TaxID: "30-71234567-1"}

	pdf, err := NewMarotoPayslipGenerator().GeneratePayslipPDF(context.Background(), employer, employee, entry)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}
