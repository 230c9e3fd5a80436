package payroll

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// PayslipGenerator genera el recibo de haberes en PDF. Infraestructura implementa esta interfaz.
type PayslipGenerator interface {
	GeneratePayslipPDF(ctx context.Context, employer *entity.Tenant, employee *entity.Employee, entry *entity.PayrollEntry) ([]byte, error)
}
