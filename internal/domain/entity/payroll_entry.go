package entity

import (
	"time"

	"github.com/jhoicas/Gestion-api/internal/domain/payroll"
)

// PayrollEntry es un recibo de haberes: entradas crudas más el desglose calculado.
// Es reemplazable: editar recalcula todos los campos derivados desde las entradas.
type PayrollEntry struct {
	ID           int64
	EmployeeID   int64
	EmployeeName string // solo lectura (join)
	CategoryName string // solo lectura (join)
	PayDate      time.Time
	Inputs       payroll.Inputs
	Breakdown    payroll.Breakdown
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
