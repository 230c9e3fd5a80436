package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

// PayrollFilter filtros de listado de recibos.
type PayrollFilter struct {
	EmployeeID    int64
	From, To      *time.Time
	Limit, Offset int
}

// PayrollRepository define el puerto de persistencia para recibos de haberes.
// Update reemplaza entradas y desglose completos.
type PayrollRepository interface {
	Create(ctx context.Context, ns tenant.Namespace, e *entity.PayrollEntry) error
	GetByID(ctx context.Context, ns tenant.Namespace, id int64) (*entity.PayrollEntry, error)
	Update(ctx context.Context, ns tenant.Namespace, e *entity.PayrollEntry) error
	Delete(ctx context.Context, ns tenant.Namespace, id int64) error
	List(ctx context.Context, ns tenant.Namespace, f PayrollFilter) ([]*entity.PayrollEntry, int64, error)
}
