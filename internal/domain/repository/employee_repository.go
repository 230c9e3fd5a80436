package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

// EmployeeRepository define el puerto de persistencia para empleados.
// Deactivate es el único borrado: los empleados nunca desaparecen.
type EmployeeRepository interface {
	Create(ctx context.Context, ns tenant.Namespace, e *entity.Employee) error
	GetByID(ctx context.Context, ns tenant.Namespace, id int64) (*entity.Employee, error)
	List(ctx context.Context, ns tenant.Namespace, includeInactive bool, limit, offset int) ([]*entity.Employee, int64, error)
	Update(ctx context.Context, ns tenant.Namespace, e *entity.Employee) error
	Deactivate(ctx context.Context, ns tenant.Namespace, id int64) error
}
