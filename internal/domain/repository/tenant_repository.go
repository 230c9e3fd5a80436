package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// TenantRepository define el puerto del registro de tenants (schema público).
type TenantRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Tenant, error)
	Update(ctx context.Context, tenant *entity.Tenant) error
}
