package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

// ProviderRepository define el puerto de persistencia para proveedores.
type ProviderRepository interface {
	Create(ctx context.Context, ns tenant.Namespace, p *entity.Provider) error
	GetByID(ctx context.Context, ns tenant.Namespace, id int64) (*entity.Provider, error)
	List(ctx context.Context, ns tenant.Namespace, limit, offset int) ([]*entity.Provider, int64, error)
	Update(ctx context.Context, ns tenant.Namespace, p *entity.Provider) error
	Delete(ctx context.Context, ns tenant.Namespace, id int64) error
}

// ClientRepository define el puerto de persistencia para clientes.
type ClientRepository interface {
	Create(ctx context.Context, ns tenant.Namespace, c *entity.Client) error
	GetByID(ctx context.Context, ns tenant.Namespace, id int64) (*entity.Client, error)
	List(ctx context.Context, ns tenant.Namespace, limit, offset int) ([]*entity.Client, int64, error)
	Update(ctx context.Context, ns tenant.Namespace, c *entity.Client) error
	Delete(ctx context.Context, ns tenant.Namespace, id int64) error
}
