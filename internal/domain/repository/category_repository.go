package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

// CategoryRepository define el puerto de persistencia para categorías.
type CategoryRepository interface {
	Create(ctx context.Context, ns tenant.Namespace, c *entity.Category) error
	List(ctx context.Context, ns tenant.Namespace) ([]*entity.Category, error)
	Exists(ctx context.Context, ns tenant.Namespace, id int64) (bool, error)
	Delete(ctx context.Context, ns tenant.Namespace, id int64) error
}
