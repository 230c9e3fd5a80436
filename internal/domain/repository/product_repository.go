package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Update nunca escribe stock: el stock solo cambia vía StockRepository.
type ProductRepository interface {
	Create(ctx context.Context, ns tenant.Namespace, product *entity.Product) error
	GetByID(ctx context.Context, ns tenant.Namespace, id int64) (*entity.Product, error)
	List(ctx context.Context, ns tenant.Namespace, onlyActive bool, limit, offset int) ([]*entity.Product, int64, error)
	Update(ctx context.Context, ns tenant.Namespace, product *entity.Product) error
	Delete(ctx context.Context, ns tenant.Namespace, id int64) error
}
