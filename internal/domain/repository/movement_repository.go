package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/inventory"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

// MovementFilter filtros de listado de compras/ventas.
type MovementFilter struct {
	ProductID      int64
	CounterpartyID int64
	From, To       *time.Time
	Limit, Offset  int
}

// MovementRepository define el puerto de persistencia para compras y ventas.
// kind selecciona la tabla (purchases/sales) y la contraparte (proveedor/cliente).
type MovementRepository interface {
	Create(ctx context.Context, ns tenant.Namespace, m *entity.Movement) error
	GetByID(ctx context.Context, ns tenant.Namespace, kind inventory.Kind, id int64) (*entity.Movement, error)
	// GetForUpdate obtiene el movimiento y bloquea la fila (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, ns tenant.Namespace, kind inventory.Kind, id int64) (*entity.Movement, error)
	Update(ctx context.Context, ns tenant.Namespace, m *entity.Movement) error
	Delete(ctx context.Context, ns tenant.Namespace, kind inventory.Kind, id int64) error
	List(ctx context.Context, ns tenant.Namespace, kind inventory.Kind, f MovementFilter) ([]*entity.Movement, int64, error)
	CounterpartyExists(ctx context.Context, ns tenant.Namespace, kind inventory.Kind, id int64) (bool, error)
}
