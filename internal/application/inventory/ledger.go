package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/inventory"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

// Ledger aplica los deltas de stock de compras y ventas. Debe construirse sobre un
// StockRepository atado a la misma transacción que escribe la fila del movimiento.
type Ledger struct {
	stock         repository.StockRepository
	allowNegative bool
}

// NewLedger construye el ledger.
func NewLedger(stock repository.StockRepository, allowNegative bool) *Ledger {
	return &Ledger{stock: stock, allowNegative: allowNegative}
}

// ApplyMovement suma delta al stock del producto y devuelve el stock resultante.
// Errores: domain.ErrProductNotFound, domain.ErrInsufficientStock o domain.ErrConsistencyViolation.
func (l *Ledger) ApplyMovement(ctx context.Context, ns tenant.Namespace, productID, delta int64) (int64, error) {
	stock, err := l.stock.AddDelta(ctx, ns, productID, delta, l.allowNegative)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInsufficientStock) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: producto %d: %v", domain.ErrConsistencyViolation, productID, err)
	}
	return stock, nil
}

// ReverseMovement deshace el efecto delta de un movimiento.
func (l *Ledger) ReverseMovement(ctx context.Context, ns tenant.Namespace, productID, delta int64) (int64, error) {
	return l.ApplyMovement(ctx, ns, productID, -delta)
}

// RebalanceOnEdit ajusta el stock cuando cambia la cantidad de un movimiento del mismo producto.
func (l *Ledger) RebalanceOnEdit(ctx context.Context, ns tenant.Namespace, productID int64, kind inventory.Kind, oldQty, newQty int64) (int64, error) {
	return l.ApplyMovement(ctx, ns, productID, inventory.RebalanceDelta(kind, oldQty, newQty))
}
