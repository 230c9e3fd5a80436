package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

// StockRepository es el único puerto que modifica products.stock.
// Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	// AddDelta suma delta al stock en una sola sentencia atómica y devuelve el stock nuevo.
	// Si allowNegative es false y el resultado sería negativo, no modifica nada y devuelve
	// domain.ErrInsufficientStock. Si el producto no existe devuelve domain.ErrProductNotFound.
	AddDelta(ctx context.Context, ns tenant.Namespace, productID, delta int64, allowNegative bool) (int64, error)
}

// StockAudit son los componentes del invariante stock = inicial + Σcompras - Σventas.
type StockAudit struct {
	ProductID    int64
	InitialStock int64
	Purchased    int64
	Sold         int64
	Stock        int64
}

// StockAuditRepository lee los componentes del invariante de stock.
type StockAuditRepository interface {
	Audit(ctx context.Context, ns tenant.Namespace, productID int64) (*StockAudit, error)
}
