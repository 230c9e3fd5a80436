package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

var (
	_ repository.StockRepository      = (*StockRepo)(nil)
	_ repository.StockAuditRepository = (*StockRepo)(nil)
)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	ex *Executor
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{ex: NewExecutor(q)}
}

// AddDelta suma delta al stock con un UPDATE atómico: dos ventas concurrentes sobre el mismo
// producto se serializan en el lock de fila y ninguna pierde su actualización.
func (r *StockRepo) AddDelta(ctx context.Context, ns tenant.Namespace, productID, delta int64, allowNegative bool) (int64, error) {
	var stock int64
	err := r.ex.QueryRow(ctx, ns, `
		UPDATE {products} SET stock = stock + $2, updated_at = now()
		WHERE id = $1 AND ($3::boolean OR stock + $2 >= 0)
		RETURNING stock`,
		productID, delta, allowNegative,
	).Scan(&stock)
	if err == nil {
		return stock, nil
	}
	if !isNoRows(err) {
		return 0, fmt.Errorf("add stock delta: %w", err)
	}
	n, err := r.ex.Count(ctx, ns, `SELECT count(*) FROM {products} WHERE id = $1`, productID)
	if err != nil {
		return 0, fmt.Errorf("check product: %w", err)
	}
	if n == 0 {
		return 0, domain.ErrProductNotFound
	}
	return 0, domain.ErrInsufficientStock
}

// Audit lee stock inicial, actual y la suma de compras y ventas del producto.
func (r *StockRepo) Audit(ctx context.Context, ns tenant.Namespace, productID int64) (*repository.StockAudit, error) {
	var a repository.StockAudit
	err := r.ex.QueryRow(ctx, ns, `
		SELECT p.id, p.initial_stock, p.stock,
			COALESCE((SELECT SUM(quantity) FROM {purchases} WHERE product_id = p.id), 0)::bigint,
			COALESCE((SELECT SUM(quantity) FROM {sales} WHERE product_id = p.id), 0)::bigint
		FROM {products} p WHERE p.id = $1`,
		productID,
	).Scan(&a.ProductID, &a.InitialStock, &a.Stock, &a.Purchased, &a.Sold)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("stock audit: %w", err)
	}
	return &a, nil
}
