package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	ex *Executor
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{ex: NewExecutor(q)}
}

const productSelect = `
	SELECT p.id, p.name, p.category_id, COALESCE(c.name, ''), p.currency, p.unit_price,
		p.initial_stock, p.stock, p.active, p.note, p.created_at, p.updated_at
	FROM {products} p
	LEFT JOIN {categories} c ON c.id = p.category_id`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.CategoryID, &p.CategoryName, &p.Currency, &p.UnitPrice,
		&p.InitialStock, &p.Stock, &p.Active, &p.Note, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto. El stock arranca en InitialStock.
func (r *ProductRepo) Create(ctx context.Context, ns tenant.Namespace, product *entity.Product) error {
	product.Stock = product.InitialStock
	err := r.ex.QueryRow(ctx, ns, `
		INSERT INTO {products} (name, category_id, currency, unit_price, initial_stock, stock, active, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5, $6, $7, $8, $9)
		RETURNING id`,
		product.Name, product.CategoryID, product.Currency, product.UnitPrice, product.InitialStock,
		product.Active, product.Note, product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		return mapError("insert product", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, ns tenant.Namespace, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.ex.QueryRow(ctx, ns, productSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List lista productos con su categoría, paginados, y devuelve el total.
func (r *ProductRepo) List(ctx context.Context, ns tenant.Namespace, onlyActive bool, limit, offset int) ([]*entity.Product, int64, error) {
	total, err := r.ex.Count(ctx, ns,
		`SELECT count(*) FROM {products} p WHERE (NOT $1::boolean OR p.active)`, onlyActive)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	rows, err := r.ex.Query(ctx, ns,
		productSelect+` WHERE (NOT $1::boolean OR p.active) ORDER BY p.name LIMIT $2 OFFSET $3`,
		onlyActive, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// Update actualiza un producto existente. No modifica stock ni initial_stock (se manejan vía movimientos).
func (r *ProductRepo) Update(ctx context.Context, ns tenant.Namespace, product *entity.Product) error {
	n, err := r.ex.Exec(ctx, ns, `
		UPDATE {products} SET name = $2, category_id = $3, currency = $4, unit_price = $5, active = $6,
			note = $7, updated_at = $8
		WHERE id = $1`,
		product.ID, product.Name, product.CategoryID, product.Currency, product.UnitPrice,
		product.Active, product.Note, product.UpdatedAt,
	)
	if err != nil {
		return mapError("update product", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto. Falla con domain.ErrConflict si tiene movimientos.
func (r *ProductRepo) Delete(ctx context.Context, ns tenant.Namespace, id int64) error {
	return r.ex.Delete(ctx, ns, entity.TableProducts, id)
}
