package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository (usable con pool o tx).
type CategoryRepo struct {
	ex *Executor
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{ex: NewExecutor(q)}
}

// Create persiste una categoría.
func (r *CategoryRepo) Create(ctx context.Context, ns tenant.Namespace, c *entity.Category) error {
	err := r.ex.QueryRow(ctx, ns,
		`INSERT INTO {categories} (name, description) VALUES ($1, $2) RETURNING id`,
		c.Name, c.Description,
	).Scan(&c.ID)
	if err != nil {
		return mapError("insert category", err)
	}
	return nil
}

// List lista las categorías por nombre.
func (r *CategoryRepo) List(ctx context.Context, ns tenant.Namespace) ([]*entity.Category, error) {
	rows, err := r.ex.Query(ctx, ns, `SELECT id, name, description FROM {categories} ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Exists informa si la categoría existe.
func (r *CategoryRepo) Exists(ctx context.Context, ns tenant.Namespace, id int64) (bool, error) {
	n, err := r.ex.Count(ctx, ns, `SELECT count(*) FROM {categories} WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("category exists: %w", err)
	}
	return n > 0, nil
}

// Delete elimina una categoría.
func (r *CategoryRepo) Delete(ctx context.Context, ns tenant.Namespace, id int64) error {
	return r.ex.Delete(ctx, ns, entity.TableCategories, id)
}
