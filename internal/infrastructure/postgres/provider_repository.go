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

var _ repository.ProviderRepository = (*ProviderRepo)(nil)

// ProviderRepo implementación de ProviderRepository (usable con pool o tx).
type ProviderRepo struct {
	ex *Executor
}

// NewProviderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProviderRepository(q Querier) *ProviderRepo {
	return &ProviderRepo{ex: NewExecutor(q)}
}

const providerColumns = `id, name, tax_id, address, phone, email, note`

func scanProvider(row pgx.Row) (*entity.Provider, error) {
	var v entity.Provider
	if err := row.Scan(&v.ID, &v.Name, &v.TaxID, &v.Address, &v.Phone, &v.Email, &v.Note); err != nil {
		return nil, err
	}
	return &v, nil
}

// Create persiste un proveedor y completa su ID.
func (r *ProviderRepo) Create(ctx context.Context, ns tenant.Namespace, v *entity.Provider) error {
	err := r.ex.QueryRow(ctx, ns, `
		INSERT INTO {providers} (name, tax_id, address, phone, email, note)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		v.Name, v.TaxID, v.Address, v.Phone, v.Email, v.Note,
	).Scan(&v.ID)
	if err != nil {
		return mapError("insert provider", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *ProviderRepo) GetByID(ctx context.Context, ns tenant.Namespace, id int64) (*entity.Provider, error) {
	v, err := scanProvider(r.ex.QueryRow(ctx, ns, `SELECT `+providerColumns+` FROM {providers} WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get provider: %w", err)
	}
	return v, nil
}

// List lista proveedores por nombre con paginación y devuelve el total.
func (r *ProviderRepo) List(ctx context.Context, ns tenant.Namespace, limit, offset int) ([]*entity.Provider, int64, error) {
	total, err := r.ex.Count(ctx, ns, `SELECT count(*) FROM {providers}`)
	if err != nil {
		return nil, 0, fmt.Errorf("count providers: %w", err)
	}
	rows, err := r.ex.Query(ctx, ns,
		`SELECT `+providerColumns+` FROM {providers} ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list providers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Provider
	for rows.Next() {
		v, err := scanProvider(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan provider: %w", err)
		}
		list = append(list, v)
	}
	return list, total, rows.Err()
}

// Update actualiza un proveedor.
func (r *ProviderRepo) Update(ctx context.Context, ns tenant.Namespace, v *entity.Provider) error {
	n, err := r.ex.Exec(ctx, ns, `
		UPDATE {providers} SET name = $2, tax_id = $3, address = $4, phone = $5, email = $6, note = $7
		WHERE id = $1`,
		v.ID, v.Name, v.TaxID, v.Address, v.Phone, v.Email, v.Note,
	)
	if err != nil {
		return mapError("update provider", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un proveedor. Falla con domain.ErrConflict si tiene movimientos.
func (r *ProviderRepo) Delete(ctx context.Context, ns tenant.Namespace, id int64) error {
	return r.ex.Delete(ctx, ns, entity.TableProviders, id)
}
