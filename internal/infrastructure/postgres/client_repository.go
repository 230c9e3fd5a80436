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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	ex *Executor
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{ex: NewExecutor(q)}
}

const clientColumns = `id, name, tax_id, address, phone, email, note`

func scanClient(row pgx.Row) (*entity.Client, error) {
	var v entity.Client
	if err := row.Scan(&v.ID, &v.Name, &v.TaxID, &v.Address, &v.Phone, &v.Email, &v.Note); err != nil {
		return nil, err
	}
	return &v, nil
}

// Create persiste un cliente y completa su ID.
func (r *ClientRepo) Create(ctx context.Context, ns tenant.Namespace, v *entity.Client) error {
	err := r.ex.QueryRow(ctx, ns, `
		INSERT INTO {clients} (name, tax_id, address, phone, email, note)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		v.Name, v.TaxID, v.Address, v.Phone, v.Email, v.Note,
	).Scan(&v.ID)
	if err != nil {
		return mapError("insert client", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(ctx context.Context, ns tenant.Namespace, id int64) (*entity.Client, error) {
	v, err := scanClient(r.ex.QueryRow(ctx, ns, `SELECT `+clientColumns+` FROM {clients} WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return v, nil
}

// List lista clientes por nombre con paginación y devuelve el total.
func (r *ClientRepo) List(ctx context.Context, ns tenant.Namespace, limit, offset int) ([]*entity.Client, int64, error) {
	total, err := r.ex.Count(ctx, ns, `SELECT count(*) FROM {clients}`)
	if err != nil {
		return nil, 0, fmt.Errorf("count clients: %w", err)
	}
	rows, err := r.ex.Query(ctx, ns,
		`SELECT `+clientColumns+` FROM {clients} ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		v, err := scanClient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, v)
	}
	return list, total, rows.Err()
}

// Update actualiza un cliente.
func (r *ClientRepo) Update(ctx context.Context, ns tenant.Namespace, v *entity.Client) error {
	n, err := r.ex.Exec(ctx, ns, `
		UPDATE {clients} SET name = $2, tax_id = $3, address = $4, phone = $5, email = $6, note = $7
		WHERE id = $1`,
		v.ID, v.Name, v.TaxID, v.Address, v.Phone, v.Email, v.Note,
	)
	if err != nil {
		return mapError("update client", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente. Falla con domain.ErrConflict si tiene movimientos.
func (r *ClientRepo) Delete(ctx context.Context, ns tenant.Namespace, id int64) error {
	return r.ex.Delete(ctx, ns, entity.TableClients, id)
}
