package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.TenantRepository = (*TenantRepo)(nil)

// TenantRepo lee y actualiza el registro de tenants (schema de registro, por defecto public).
type TenantRepo struct {
	q     Querier
	table string
}

// NewTenantRepository construye el adaptador. registrySchema proviene de la configuración.
func NewTenantRepository(q Querier, registrySchema string) *TenantRepo {
	return &TenantRepo{q: q, table: pgx.Identifier{registrySchema, "tenants"}.Sanitize()}
}

// GetByID obtiene un tenant por ID, con el nombre de su schema.
func (r *TenantRepo) GetByID(ctx context.Context, id int64) (*entity.Tenant, error) {
	query := `
		SELECT id, name, legal_name, tax_id, address, phone, email, schema_name, created_at, updated_at
		FROM ` + r.table + ` WHERE id = $1`
	var t entity.Tenant
	err := r.q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.LegalName, &t.TaxID, &t.Address, &t.Phone, &t.Email,
		&t.SchemaName, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return &t, nil
}

// Update actualiza los datos de contacto del tenant. Nunca modifica schema_name.
func (r *TenantRepo) Update(ctx context.Context, t *entity.Tenant) error {
	query := `
		UPDATE ` + r.table + ` SET name = $2, legal_name = $3, tax_id = $4, address = $5, phone = $6,
			email = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Name, t.LegalName, t.TaxID, t.Address, t.Phone, t.Email, t.UpdatedAt,
	)
	if err != nil {
		return mapError("update tenant", err)
	}
	return nil
}
