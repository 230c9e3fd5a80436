package postgres

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

//go:embed tenant_schema.sql
var tenantSchemaTemplate string

// TenantSchemaDDL devuelve el DDL de las tablas de negocio calificado con ns, precedido del
// CREATE SCHEMA. El servicio no lo ejecuta: el alta de tenants es una tarea de operación.
func TenantSchemaDDL(ns tenant.Namespace) (string, error) {
	body, err := Qualify(ns, tenantSchemaTemplate)
	if err != nil {
		return "", fmt.Errorf("tenant schema: %w", err)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE SCHEMA IF NOT EXISTS %s;\n\n", pgx.Identifier{ns.String()}.Sanitize())
	b.WriteString(body)
	return b.String(), nil
}

// RegistryDDL devuelve el DDL de las tablas de registro (tenants y usuarios) en registrySchema.
func RegistryDDL(registrySchema string) string {
	tenants := pgx.Identifier{registrySchema, "tenants"}.Sanitize()
	users := pgx.Identifier{registrySchema, "users"}.Sanitize()
	return `CREATE TABLE IF NOT EXISTS ` + tenants + ` (
    id          BIGSERIAL PRIMARY KEY,
    name        TEXT NOT NULL,
    legal_name  TEXT NOT NULL DEFAULT '',
    tax_id      TEXT NOT NULL DEFAULT '',
    address     TEXT NOT NULL DEFAULT '',
    phone       TEXT NOT NULL DEFAULT '',
    email       TEXT NOT NULL DEFAULT '',
    schema_name TEXT NOT NULL UNIQUE,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS ` + users + ` (
    id            BIGSERIAL PRIMARY KEY,
    tenant_id     BIGINT NOT NULL REFERENCES ` + tenants + ` (id),
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    name          TEXT NOT NULL DEFAULT '',
    role          TEXT NOT NULL CHECK (role IN ('admin', 'operator')),
    active        BOOLEAN NOT NULL DEFAULT TRUE,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
`
}
