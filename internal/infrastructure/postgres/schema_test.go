package postgres_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/infrastructure/postgres"
)

func TestTenantSchemaDDL(t *testing.T) {
	ddl, err := postgres.TenantSchemaDDL(ns(t, "panaderia"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ddl, `CREATE SCHEMA IF NOT EXISTS "panaderia";`))
	assert.Contains(t, ddl, `CREATE TABLE IF NOT EXISTS "panaderia"."payroll_entries"`)
	assert.Contains(t, ddl, `REFERENCES "panaderia"."products" (id)`)
	assert.NotContains(t, ddl, "{", "no deben quedar placeholders sin calificar")
}

func TestRegistryDDL(t *testing.T) {
	ddl := postgres.RegistryDDL("public")
	assert.Contains(t, ddl, `"public"."tenants"`)
	assert.Contains(t, ddl, `"public"."users"`)
}
