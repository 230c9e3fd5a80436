package tenant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

func TestNewNamespace_Validos(t *testing.T) {
	for _, name := range []string{"t1", "ferreteria_sur", "empresa_0042"} {
		ns, err := tenant.NewNamespace(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, ns.String())
		assert.False(t, ns.IsZero())
	}
}

func TestNewNamespace_RechazaIdentificadoresPeligrosos(t *testing.T) {
	casos := []string{
		"",
		"public",
		"pg_catalog",
		"Empresa",
		"1empresa",
		`empresa"; DROP SCHEMA x; --`,
		"empresa.products",
		"empresa-sur",
		"a23456789012345678901234567890123456789012345678901234567890123456",
	}
	for _, name := range casos {
		_, err := tenant.NewNamespace(name)
		assert.Error(t, err, "%q debe ser rechazado", name)
	}
}

func TestRequestContext_Require(t *testing.T) {
	ns, err := tenant.NewNamespace("empresa_a")
	require.NoError(t, err)

	admin := tenant.RequestContext{TenantID: 1, UserID: 10, Role: tenant.RoleAdmin, Namespace: ns}
	operator := tenant.RequestContext{TenantID: 1, UserID: 11, Role: tenant.RoleOperator, Namespace: ns}

	assert.NoError(t, admin.Require(tenant.RoleAdmin))
	assert.ErrorIs(t, operator.Require(tenant.RoleAdmin), domain.ErrForbidden)
	assert.NoError(t, operator.Require(tenant.RoleAdmin, tenant.RoleOperator))

	var zero tenant.RequestContext
	assert.ErrorIs(t, zero.Require(tenant.RoleAdmin), domain.ErrUnauthorized)
	assert.ErrorIs(t, zero.Check(), domain.ErrUnauthorized)
}
