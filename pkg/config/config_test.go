package config_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "public", cfg.Tenant.RegistrySchema)
	assert.False(t, cfg.Inventory.AllowNegativeStock)
	assert.True(t, cfg.Payroll.PensionPercent.Equal(decimal.NewFromInt(11)))
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 10, cfg.DB.MaxConns)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("INVENTORY_ALLOW_NEGATIVE_STOCK", "true")
	t.Setenv("TENANT_REGISTRY_SCHEMA", "registry")
	t.Setenv("PAYROLL_DEFAULT_LAWX_PERCENT", "2.5")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_MAX_CONNS", "4")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.Inventory.AllowNegativeStock)
	assert.Equal(t, "registry", cfg.Tenant.RegistrySchema)
	assert.Equal(t, "2.5", cfg.Payroll.LawXPercent.String())
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 4, cfg.DB.MaxConns)
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}
