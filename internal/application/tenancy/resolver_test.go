package tenancy_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/tenancy"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

type stubTenants map[int64]*entity.Tenant

func (s stubTenants) GetByID(_ context.Context, id int64) (*entity.Tenant, error) { return s[id], nil }
func (s stubTenants) Update(context.Context, *entity.Tenant) error                { return nil }

type stubUsers struct {
	byID map[int64]*entity.User
	err  error
}

func (s stubUsers) Create(context.Context, *entity.User) error { return nil }
func (s stubUsers) GetByID(_ context.Context, id int64) (*entity.User, error) {
	return s.byID[id], s.err
}
func (s stubUsers) FindByEmail(context.Context, string) (*entity.User, error)   { return nil, nil }
func (s stubUsers) ListByTenant(context.Context, int64) ([]*entity.User, error) { return nil, nil }
func (s stubUsers) DeleteInTenant(context.Context, int64, int64) error          { return nil }

func newResolver(users stubUsers) *tenancy.Resolver {
	tenants := stubTenants{
		1: {ID: 1, Name: "Ferretería", SchemaName: "ferreteria"},
		2: {ID: 2, Name: "Panadería", SchemaName: "panaderia"},
		3: {ID: 3, Name: "Rota", SchemaName: `x"; DROP SCHEMA public; --`},
	}
	return tenancy.NewResolver(tenants, users, zerolog.Nop())
}

func defaultUsers() stubUsers {
	return stubUsers{byID: map[int64]*entity.User{
		10: {ID: 10, TenantID: 1, Role: tenant.RoleAdmin, Active: true},
		11: {ID: 11, TenantID: 1, Role: tenant.RoleOperator, Active: false},
		20: {ID: 20, TenantID: 2, Role: tenant.RoleOperator, Active: true},
		30: {ID: 30, TenantID: 3, Role: tenant.RoleAdmin, Active: true},
	}}
}

func TestResolve_SesionValida(t *testing.T) {
	r := newResolver(defaultUsers())

	rc, err := r.Resolve(context.Background(), tenancy.Session{Authenticated: true, UserID: 10, TenantID: 1, Role: "operator"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rc.TenantID)
	assert.Equal(t, "ferreteria", rc.Namespace.String())
	assert.Equal(t, tenant.RoleAdmin, rc.Role, "manda el rol guardado, no el del token")
	assert.True(t, rc.Valid())
}

func TestResolve_NoAutorizado(t *testing.T) {
	r := newResolver(defaultUsers())
	casos := map[string]tenancy.Session{
		"sin sesión":             {},
		"no autenticada":         {UserID: 10, TenantID: 1},
		"tenant inexistente":     {Authenticated: true, UserID: 10, TenantID: 99},
		"usuario inexistente":    {Authenticated: true, UserID: 99, TenantID: 1},
		"usuario inactivo":       {Authenticated: true, UserID: 11, TenantID: 1},
		"usuario de otro tenant": {Authenticated: true, UserID: 20, TenantID: 1},
		"schema inválido":        {Authenticated: true, UserID: 30, TenantID: 3},
		"ids en cero":            {Authenticated: true},
	}
	for name, s := range casos {
		rc, err := r.Resolve(context.Background(), s)
		assert.ErrorIs(t, err, domain.ErrUnauthorized, name)
		assert.False(t, rc.Valid(), name)
	}
}

func TestResolve_ErrorDeInfraestructura(t *testing.T) {
	boom := errors.New("conexión rechazada")
	users := defaultUsers()
	users.err = boom
	r := newResolver(users)

	_, err := r.Resolve(context.Background(), tenancy.Session{Authenticated: true, UserID: 10, TenantID: 1})
	assert.ErrorIs(t, err, boom)
}

func TestResolve_Aislamiento(t *testing.T) {
	r := newResolver(defaultUsers())

	a, err := r.Resolve(context.Background(), tenancy.Session{Authenticated: true, UserID: 10, TenantID: 1})
	require.NoError(t, err)
	b, err := r.Resolve(context.Background(), tenancy.Session{Authenticated: true, UserID: 20, TenantID: 2})
	require.NoError(t, err)
	assert.NotEqual(t, a.Namespace, b.Namespace)
}
