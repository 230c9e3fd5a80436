// Package tenancy resuelve la identidad de tenant de cada petición.
package tenancy

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

// Session son los datos de la sesión autenticada, tal como llegan del token firmado.
// No incluye el schema: el namespace siempre se deriva del registro de tenants.
type Session struct {
	Authenticated bool
	UserID        int64
	TenantID      int64
	Role          string
}

// Resolver traduce una sesión en un tenant.RequestContext. Se consulta en cada petición, sin caché,
// de modo que bajas de usuarios y cambios de rol toman efecto de inmediato.
type Resolver struct {
	tenants repository.TenantRepository
	users   repository.UserRepository
	log     zerolog.Logger
}

// NewResolver construye el resolver.
func NewResolver(tenants repository.TenantRepository, users repository.UserRepository, log zerolog.Logger) *Resolver {
	return &Resolver{tenants: tenants, users: users, log: log}
}

// Resolve devuelve el contexto de la petición o domain.ErrUnauthorized. Nunca informa
// cuál de las comprobaciones falló.
func (r *Resolver) Resolve(ctx context.Context, s Session) (tenant.RequestContext, error) {
	if !s.Authenticated || s.UserID <= 0 || s.TenantID <= 0 {
		return tenant.RequestContext{}, domain.ErrUnauthorized
	}

	t, err := r.tenants.GetByID(ctx, s.TenantID)
	if err != nil {
		return tenant.RequestContext{}, err
	}
	if t == nil {
		return tenant.RequestContext{}, domain.ErrUnauthorized
	}

	u, err := r.users.GetByID(ctx, s.UserID)
	if err != nil {
		return tenant.RequestContext{}, err
	}
	if u == nil || !u.Active || u.TenantID != t.ID || !tenant.ValidRole(u.Role) {
		return tenant.RequestContext{}, domain.ErrUnauthorized
	}

	ns, err := tenant.NewNamespace(t.SchemaName)
	if err != nil {
		r.log.Error().Err(err).Int64("tenant_id", t.ID).Msg("schema del tenant inválido en el registro")
		return tenant.RequestContext{}, domain.ErrUnauthorized
	}

	return tenant.RequestContext{
		TenantID:  t.ID,
		UserID:    u.ID,
		Role:      u.Role,
		Namespace: ns,
	}, nil
}
