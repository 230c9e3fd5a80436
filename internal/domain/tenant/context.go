package tenant

import "github.com/jhoicas/Gestion-api/internal/domain"

// Roles válidos dentro de un tenant.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// ValidRole informa si r es un rol conocido.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleOperator
}

// RequestContext es la identidad resuelta de la petición en curso. Se calcula una vez por
// petición (middleware) y se pasa explícitamente a cada caso de uso.
type RequestContext struct {
	TenantID  int64
	UserID    int64
	Role      string
	Namespace Namespace
}

// Valid informa si el contexto fue producido por el resolver.
func (rc RequestContext) Valid() bool {
	return rc.TenantID > 0 && rc.UserID > 0 && !rc.Namespace.IsZero() && ValidRole(rc.Role)
}

// Check devuelve ErrUnauthorized si el contexto no es válido.
func (rc RequestContext) Check() error {
	if !rc.Valid() {
		return domain.ErrUnauthorized
	}
	return nil
}

// Require verifica que el contexto sea válido y que el rol esté entre los permitidos.
func (rc RequestContext) Require(roles ...string) error {
	if err := rc.Check(); err != nil {
		return err
	}
	for _, r := range roles {
		if rc.Role == r {
			return nil
		}
	}
	return domain.ErrForbidden
}

// IsAdmin informa si el operador es administrador del tenant.
func (rc RequestContext) IsAdmin() bool { return rc.Role == RoleAdmin }
