package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/tenancy"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
	"github.com/jhoicas/Gestion-api/pkg/jwt"
)

// Locals keys en Fiber.
const (
	LocalUserID         = "user_id"
	LocalTenantID       = "tenant_id"
	LocalRole           = "role"
	LocalRequestContext = "request_context"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID, TenantID y Role a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, tenantID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalTenantID, tenantID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// tenantResolver es el contrato que necesita TenantMiddleware; lo implementa *tenancy.Resolver.
type tenantResolver interface {
	Resolve(ctx context.Context, s tenancy.Session) (tenant.RequestContext, error)
}

// TenantMiddleware resuelve tenant, namespace y rol una sola vez por petición y deja el
// RequestContext en c.Locals. Debe usarse DESPUÉS de AuthMiddleware.
func TenantMiddleware(resolver tenantResolver, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, tenantID := GetUserID(c), GetTenantID(c)
		session := tenancy.Session{
			Authenticated: userID > 0 && tenantID > 0,
			UserID:        userID,
			TenantID:      tenantID,
		}
		if v, ok := c.Locals(LocalRole).(string); ok {
			session.Role = v
		}
		rc, err := resolver.Resolve(c.UserContext(), session)
		if err != nil {
			return writeError(c, log, err)
		}
		c.Locals(LocalRequestContext, rc)
		// el rol vigente es el almacenado, no el del token
		c.Locals(LocalRole, rc.Role)
		return c.Next()
	}
}

// GetRequestContext devuelve el contexto de tenant resuelto. Sin TenantMiddleware devuelve
// el valor cero, que todos los casos de uso rechazan con ErrUnauthorized.
func GetRequestContext(c *fiber.Ctx) tenant.RequestContext {
	rc, _ := c.Locals(LocalRequestContext).(tenant.RequestContext)
	return rc
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUserID).(int64)
	return id
}

// GetTenantID devuelve el TenantID del contexto (después del middleware de auth).
func GetTenantID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalTenantID).(int64)
	return id
}

// GetRole devuelve el rol del operador.
func GetRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocalRole).(string)
	return role
}
