package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/tenancy"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
	apphttp "github.com/jhoicas/Gestion-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Gestion-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = int64(7)
	testTenantID  = int64(3)
	testIssuer    = "gestion-test"
	testExpMin    = 60
)

// stubResolver emula el registro de tenants: roles vigentes por usuario.
type stubResolver struct {
	roles map[int64]string
	err   error
}

func (s stubResolver) Resolve(_ context.Context, sess tenancy.Session) (tenant.RequestContext, error) {
	if s.err != nil {
		return tenant.RequestContext{}, s.err
	}
	role, ok := s.roles[sess.UserID]
	if !sess.Authenticated || !ok || sess.TenantID != testTenantID {
		return tenant.RequestContext{}, domain.ErrUnauthorized
	}
	ns, err := tenant.NewNamespace("empresa_test")
	if err != nil {
		return tenant.RequestContext{}, err
	}
	return tenant.RequestContext{TenantID: sess.TenantID, UserID: sess.UserID, Role: role, Namespace: ns}, nil
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// buildTenantApp agrega TenantMiddleware entre el JWT y el control de rol.
func buildTenantApp(resolver stubResolver, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.TenantMiddleware(resolver, zerolog.Nop()),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			rc := apphttp.GetRequestContext(c)
			return c.JSON(fiber.Map{"namespace": rc.Namespace.String(), "role": rc.Role})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, _, err := pkgjwt.Generate(testJWTSecret, testUserID, testTenantID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(tenant.RoleAdmin)
	resp := doRequest(t, app, tokenForRole(t, tenant.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta restringida a admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, tenant.RoleAdmin, body["role"])
}

func TestRequireRole_OperadorAccedeRutaMultiRol(t *testing.T) {
	app := buildTestApp(tenant.RoleAdmin, tenant.RoleOperator)
	resp := doRequest(t, app, tokenForRole(t, tenant.RoleOperator))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_OperadorBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp(tenant.RoleAdmin)
	resp := doRequest(t, app, tokenForRole(t, tenant.RoleOperator))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"operator no debe poder acceder a ruta restringida a admin")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireRole_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp(tenant.RoleAdmin)
	resp := doRequest(t, app, tokenForRole(t, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "token sin rol debe retornar 401")
}

func TestRequireRole_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(tenant.RoleAdmin)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestRequireRole_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(tenant.RoleAdmin)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware: extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":   apphttp.GetUserID(c),
			"tenant_id": apphttp.GetTenantID(c),
			"role":      apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, tenant.RoleAdmin))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		UserID   int64  `json:"user_id"`
		TenantID int64  `json:"tenant_id"`
		Role     string `json:"role"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body.UserID)
	assert.Equal(t, testTenantID, body.TenantID)
	assert.Equal(t, tenant.RoleAdmin, body.Role)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests TenantMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestTenantMiddleware_ResuelveNamespace(t *testing.T) {
	app := buildTenantApp(stubResolver{roles: map[int64]string{testUserID: tenant.RoleAdmin}}, tenant.RoleAdmin)
	resp := doRequest(t, app, tokenForRole(t, tenant.RoleAdmin))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "empresa_test", body["namespace"])
}

func TestTenantMiddleware_RolAlmacenadoPrevaleceSobreToken(t *testing.T) {
	// el token dice admin pero el usuario fue degradado a operator
	app := buildTenantApp(stubResolver{roles: map[int64]string{testUserID: tenant.RoleOperator}}, tenant.RoleAdmin)
	resp := doRequest(t, app, tokenForRole(t, tenant.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestTenantMiddleware_UsuarioDesconocido_401(t *testing.T) {
	app := buildTenantApp(stubResolver{roles: map[int64]string{}}, tenant.RoleAdmin)
	resp := doRequest(t, app, tokenForRole(t, tenant.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTenantMiddleware_FallaInterna_NoExponeDetalle(t *testing.T) {
	app := buildTenantApp(stubResolver{err: errors.New("dial tcp 10.0.0.5:5432: connection refused")}, tenant.RoleAdmin)
	resp := doRequest(t, app, tokenForRole(t, tenant.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INTERNAL")
	assert.NotContains(t, string(body), "10.0.0.5")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequestLogger
// ──────────────────────────────────────────────────────────────────────────────

func TestRequestLogger_AsignaRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(apphttp.RequestLogger(zerolog.Nop()))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString(apphttp.GetRequestID(c))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	id := resp.Header.Get(fiber.HeaderXRequestID)
	assert.NotEmpty(t, id)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, id, string(body))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(fiber.HeaderXRequestID, "abc-123")
	resp2, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, "abc-123", resp2.Header.Get(fiber.HeaderXRequestID))
}
