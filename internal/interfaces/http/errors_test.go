package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/domain"
)

func TestWriteError_MapeaCodigos(t *testing.T) {
	casos := []struct {
		err    error
		status int
		code   string
	}{
		{domain.Invalid("quantity", "debe ser mayor a cero"), http.StatusBadRequest, "VALIDATION"},
		{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{domain.ErrProductNotFound, http.StatusNotFound, "PRODUCT_NOT_FOUND"},
		{fmt.Errorf("get: %w", domain.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrInsufficientStock, http.StatusConflict, "INSUFFICIENT_STOCK"},
		{domain.ErrDuplicate, http.StatusConflict, "DUPLICATE"},
		{domain.ErrConflict, http.StatusConflict, "CONFLICT"},
		{fmt.Errorf("%w: producto 4: disco lleno", domain.ErrConsistencyViolation), http.StatusInternalServerError, "INTERNAL"},
		{errors.New("pq: secreto interno"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range casos {
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error { return writeError(c, zerolog.Nop(), tc.err) })

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		assert.Equal(t, tc.status, resp.StatusCode, tc.err.Error())
		assert.Contains(t, string(body), tc.code, tc.err.Error())
		assert.NotContains(t, string(body), "secreto")
		assert.NotContains(t, string(body), "disco")
	}
}

func TestWriteError_ValidacionIncluyeCampo(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, zerolog.Nop(), domain.Invalid("cuil", "dígito verificador inválido"))
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"field":"cuil"`)
}

func TestParamID(t *testing.T) {
	app := fiber.New()
	app.Get("/:id", func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return writeError(c, zerolog.Nop(), err)
		}
		return c.JSON(id)
	})
	for path, status := range map[string]int{"/42": 200, "/0": 400, "/-3": 400, "/abc": 400} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, status, resp.StatusCode, path)
	}
}
