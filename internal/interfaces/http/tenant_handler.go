package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
)

// TenantHandler perfil de la empresa y sus operadores.
type TenantHandler struct {
	tenants   *usecase.TenantUseCase
	operators *usecase.OperatorUseCase
	log       zerolog.Logger
}

// NewTenantHandler construye el handler.
func NewTenantHandler(tenants *usecase.TenantUseCase, operators *usecase.OperatorUseCase, log zerolog.Logger) *TenantHandler {
	return &TenantHandler{tenants: tenants, operators: operators, log: log}
}

// Get godoc
// @Summary      Perfil de la empresa
// @Tags         tenant
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TenantResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/tenant [get]
func (h *TenantHandler) Get(c *fiber.Ctx) error {
	out, err := h.tenants.Get(c.UserContext(), GetRequestContext(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar perfil de la empresa (admin)
// @Tags         tenant
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateTenantRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.TenantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/tenant [put]
func (h *TenantHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTenantRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.tenants.Update(c.UserContext(), GetRequestContext(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListOperators godoc
// @Summary      Listar operadores
// @Tags         operators
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/operators [get]
func (h *TenantHandler) ListOperators(c *fiber.Ctx) error {
	out, err := h.operators.List(c.UserContext(), GetRequestContext(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// CreateOperator godoc
// @Summary      Crear operador
// @Tags         operators
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "email, password, name, role"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/operators [post]
func (h *TenantHandler) CreateOperator(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.operators.Create(c.UserContext(), GetRequestContext(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteOperator godoc
// @Summary      Eliminar operador
// @Tags         operators
// @Security     Bearer
// @Param        id   path  int  true  "ID del operador"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/operators/{id} [delete]
func (h *TenantHandler) DeleteOperator(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if err := h.operators.Delete(c.UserContext(), GetRequestContext(c), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
