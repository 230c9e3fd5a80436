package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

// CategoryHandler maneja categorías (protegido).
type CategoryHandler struct {
	uc  *usecase.CategoryUseCase
	log zerolog.Logger
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase, log zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetRequestContext(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetRequestContext(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoría
// @Tags         categories
// @Security     Bearer
// @Param        id   path  int  true  "ID de la categoría"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if err := h.uc.Delete(c.UserContext(), GetRequestContext(c), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// counterpartyService lo implementan *usecase.ProviderUseCase y *usecase.ClientUseCase.
type counterpartyService interface {
	Create(ctx context.Context, rc tenant.RequestContext, in dto.CounterpartyRequest) (*dto.CounterpartyResponse, error)
	Get(ctx context.Context, rc tenant.RequestContext, id int64) (*dto.CounterpartyResponse, error)
	List(ctx context.Context, rc tenant.RequestContext, page dto.PageRequest) (*dto.CounterpartyListResponse, error)
	Update(ctx context.Context, rc tenant.RequestContext, id int64, in dto.CounterpartyRequest) (*dto.CounterpartyResponse, error)
	Delete(ctx context.Context, rc tenant.RequestContext, id int64) error
}

// CounterpartyHandler maneja proveedores o clientes según el caso de uso recibido.
type CounterpartyHandler struct {
	uc  counterpartyService
	log zerolog.Logger
}

// NewCounterpartyHandler construye el handler.
func NewCounterpartyHandler(uc counterpartyService, log zerolog.Logger) *CounterpartyHandler {
	return &CounterpartyHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear proveedor / cliente
// @Tags         counterparties
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CounterpartyRequest  true  "Datos de la contraparte"
// @Success      201   {object}  dto.CounterpartyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/providers [post]
// @Router       /api/clients [post]
func (h *CounterpartyHandler) Create(c *fiber.Ctx) error {
	var in dto.CounterpartyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetRequestContext(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener proveedor / cliente
// @Tags         counterparties
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.CounterpartyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/providers/{id} [get]
// @Router       /api/clients/{id} [get]
func (h *CounterpartyHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.Get(c.UserContext(), GetRequestContext(c), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar proveedores / clientes
// @Tags         counterparties
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.CounterpartyListResponse
// @Router       /api/providers [get]
// @Router       /api/clients [get]
func (h *CounterpartyHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return invalidQuery(c)
	}
	out, err := h.uc.List(c.UserContext(), GetRequestContext(c), page)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar proveedor / cliente
// @Tags         counterparties
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID"
// @Param        body  body  dto.CounterpartyRequest  true  "Datos de la contraparte"
// @Success      200   {object}  dto.CounterpartyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/providers/{id} [put]
// @Router       /api/clients/{id} [put]
func (h *CounterpartyHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	var in dto.CounterpartyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetRequestContext(c), id, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar proveedor / cliente
// @Tags         counterparties
// @Security     Bearer
// @Param        id   path  int  true  "ID"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/providers/{id} [delete]
// @Router       /api/clients/{id} [delete]
func (h *CounterpartyHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if err := h.uc.Delete(c.UserContext(), GetRequestContext(c), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
