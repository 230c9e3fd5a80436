package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/inventory"
	domaininv "github.com/jhoicas/Gestion-api/internal/domain/inventory"
)

// InventoryHandler maneja compras o ventas (según kind); cada operación ajusta el stock en la misma transacción.
type InventoryHandler struct {
	uc   *inventory.MovementUseCase
	kind domaininv.Kind
	log  zerolog.Logger
}

// NewInventoryHandler construye el handler para un tipo de movimiento.
func NewInventoryHandler(uc *inventory.MovementUseCase, kind domaininv.Kind, log zerolog.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, kind: kind, log: log}
}

// Create godoc
// @Summary      Registrar compra / venta
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "product_id, counterparty_id (proveedor o cliente), date, quantity, amount"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
// @Router       /api/sales [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetRequestContext(c), h.kind, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener compra / venta
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id} [get]
// @Router       /api/sales/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.Get(c.UserContext(), GetRequestContext(c), h.kind, id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar compras / ventas
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id       query  int     false  "Producto"
// @Param        counterparty_id  query  int     false  "Proveedor o cliente"
// @Param        from             query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to               query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        limit            query  int     false  "Límite"  default(20)
// @Param        offset           query  int     false  "Offset"  default(0)
// @Success      200              {object}  dto.MovementListResponse
// @Router       /api/purchases [get]
// @Router       /api/sales [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var in dto.MovementFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return invalidQuery(c)
	}
	out, err := h.uc.List(c.UserContext(), GetRequestContext(c), h.kind, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar compra / venta (rebalancea stock)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del movimiento"
// @Param        body  body  dto.MovementRequest  true  "Datos completos del movimiento"
// @Success      200   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchases/{id} [put]
// @Router       /api/sales/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetRequestContext(c), h.kind, id, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar compra / venta (revierte stock)
// @Tags         inventory
// @Security     Bearer
// @Param        id   path  int  true  "ID del movimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id} [delete]
// @Router       /api/sales/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if err := h.uc.Delete(c.UserContext(), GetRequestContext(c), h.kind, id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
