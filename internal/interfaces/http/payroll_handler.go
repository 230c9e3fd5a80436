package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/payroll"
)

// PayrollHandler recibos de haberes (protegido).
type PayrollHandler struct {
	uc  *payroll.UseCase
	log zerolog.Logger
}

// NewPayrollHandler construye el handler.
func NewPayrollHandler(uc *payroll.UseCase, log zerolog.Logger) *PayrollHandler {
	return &PayrollHandler{uc: uc, log: log}
}

// Preview godoc
// @Summary      Calcular recibo sin guardar
// @Tags         payroll
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PayrollRequest  true  "Entradas del recibo"
// @Success      200   {object}  dto.PayrollBreakdownResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/payroll/preview [post]
func (h *PayrollHandler) Preview(c *fiber.Ctx) error {
	var in dto.PayrollRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Preview(c.UserContext(), GetRequestContext(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Liquidar recibo
// @Tags         payroll
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PayrollRequest  true  "Entradas del recibo"
// @Success      201   {object}  dto.PayrollResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/payroll [post]
func (h *PayrollHandler) Create(c *fiber.Ctx) error {
	var in dto.PayrollRequest
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
// @Summary      Obtener recibo
// @Tags         payroll
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del recibo"
// @Success      200  {object}  dto.PayrollResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payroll/{id} [get]
func (h *PayrollHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar recibos
// @Tags         payroll
// @Security     Bearer
// @Produce      json
// @Param        employee_id  query  int     false  "Empleado"
// @Param        from         query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to           query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        limit        query  int     false  "Límite"  default(20)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200          {object}  dto.PayrollListResponse
// @Router       /api/payroll [get]
func (h *PayrollHandler) List(c *fiber.Ctx) error {
	var in dto.PayrollFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return invalidQuery(c)
	}
	out, err := h.uc.List(c.UserContext(), GetRequestContext(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reliquidar recibo (recalcula todo)
// @Tags         payroll
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del recibo"
// @Param        body  body  dto.PayrollRequest  true  "Entradas del recibo"
// @Success      200   {object}  dto.PayrollResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payroll/{id} [put]
func (h *PayrollHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	var in dto.PayrollRequest
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
// @Summary      Eliminar recibo
// @Tags         payroll
// @Security     Bearer
// @Param        id   path  int  true  "ID del recibo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payroll/{id} [delete]
func (h *PayrollHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if err := h.uc.Delete(c.UserContext(), GetRequestContext(c), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Payslip godoc
// @Summary      Recibo de haberes en PDF
// @Tags         payroll
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del recibo"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payroll/{id}/pdf [get]
func (h *PayrollHandler) Payslip(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	pdf, filename, err := h.uc.Payslip(c.UserContext(), GetRequestContext(c), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdf)
}
