package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pyme/internal/application/caja"
	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
)

// CajaHandler maneja las peticiones HTTP del libro de caja (protegido).
type CajaHandler struct {
	uc *caja.UseCase
}

// NewCajaHandler construye el handler.
func NewCajaHandler(uc *caja.UseCase) *CajaHandler {
	return &CajaHandler{uc: uc}
}

// Create POST /api/caja/movimientos
func (h *CajaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovimientoCajaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movimiento, err := h.uc.Create(GetEmpresaID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha, tipo (INGRESO|EGRESO) y monto no negativo son requeridos"})
		}
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(movimiento)
}

// Update PUT /api/caja/movimientos/:id
func (h *CajaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMovimientoCajaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movimiento, err := h.uc.Update(GetEmpresaID(c), c.Params("id"), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(movimiento)
}

// Delete DELETE /api/caja/movimientos/:id
func (h *CajaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetEmpresaID(c), c.Params("id")); err != nil {
		return handleDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List GET /api/caja/movimientos — listado completo con saldo acumulado.
func (h *CajaHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListConSaldo(GetEmpresaID(c))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(list)
}

// Proyeccion GET /api/caja/proyeccion?horizonte=6
func (h *CajaHandler) Proyeccion(c *fiber.Ctx) error {
	meses, err := h.uc.Proyeccion(GetEmpresaID(c), c.QueryInt("horizonte", 0))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(meses)
}

// Futuros GET /api/caja/futuros — solo movimientos con impacto hoy o después.
func (h *CajaHandler) Futuros(c *fiber.Ctx) error {
	list, err := h.uc.Futuros(GetEmpresaID(c))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(list)
}
