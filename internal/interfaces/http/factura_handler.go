package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/application/usecase"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
)

// FacturaHandler maneja las peticiones HTTP de comprobantes de compra (protegido).
type FacturaHandler struct {
	uc *usecase.FacturaCompraUseCase
}

// NewFacturaHandler construye el handler.
func NewFacturaHandler(uc *usecase.FacturaCompraUseCase) *FacturaHandler {
	return &FacturaHandler{uc: uc}
}

// Create POST /api/facturas-compra
func (h *FacturaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFacturaCompraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	factura, err := h.uc.Create(GetEmpresaID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "referencia (letra + pto vta + número), fecha y total son requeridos"})
		}
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(factura)
}

// List GET /api/facturas-compra?limit=20&offset=0
func (h *FacturaHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(GetEmpresaID(c), pageFromQuery(c))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/facturas-compra/:id
func (h *FacturaHandler) GetByID(c *fiber.Ctx) error {
	factura, err := h.uc.GetByID(GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(factura)
}

// Delete DELETE /api/facturas-compra/:id
func (h *FacturaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetEmpresaID(c), c.Params("id")); err != nil {
		return handleDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
