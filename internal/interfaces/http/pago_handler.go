package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/application/pagos"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
)

// PagoHandler maneja las peticiones HTTP de pagos a proveedores (protegido).
type PagoHandler struct {
	uc *pagos.UseCase
}

// NewPagoHandler construye el handler.
func NewPagoHandler(uc *pagos.UseCase) *PagoHandler {
	return &PagoHandler{uc: uc}
}

// Create POST /api/pagos
func (h *PagoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePagoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pago, err := h.uc.RegistrarPago(c.Context(), GetEmpresaID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha, monto positivo y medio_pago son requeridos (y factura_id + codigo_regimen si emitir_retencion)"})
		}
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(pago)
}

// List GET /api/pagos?limit=20&offset=0
func (h *PagoHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(GetEmpresaID(c), pageFromQuery(c))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/pagos/:id
func (h *PagoHandler) GetByID(c *fiber.Ctx) error {
	pago, err := h.uc.GetByID(GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(pago)
}
