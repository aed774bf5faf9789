package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/application/usecase"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
)

// PedidoHandler maneja pedidos de clientes y sus remitos (protegido).
type PedidoHandler struct {
	uc *usecase.PedidoUseCase
}

// NewPedidoHandler construye el handler.
func NewPedidoHandler(uc *usecase.PedidoUseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc}
}

// Create POST /api/pedidos
func (h *PedidoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pedido, err := h.uc.Create(GetEmpresaID(c), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(pedido)
}

// GetByID GET /api/pedidos/:id
func (h *PedidoHandler) GetByID(c *fiber.Ctx) error {
	pedido, err := h.uc.GetByID(GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(pedido)
}

// List GET /api/pedidos
func (h *PedidoHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(GetEmpresaID(c), pageFromQuery(c))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(list)
}

// UpdateEstado PATCH /api/pedidos/:id/estado
func (h *PedidoHandler) UpdateEstado(c *fiber.Ctx) error {
	var in dto.UpdatePedidoEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pedido, err := h.uc.UpdateEstado(GetEmpresaID(c), c.Params("id"), in)
	if err != nil {
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ESTADO_INVALIDO", Message: "transición de estado no permitida"})
		}
		return handleDomainError(c, err)
	}
	return c.JSON(pedido)
}

// CreateRemito POST /api/pedidos/:id/remitos
func (h *PedidoHandler) CreateRemito(c *fiber.Ctx) error {
	var in dto.CreateRemitoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	remito, err := h.uc.CreateRemito(GetEmpresaID(c), c.Params("id"), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(remito)
}

// ListRemitos GET /api/pedidos/:id/remitos
func (h *PedidoHandler) ListRemitos(c *fiber.Ctx) error {
	list, err := h.uc.ListRemitos(GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(list)
}
