package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/application/usecase"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
)

// StockHandler maneja artículos y movimientos de stock (protegido).
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// CreateArticulo POST /api/articulos
func (h *StockHandler) CreateArticulo(c *fiber.Ctx) error {
	var in dto.CreateArticuloRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	articulo, err := h.uc.CreateArticulo(GetEmpresaID(c), in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un artículo con ese código"})
		}
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(articulo)
}

// GetArticulo GET /api/articulos/:id
func (h *StockHandler) GetArticulo(c *fiber.Ctx) error {
	articulo, err := h.uc.GetArticulo(GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(articulo)
}

// ListArticulos GET /api/articulos
func (h *StockHandler) ListArticulos(c *fiber.Ctx) error {
	list, err := h.uc.ListArticulos(GetEmpresaID(c), pageFromQuery(c))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(list)
}

// RegisterMovimiento POST /api/stock/movimientos
func (h *StockHandler) RegisterMovimiento(c *fiber.Ctx) error {
	var in dto.CreateMovimientoStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movimiento, err := h.uc.RegisterMovimiento(GetEmpresaID(c), GetUserID(c), in)
	if err != nil {
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK_INSUFICIENTE", Message: "la salida supera el stock disponible"})
		}
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(movimiento)
}

// ListMovimientos GET /api/articulos/:id/movimientos
func (h *StockHandler) ListMovimientos(c *fiber.Ctx) error {
	list, err := h.uc.ListMovimientos(GetEmpresaID(c), c.Params("id"), pageFromQuery(c))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(list)
}
