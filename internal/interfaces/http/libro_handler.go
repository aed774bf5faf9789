package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pyme/internal/application/libro"
)

// LibroHandler maneja la exportación del Libro IVA Digital de compras.
type LibroHandler struct {
	uc *libro.UseCase
}

// NewLibroHandler construye el handler.
func NewLibroHandler(uc *libro.UseCase) *LibroHandler {
	return &LibroHandler{uc: uc}
}

// ExportarCompras GET /api/libro-iva/compras?desde=YYYY-MM-DD&hasta=YYYY-MM-DD
func (h *LibroHandler) ExportarCompras(c *fiber.Ctx) error {
	archivo, err := h.uc.ExportarCompras(GetEmpresaID(c), c.Query("desde"), c.Query("hasta"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return enviarArchivoTxt(c, archivo)
}

// ExportarComprasAlicuotas GET /api/libro-iva/compras-alicuotas?desde=YYYY-MM-DD&hasta=YYYY-MM-DD
func (h *LibroHandler) ExportarComprasAlicuotas(c *fiber.Ctx) error {
	archivo, err := h.uc.ExportarComprasAlicuotas(GetEmpresaID(c), c.Query("desde"), c.Query("hasta"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return enviarArchivoTxt(c, archivo)
}

func enviarArchivoTxt(c *fiber.Ctx, archivo *libro.Archivo) error {
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+archivo.Nombre+`"`)
	return c.SendString(archivo.Contenido)
}
