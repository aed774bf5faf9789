package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/application/retenciones"
)

// RetencionHandler maneja las peticiones HTTP de certificados de retención.
type RetencionHandler struct {
	uc    *retenciones.UseCase
	pdfUC *retenciones.PDFUseCase
}

// NewRetencionHandler construye el handler.
func NewRetencionHandler(uc *retenciones.UseCase, pdfUC *retenciones.PDFUseCase) *RetencionHandler {
	return &RetencionHandler{uc: uc, pdfUC: pdfUC}
}

// Preview POST /api/retenciones/preview — calcula sin persistir.
func (h *RetencionHandler) Preview(c *fiber.Ctx) error {
	var in dto.PreviewRetencionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cert, err := h.uc.Preview(GetEmpresaID(c), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(cert)
}

// Emitir POST /api/retenciones — numera y persiste el certificado.
func (h *RetencionHandler) Emitir(c *fiber.Ctx) error {
	var in dto.EmitirRetencionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cert, err := h.uc.Emitir(c.Context(), GetEmpresaID(c), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cert)
}

// GetByID GET /api/retenciones/:id
func (h *RetencionHandler) GetByID(c *fiber.Ctx) error {
	cert, err := h.uc.GetByID(GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(cert)
}

// List GET /api/retenciones
func (h *RetencionHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(GetEmpresaID(c), pageFromQuery(c))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(list)
}

// Regimenes GET /api/retenciones/regimenes — catálogo RG 830 disponible.
func (h *RetencionHandler) Regimenes(c *fiber.Ctx) error {
	return c.JSON(h.uc.Regimenes())
}

// DownloadPDF GET /api/retenciones/:id/pdf
func (h *RetencionHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DownloadCertificadoPDF(c.Context(), GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
