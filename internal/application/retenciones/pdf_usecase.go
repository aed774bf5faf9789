package retenciones

import (
	"context"
	"fmt"

	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

// PDFUseCase genera la representación gráfica (PDF) de un certificado de
// retención emitido.
type PDFUseCase struct {
	certRepo    repository.CertificadoRepository
	empresaRepo repository.EmpresaRepository
	generator   CertificadoPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(certRepo repository.CertificadoRepository, empresaRepo repository.EmpresaRepository, generator CertificadoPDFGenerator) *PDFUseCase {
	return &PDFUseCase{certRepo: certRepo, empresaRepo: empresaRepo, generator: generator}
}

// DownloadCertificadoPDF recupera el certificado, verifica tenencia y genera
// el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el certificado no existe.
//   - domain.ErrForbidden        si no pertenece a la empresa del token.
func (uc *PDFUseCase) DownloadCertificadoPDF(ctx context.Context, empresaID, certificadoID string) (pdfBytes []byte, filename string, err error) {
	cert, err := uc.certRepo.GetByID(certificadoID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener certificado: %w", err)
	}
	if cert == nil {
		return nil, "", domain.ErrNotFound
	}
	if cert.EmpresaID != empresaID {
		return nil, "", domain.ErrForbidden
	}

	empresa, err := uc.empresaRepo.GetByID(empresaID)
	if err != nil || empresa == nil {
		return nil, "", fmt.Errorf("pdf: obtener empresa: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateCertificadoPDF(ctx, cert, empresa)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("certificado_%s.pdf", cert.Numero)
	return pdfBytes, filename, nil
}
