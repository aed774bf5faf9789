package retenciones

import (
	"context"

	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

// CertificadoTxRunner ejecuta la emisión de un certificado dentro de una
// transacción: la toma del número secuencial y el insert van juntos para no
// quemar números si el insert falla.
type CertificadoTxRunner interface {
	RunCertificado(ctx context.Context, fn func(certRepo repository.CertificadoRepository) error) error
}

// CertificadoPDFGenerator genera la representación gráfica (PDF) de un
// certificado de retención emitido.
type CertificadoPDFGenerator interface {
	GenerateCertificadoPDF(ctx context.Context, cert *entity.CertificadoRetencion, empresa *entity.Empresa) ([]byte, error)
}
