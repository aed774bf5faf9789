package pagos

import (
	"context"

	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

// PagoTxRunner ejecuta el registro de un pago dentro de una transacción que
// incluye pagos, caja y certificados: el pago, su movimiento de caja EGRESO
// y el certificado de retención (si se emite) se persisten juntos o no se
// persiste ninguno.
type PagoTxRunner interface {
	RunPago(ctx context.Context, fn func(
		pagoRepo repository.PagoRepository,
		cajaRepo repository.MovimientoCajaRepository,
		certRepo repository.CertificadoRepository,
	) error) error
}
