package pagos

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
	"github.com/tu-usuario/gestion-pyme/internal/domain/retencion"
	"github.com/tu-usuario/gestion-pyme/pkg/afip"
)

// UseCase registra pagos a proveedores. Registrar un pago genera el
// movimiento de caja EGRESO en la misma transacción; si se pide, también
// emite el certificado de retención de Ganancias, y el egreso de caja es el
// neto a pagar (monto menos retención).
type UseCase struct {
	txRunner      PagoTxRunner
	pagoRepo      repository.PagoRepository
	proveedorRepo repository.ProveedorRepository
	facturaRepo   repository.FacturaCompraRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner PagoTxRunner, pagoRepo repository.PagoRepository, proveedorRepo repository.ProveedorRepository, facturaRepo repository.FacturaCompraRepository) *UseCase {
	return &UseCase{txRunner: txRunner, pagoRepo: pagoRepo, proveedorRepo: proveedorRepo, facturaRepo: facturaRepo}
}

// RegistrarPago valida y persiste el pago, su movimiento de caja y el
// certificado de retención opcional, todo en una transacción.
func (uc *UseCase) RegistrarPago(ctx context.Context, empresaID string, in dto.CreatePagoRequest) (*dto.PagoResponse, error) {
	proveedor, err := uc.proveedorRepo.GetByID(in.ProveedorID)
	if err != nil || proveedor == nil {
		return nil, domain.ErrNotFound
	}
	if proveedor.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	fecha, err := time.Parse("2006-01-02", in.Fecha)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !in.Monto.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	switch in.MedioPago {
	case entity.MedioPagoEfectivo, entity.MedioPagoTransferencia, entity.MedioPagoCheque, entity.MedioPagoTarjeta:
	default:
		return nil, domain.ErrInvalidInput
	}

	var factura *entity.FacturaCompra
	if in.FacturaID != "" {
		factura, err = uc.facturaRepo.GetByID(in.FacturaID)
		if err != nil || factura == nil {
			return nil, domain.ErrNotFound
		}
		if factura.EmpresaID != empresaID || factura.ProveedorID != proveedor.ID {
			return nil, domain.ErrForbidden
		}
	}

	// Certificado de retención opcional: requiere la factura para la
	// referencia del comprobante.
	var cert *entity.CertificadoRetencion
	if in.EmitirRetencion {
		if factura == nil {
			return nil, domain.ErrInvalidInput
		}
		categoria, ok := retencion.BuscarCategoria(in.CodigoRegimen)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		inscripto := proveedor.CondicionGanancias == afip.CondicionInscripto
		resultado := retencion.CalcularRetencion(categoria.Codigo, inscripto, in.Monto)
		cert = &entity.CertificadoRetencion{
			ID:                 uuid.New().String(),
			EmpresaID:          empresaID,
			FechaEmision:       fecha,
			ProveedorID:        proveedor.ID,
			ProveedorNombre:    proveedor.RazonSocial,
			ProveedorCUIT:      proveedor.CUIT,
			NumeroComprobante:  factura.Referencia,
			FechaComprobante:   factura.Fecha,
			ImporteTotal:       in.Monto,
			ImporteNeto:        resultado.Neto,
			IVA:                resultado.IVA,
			CodigoRegimen:      categoria.Codigo,
			DetalleRegimen:     categoria.Detalle,
			CondicionGanancias: proveedor.CondicionGanancias,
			ImporteRetenido:    resultado.Retencion,
			TotalAPagar:        in.Monto.Sub(resultado.Retencion),
			CreatedAt:          time.Now(),
		}
	}

	now := time.Now()
	pago := &entity.Pago{
		ID:          uuid.New().String(),
		EmpresaID:   empresaID,
		ProveedorID: proveedor.ID,
		FacturaID:   in.FacturaID,
		Fecha:       fecha,
		Monto:       in.Monto,
		MedioPago:   in.MedioPago,
		Detalle:     in.Detalle,
		CreatedAt:   now,
	}

	err = uc.txRunner.RunPago(ctx, func(
		pagoRepo repository.PagoRepository,
		cajaRepo repository.MovimientoCajaRepository,
		certRepo repository.CertificadoRepository,
	) error {
		egreso := pago.Monto
		if cert != nil {
			n, err := certRepo.ProximoNumeroSecuencial(empresaID, fecha.Year())
			if err != nil {
				return err
			}
			cert.Numero = fmt.Sprintf("CR-%d-%08d", fecha.Year(), n)
			if err := certRepo.Create(cert); err != nil {
				return err
			}
			pago.CertificadoID = cert.ID
			// el efectivo que sale de caja es el neto a pagar
			egreso = cert.TotalAPagar
		}
		if err := pagoRepo.Create(pago); err != nil {
			return err
		}
		movimiento := &entity.MovimientoCaja{
			ID:        uuid.New().String(),
			EmpresaID: empresaID,
			Fecha:     fecha,
			Tipo:      entity.MovimientoEgreso,
			Monto:     egreso,
			MedioPago: in.MedioPago,
			Detalle:   fmt.Sprintf("Pago a %s", proveedor.RazonSocial),
			CreatedAt: now,
			UpdatedAt: now,
		}
		return cajaRepo.Create(movimiento)
	})
	if err != nil {
		return nil, err
	}
	return toPagoResponse(pago), nil
}

// GetByID obtiene un pago de la empresa.
func (uc *UseCase) GetByID(empresaID, id string) (*dto.PagoResponse, error) {
	pago, err := uc.pagoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pago == nil {
		return nil, domain.ErrNotFound
	}
	if pago.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	return toPagoResponse(pago), nil
}

// List lista los pagos de la empresa.
func (uc *UseCase) List(empresaID string, page dto.PageRequest) ([]*dto.PagoResponse, error) {
	page = dto.DefaultPage(page)
	pagos, err := uc.pagoRepo.ListByEmpresa(empresaID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PagoResponse, 0, len(pagos))
	for _, p := range pagos {
		out = append(out, toPagoResponse(p))
	}
	return out, nil
}

func toPagoResponse(p *entity.Pago) *dto.PagoResponse {
	return &dto.PagoResponse{
		ID:            p.ID,
		EmpresaID:     p.EmpresaID,
		ProveedorID:   p.ProveedorID,
		FacturaID:     p.FacturaID,
		Fecha:         p.Fecha.Format("2006-01-02"),
		Monto:         p.Monto,
		MedioPago:     p.MedioPago,
		CertificadoID: p.CertificadoID,
		Detalle:       p.Detalle,
	}
}
