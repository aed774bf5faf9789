package retenciones

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

// UseCase casos de uso de certificados de retención de Ganancias (RG 830):
// preview (cálculo puro, sin persistir), emisión (número secuencial + insert
// en una transacción) y consulta.
type UseCase struct {
	txRunner      CertificadoTxRunner
	certRepo      repository.CertificadoRepository
	proveedorRepo repository.ProveedorRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner CertificadoTxRunner, certRepo repository.CertificadoRepository, proveedorRepo repository.ProveedorRepository) *UseCase {
	return &UseCase{txRunner: txRunner, certRepo: certRepo, proveedorRepo: proveedorRepo}
}

// Preview calcula la retención sin persistir nada. Idempotente: la misma
// entrada produce el mismo resultado, salvo el marcador de número que lleva
// fecha y hora. El marcador nunca se persiste.
func (uc *UseCase) Preview(empresaID string, in dto.PreviewRetencionRequest) (*dto.CertificadoResponse, error) {
	cert, err := uc.armarCertificado(empresaID, in.ProveedorID, in.NumeroComprobante, in.FechaComprobante, in.CodigoRegimen, in.ImporteTotal, false)
	if err != nil {
		return nil, err
	}
	cert.Numero = fmt.Sprintf("CR-%s-PREVIEW", time.Now().Format("20060102-1504"))
	return toCertificadoResponse(cert), nil
}

// Emitir valida, calcula y persiste el certificado. El número secuencial se
// toma dentro de la misma transacción que el insert.
func (uc *UseCase) Emitir(ctx context.Context, empresaID string, in dto.EmitirRetencionRequest) (*dto.CertificadoResponse, error) {
	cert, err := uc.armarCertificado(empresaID, in.ProveedorID, in.NumeroComprobante, in.FechaComprobante, in.CodigoRegimen, in.ImporteTotal, true)
	if err != nil {
		return nil, err
	}
	cert.ID = uuid.New().String()
	anio := cert.FechaEmision.Year()
	err = uc.txRunner.RunCertificado(ctx, func(certRepo repository.CertificadoRepository) error {
		n, err := certRepo.ProximoNumeroSecuencial(empresaID, anio)
		if err != nil {
			return err
		}
		cert.Numero = fmt.Sprintf("CR-%d-%08d", anio, n)
		return certRepo.Create(cert)
	})
	if err != nil {
		return nil, err
	}
	return toCertificadoResponse(cert), nil
}

// GetByID obtiene un certificado emitido de la empresa.
func (uc *UseCase) GetByID(empresaID, id string) (*dto.CertificadoResponse, error) {
	cert, err := uc.certRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cert == nil {
		return nil, domain.ErrNotFound
	}
	if cert.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	return toCertificadoResponse(cert), nil
}

// List lista los certificados emitidos de la empresa.
func (uc *UseCase) List(empresaID string, page dto.PageRequest) ([]*dto.CertificadoResponse, error) {
	page = dto.DefaultPage(page)
	certs, err := uc.certRepo.ListByEmpresa(empresaID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CertificadoResponse, 0, len(certs))
	for _, c := range certs {
		out = append(out, toCertificadoResponse(c))
	}
	return out, nil
}

// Regimenes devuelve la tabla de categorías RG 830 disponibles.
func (uc *UseCase) Regimenes() []*dto.RegimenResponse {
	categorias := retencion.Categorias()
	out := make([]*dto.RegimenResponse, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, &dto.RegimenResponse{
			Codigo:              c.Codigo,
			Detalle:             c.Detalle,
			AlicuotaInscripto:   c.AlicuotaInscripto,
			AlicuotaNoInscripto: c.AlicuotaNoInscripto,
			MontoNoSujeto:       c.MontoNoSujeto,
			UsaEscala:           c.UsaEscala,
		})
	}
	return out
}

// armarCertificado valida la entrada y construye el certificado calculado,
// sin ID ni número. fechaObligatoria distingue emisión (requerida) de
// preview (opcional).
func (uc *UseCase) armarCertificado(empresaID, proveedorID, numeroComprobante, fechaComprobante, codigoRegimen string, importeTotal decimal.Decimal, fechaObligatoria bool) (*entity.CertificadoRetencion, error) {
	proveedor, err := uc.proveedorRepo.GetByID(proveedorID)
	if err != nil || proveedor == nil {
		return nil, domain.ErrNotFound
	}
	if proveedor.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	if _, err := afip.ParseComprobanteRef(numeroComprobante); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !importeTotal.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	categoria, ok := retencion.BuscarCategoria(codigoRegimen)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	var fecha time.Time
	if fechaComprobante != "" {
		fecha, err = time.Parse("2006-01-02", fechaComprobante)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	} else if fechaObligatoria {
		return nil, domain.ErrInvalidInput
	}

	inscripto := proveedor.CondicionGanancias == afip.CondicionInscripto
	resultado := retencion.CalcularRetencion(codigoRegimen, inscripto, importeTotal)

	return &entity.CertificadoRetencion{
		EmpresaID:          empresaID,
		FechaEmision:       time.Now(),
		ProveedorID:        proveedor.ID,
		ProveedorNombre:    proveedor.RazonSocial,
		ProveedorCUIT:      proveedor.CUIT,
		NumeroComprobante:  numeroComprobante,
		FechaComprobante:   fecha,
		ImporteTotal:       importeTotal,
		ImporteNeto:        resultado.Neto,
		IVA:                resultado.IVA,
		CodigoRegimen:      categoria.Codigo,
		DetalleRegimen:     categoria.Detalle,
		CondicionGanancias: proveedor.CondicionGanancias,
		ImporteRetenido:    resultado.Retencion,
		TotalAPagar:        importeTotal.Sub(resultado.Retencion),
		CreatedAt:          time.Now(),
	}, nil
}

func toCertificadoResponse(c *entity.CertificadoRetencion) *dto.CertificadoResponse {
	fechaComprobante := ""
	if !c.FechaComprobante.IsZero() {
		fechaComprobante = c.FechaComprobante.Format("2006-01-02")
	}
	return &dto.CertificadoResponse{
		ID:                 c.ID,
		EmpresaID:          c.EmpresaID,
		Numero:             c.Numero,
		FechaEmision:       c.FechaEmision.Format("2006-01-02"),
		ProveedorID:        c.ProveedorID,
		ProveedorNombre:    c.ProveedorNombre,
		ProveedorCUIT:      c.ProveedorCUIT,
		NumeroComprobante:  c.NumeroComprobante,
		FechaComprobante:   fechaComprobante,
		ImporteTotal:       c.ImporteTotal,
		ImporteNeto:        c.ImporteNeto,
		IVA:                c.IVA,
		CodigoRegimen:      c.CodigoRegimen,
		DetalleRegimen:     c.DetalleRegimen,
		CondicionGanancias: c.CondicionGanancias,
		ImporteRetenido:    c.ImporteRetenido,
		TotalAPagar:        c.TotalAPagar,
	}
}
