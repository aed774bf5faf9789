package libro

import (
	"strings"
	"time"

	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/libroiva"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
	"github.com/tu-usuario/gestion-pyme/pkg/logger"
)

// Archivo es el resultado de una exportación: nombre fijo que espera el
// aplicativo de AFIP y contenido listo para descargar.
type Archivo struct {
	Nombre    string
	Contenido string
}

// UseCase exporta el Libro IVA Digital de compras: junta las facturas del
// período, resuelve la razón social y CUIT de cada proveedor y delega el
// formato al exportador de dominio.
type UseCase struct {
	facturaRepo   repository.FacturaCompraRepository
	proveedorRepo repository.ProveedorRepository
	log           *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(facturaRepo repository.FacturaCompraRepository, proveedorRepo repository.ProveedorRepository, log *logger.Logger) *UseCase {
	return &UseCase{facturaRepo: facturaRepo, proveedorRepo: proveedorRepo, log: log}
}

// ExportarCompras genera el archivo de comprobantes del período [desde,
// hasta]. Ambas fechas son obligatorias; un rango incompleto rechaza la
// operación, nunca produce un archivo parcial. Los desbordes de columna se
// loguean como advertencia pero no cortan la exportación.
func (uc *UseCase) ExportarCompras(empresaID, desde, hasta string) (*Archivo, error) {
	comprobantes, err := uc.comprobantesDelPeriodo(empresaID, desde, hasta)
	if err != nil {
		return nil, err
	}
	contenido, err := libroiva.ExportarLibroCompras(comprobantes, desde, hasta)
	if err != nil {
		return nil, err
	}
	return &Archivo{Nombre: libroiva.NombreArchivoCompras, Contenido: contenido}, nil
}

// ExportarComprasAlicuotas genera el archivo de alícuotas que acompaña al de
// comprobantes.
func (uc *UseCase) ExportarComprasAlicuotas(empresaID, desde, hasta string) (*Archivo, error) {
	if desde == "" || hasta == "" {
		return nil, domain.ErrRangoFechasRequerido
	}
	comprobantes, err := uc.comprobantesDelPeriodo(empresaID, desde, hasta)
	if err != nil {
		return nil, err
	}
	contenido := strings.Join(libroiva.ExportarLineasAlicuotas(comprobantes), "\n")
	return &Archivo{Nombre: libroiva.NombreArchivoComprasAlicuotas, Contenido: contenido}, nil
}

func (uc *UseCase) comprobantesDelPeriodo(empresaID, desde, hasta string) ([]libroiva.Comprobante, error) {
	if desde == "" || hasta == "" {
		return nil, domain.ErrRangoFechasRequerido
	}
	fechaDesde, err := time.Parse("2006-01-02", desde)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	fechaHasta, err := time.Parse("2006-01-02", hasta)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if fechaHasta.Before(fechaDesde) {
		return nil, domain.ErrInvalidInput
	}

	facturas, err := uc.facturaRepo.ListByEmpresaYRango(empresaID, fechaDesde, fechaHasta)
	if err != nil {
		return nil, err
	}

	// cache de proveedores del período
	proveedores := make(map[string]struct{ nombre, cuit string })
	comprobantes := make([]libroiva.Comprobante, 0, len(facturas))
	for _, f := range facturas {
		datos, ok := proveedores[f.ProveedorID]
		if !ok {
			if p, err := uc.proveedorRepo.GetByID(f.ProveedorID); err == nil && p != nil {
				datos = struct{ nombre, cuit string }{p.RazonSocial, p.CUIT}
			}
			proveedores[f.ProveedorID] = datos
		}
		impuestos := make([]libroiva.Impuesto, 0, len(f.Impuestos))
		for _, imp := range f.Impuestos {
			impuestos = append(impuestos, libroiva.Impuesto{Nombre: imp.Nombre, Monto: imp.Monto})
		}
		c := libroiva.Comprobante{
			Referencia:    f.Referencia,
			Fecha:         f.Fecha,
			CUITProveedor: datos.cuit,
			Proveedor:     datos.nombre,
			Total:         f.Total,
			Impuestos:     impuestos,
		}
		if desbordes := c.Desbordes(); len(desbordes) > 0 {
			uc.log.Warn().
				Str("factura_id", f.ID).
				Str("referencia", f.Referencia).
				Strs("campos", desbordes).
				Msg("comprobante con campos que desbordan su columna")
		}
		comprobantes = append(comprobantes, c)
	}
	return comprobantes, nil
}
