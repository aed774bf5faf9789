package repository

import (
	"time"

	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

// FacturaCompraRepository define el puerto de persistencia para FacturaCompra
// (cabecera + impuestos discriminados).
type FacturaCompraRepository interface {
	Create(factura *entity.FacturaCompra) error
	GetByID(id string) (*entity.FacturaCompra, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.FacturaCompra, error)
	// ListByEmpresaYRango lista las facturas del período [desde, hasta]
	// inclusive, ordenadas por fecha. Alimenta el Libro IVA Digital.
	ListByEmpresaYRango(empresaID string, desde, hasta time.Time) ([]*entity.FacturaCompra, error)
	Delete(id string) error
}
