package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
	"github.com/tu-usuario/gestion-pyme/pkg/afip"
)

// FacturaCompraUseCase casos de uso para comprobantes de compra. Son la fila
// de origen del Libro IVA Digital.
type FacturaCompraUseCase struct {
	facturaRepo   repository.FacturaCompraRepository
	proveedorRepo repository.ProveedorRepository
}

// NewFacturaCompraUseCase construye el caso de uso.
func NewFacturaCompraUseCase(facturaRepo repository.FacturaCompraRepository, proveedorRepo repository.ProveedorRepository) *FacturaCompraUseCase {
	return &FacturaCompraUseCase{facturaRepo: facturaRepo, proveedorRepo: proveedorRepo}
}

// Create registra un comprobante de compra. La referencia se valida contra el
// formato letra + punto de venta + número; un comprobante malformado se
// rechaza acá aunque el exportador del libro lo degrade a ceros.
func (uc *FacturaCompraUseCase) Create(empresaID string, in dto.CreateFacturaCompraRequest) (*dto.FacturaCompraResponse, error) {
	proveedor, err := uc.proveedorRepo.GetByID(in.ProveedorID)
	if err != nil || proveedor == nil {
		return nil, domain.ErrNotFound
	}
	if proveedor.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	if _, err := afip.ParseComprobanteRef(in.Referencia); err != nil {
		return nil, domain.ErrInvalidInput
	}
	fecha, err := time.Parse("2006-01-02", in.Fecha)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Total.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	impuestos := make([]entity.ImpuestoLinea, 0, len(in.Impuestos))
	for _, imp := range in.Impuestos {
		impuestos = append(impuestos, entity.ImpuestoLinea{Nombre: imp.Nombre, Monto: imp.Monto})
	}
	now := time.Now()
	factura := &entity.FacturaCompra{
		ID:          uuid.New().String(),
		EmpresaID:   empresaID,
		ProveedorID: in.ProveedorID,
		Referencia:  in.Referencia,
		Fecha:       fecha,
		Total:       in.Total,
		Impuestos:   impuestos,
		Detalle:     in.Detalle,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.facturaRepo.Create(factura); err != nil {
		return nil, err
	}
	return uc.toResponse(factura, proveedor.RazonSocial), nil
}

// GetByID obtiene un comprobante de compra de la empresa.
func (uc *FacturaCompraUseCase) GetByID(empresaID, id string) (*dto.FacturaCompraResponse, error) {
	factura, err := uc.facturaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if factura == nil {
		return nil, domain.ErrNotFound
	}
	if factura.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	nombre := ""
	if proveedor, _ := uc.proveedorRepo.GetByID(factura.ProveedorID); proveedor != nil {
		nombre = proveedor.RazonSocial
	}
	return uc.toResponse(factura, nombre), nil
}

// List lista los comprobantes de compra de la empresa.
func (uc *FacturaCompraUseCase) List(empresaID string, page dto.PageRequest) ([]*dto.FacturaCompraResponse, error) {
	page = dto.DefaultPage(page)
	facturas, err := uc.facturaRepo.ListByEmpresa(empresaID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FacturaCompraResponse, 0, len(facturas))
	for _, f := range facturas {
		out = append(out, uc.toResponse(f, ""))
	}
	return out, nil
}

// Delete elimina un comprobante de compra.
func (uc *FacturaCompraUseCase) Delete(empresaID, id string) error {
	factura, err := uc.facturaRepo.GetByID(id)
	if err != nil {
		return err
	}
	if factura == nil {
		return domain.ErrNotFound
	}
	if factura.EmpresaID != empresaID {
		return domain.ErrForbidden
	}
	return uc.facturaRepo.Delete(id)
}

func (uc *FacturaCompraUseCase) toResponse(f *entity.FacturaCompra, proveedorNombre string) *dto.FacturaCompraResponse {
	impuestos := make([]dto.ImpuestoLineaDTO, 0, len(f.Impuestos))
	for _, imp := range f.Impuestos {
		impuestos = append(impuestos, dto.ImpuestoLineaDTO{Nombre: imp.Nombre, Monto: imp.Monto})
	}
	return &dto.FacturaCompraResponse{
		ID:              f.ID,
		EmpresaID:       f.EmpresaID,
		ProveedorID:     f.ProveedorID,
		ProveedorNombre: proveedorNombre,
		Referencia:      f.Referencia,
		Fecha:           f.Fecha.Format("2006-01-02"),
		Total:           f.Total,
		Impuestos:       impuestos,
		Detalle:         f.Detalle,
	}
}
