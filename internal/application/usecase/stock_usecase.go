package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

// StockUseCase casos de uso de artículos y movimientos de stock. La
// existencia actual de un artículo es la suma de sus movimientos.
type StockUseCase struct {
	articuloRepo   repository.ArticuloRepository
	movimientoRepo repository.MovimientoStockRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(articuloRepo repository.ArticuloRepository, movimientoRepo repository.MovimientoStockRepository) *StockUseCase {
	return &StockUseCase{articuloRepo: articuloRepo, movimientoRepo: movimientoRepo}
}

// CreateArticulo crea un artículo. Rechaza código duplicado en la empresa.
func (uc *StockUseCase) CreateArticulo(empresaID string, in dto.CreateArticuloRequest) (*dto.ArticuloResponse, error) {
	if in.Codigo == "" || in.Descripcion == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.articuloRepo.GetByEmpresaYCodigo(empresaID, in.Codigo)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	unidad := in.Unidad
	if unidad == "" {
		unidad = "unidad"
	}
	now := time.Now()
	articulo := &entity.Articulo{
		ID:          uuid.New().String(),
		EmpresaID:   empresaID,
		Codigo:      in.Codigo,
		Descripcion: in.Descripcion,
		Unidad:      unidad,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.articuloRepo.Create(articulo); err != nil {
		return nil, err
	}
	return uc.toArticuloResponse(articulo, decimal.Zero), nil
}

// GetArticulo obtiene un artículo con su existencia actual.
func (uc *StockUseCase) GetArticulo(empresaID, id string) (*dto.ArticuloResponse, error) {
	articulo, err := uc.articuloRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if articulo == nil {
		return nil, domain.ErrNotFound
	}
	if articulo.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	stock, err := uc.stockActual(id)
	if err != nil {
		return nil, err
	}
	return uc.toArticuloResponse(articulo, stock), nil
}

// ListArticulos lista los artículos de la empresa con existencia actual.
func (uc *StockUseCase) ListArticulos(empresaID string, page dto.PageRequest) ([]*dto.ArticuloResponse, error) {
	page = dto.DefaultPage(page)
	articulos, err := uc.articuloRepo.ListByEmpresa(empresaID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ArticuloResponse, 0, len(articulos))
	for _, a := range articulos {
		stock, err := uc.stockActual(a.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, uc.toArticuloResponse(a, stock))
	}
	return out, nil
}

// RegisterMovimiento registra un movimiento de stock. Las salidas se
// persisten con cantidad negativa; no se permite dejar existencia negativa.
func (uc *StockUseCase) RegisterMovimiento(empresaID, userID string, in dto.CreateMovimientoStockRequest) (*dto.MovimientoStockResponse, error) {
	articulo, err := uc.articuloRepo.GetByID(in.ArticuloID)
	if err != nil || articulo == nil {
		return nil, domain.ErrNotFound
	}
	if articulo.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	if !in.Cantidad.GreaterThan(decimal.Zero) && in.Tipo != entity.StockAjuste {
		return nil, domain.ErrInvalidInput
	}
	cantidad := in.Cantidad
	switch in.Tipo {
	case entity.StockEntrada, entity.StockAjuste:
		// la cantidad viaja con su signo
	case entity.StockSalida:
		cantidad = cantidad.Neg()
	default:
		return nil, domain.ErrInvalidInput
	}
	if cantidad.LessThan(decimal.Zero) {
		actual, err := uc.stockActual(in.ArticuloID)
		if err != nil {
			return nil, err
		}
		if actual.Add(cantidad).LessThan(decimal.Zero) {
			return nil, domain.ErrConflict
		}
	}
	movimiento := &entity.MovimientoStock{
		ID:         uuid.New().String(),
		EmpresaID:  empresaID,
		ArticuloID: in.ArticuloID,
		Tipo:       in.Tipo,
		Cantidad:   cantidad,
		Referencia: in.Referencia,
		Notas:      in.Notas,
		CreatedAt:  time.Now(),
		CreatedBy:  userID,
	}
	if err := uc.movimientoRepo.Create(movimiento); err != nil {
		return nil, err
	}
	return toMovimientoStockResponse(movimiento), nil
}

// ListMovimientos lista los movimientos de un artículo.
func (uc *StockUseCase) ListMovimientos(empresaID, articuloID string, page dto.PageRequest) ([]*dto.MovimientoStockResponse, error) {
	articulo, err := uc.articuloRepo.GetByID(articuloID)
	if err != nil || articulo == nil {
		return nil, domain.ErrNotFound
	}
	if articulo.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	page = dto.DefaultPage(page)
	movimientos, err := uc.movimientoRepo.ListByArticulo(articuloID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovimientoStockResponse, 0, len(movimientos))
	for _, m := range movimientos {
		out = append(out, toMovimientoStockResponse(m))
	}
	return out, nil
}

func (uc *StockUseCase) stockActual(articuloID string) (decimal.Decimal, error) {
	movimientos, err := uc.movimientoRepo.ListByArticulo(articuloID, 0, 0)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, m := range movimientos {
		total = total.Add(m.Cantidad)
	}
	return total, nil
}

func (uc *StockUseCase) toArticuloResponse(a *entity.Articulo, stock decimal.Decimal) *dto.ArticuloResponse {
	return &dto.ArticuloResponse{
		ID:          a.ID,
		EmpresaID:   a.EmpresaID,
		Codigo:      a.Codigo,
		Descripcion: a.Descripcion,
		Unidad:      a.Unidad,
		Stock:       stock,
	}
}

func toMovimientoStockResponse(m *entity.MovimientoStock) *dto.MovimientoStockResponse {
	return &dto.MovimientoStockResponse{
		ID:         m.ID,
		EmpresaID:  m.EmpresaID,
		ArticuloID: m.ArticuloID,
		Tipo:       m.Tipo,
		Cantidad:   m.Cantidad,
		Referencia: m.Referencia,
		Notas:      m.Notas,
		CreatedBy:  m.CreatedBy,
	}
}
