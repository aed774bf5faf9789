package repository

import "github.com/tu-usuario/gestion-pyme/internal/domain/entity"

// ArticuloRepository define el puerto de persistencia para Articulo.
type ArticuloRepository interface {
	Create(articulo *entity.Articulo) error
	GetByID(id string) (*entity.Articulo, error)
	GetByEmpresaYCodigo(empresaID, codigo string) (*entity.Articulo, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Articulo, error)
	Update(articulo *entity.Articulo) error
}

// MovimientoStockRepository define el puerto de persistencia para MovimientoStock.
type MovimientoStockRepository interface {
	Create(movimiento *entity.MovimientoStock) error
	ListByArticulo(articuloID string, limit, offset int) ([]*entity.MovimientoStock, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.MovimientoStock, error)
}
