package repository

import "github.com/tu-usuario/gestion-pyme/internal/domain/entity"

// PedidoRepository define el puerto de persistencia para Pedido.
type PedidoRepository interface {
	Create(pedido *entity.Pedido) error
	GetByID(id string) (*entity.Pedido, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Pedido, error)
	UpdateEstado(id, estado string) error
}

// RemitoRepository define el puerto de persistencia para Remito.
type RemitoRepository interface {
	Create(remito *entity.Remito) error
	GetByID(id string) (*entity.Remito, error)
	ListByPedido(pedidoID string) ([]*entity.Remito, error)
}
