package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido.
const (
	PedidoPendiente = "pendiente"
	PedidoEntregado = "entregado"
	PedidoCancelado = "cancelado"
)

// Pedido representa un pedido de venta de un cliente.
type Pedido struct {
	ID        string
	EmpresaID string
	ClienteID string
	Fecha     time.Time
	Estado    string // pendiente, entregado, cancelado
	Total     decimal.Decimal
	Detalle   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Remito representa un remito de entrega asociado a un pedido.
type Remito struct {
	ID        string
	EmpresaID string
	PedidoID  string
	Numero    string // ej: "R-0001-00000042"
	Fecha     time.Time
	Detalle   string
	CreatedAt time.Time
}
