package dto

import "github.com/shopspring/decimal"

// CreatePedidoRequest body para POST /api/pedidos.
type CreatePedidoRequest struct {
	ClienteID string          `json:"cliente_id"`
	Fecha     string          `json:"fecha"`
	Total     decimal.Decimal `json:"total"`
	Detalle   string          `json:"detalle,omitempty"`
}

// UpdatePedidoEstadoRequest body para PATCH /api/pedidos/:id/estado.
// Estado: pendiente, entregado, cancelado.
type UpdatePedidoEstadoRequest struct {
	Estado string `json:"estado"`
}

// PedidoResponse pedido en respuestas.
type PedidoResponse struct {
	ID            string          `json:"id"`
	EmpresaID     string          `json:"empresa_id"`
	ClienteID     string          `json:"cliente_id"`
	ClienteNombre string          `json:"cliente_nombre,omitempty"`
	Fecha         string          `json:"fecha"`
	Estado        string          `json:"estado"`
	Total         decimal.Decimal `json:"total"`
	Detalle       string          `json:"detalle,omitempty"`
}

// CreateRemitoRequest body para POST /api/pedidos/:id/remitos.
type CreateRemitoRequest struct {
	Fecha   string `json:"fecha"`
	Detalle string `json:"detalle,omitempty"`
}

// RemitoResponse remito en respuestas.
type RemitoResponse struct {
	ID        string `json:"id"`
	EmpresaID string `json:"empresa_id"`
	PedidoID  string `json:"pedido_id"`
	Numero    string `json:"numero"`
	Fecha     string `json:"fecha"`
	Detalle   string `json:"detalle,omitempty"`
}
