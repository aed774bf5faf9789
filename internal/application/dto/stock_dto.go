package dto

import "github.com/shopspring/decimal"

// CreateArticuloRequest body para POST /api/articulos.
type CreateArticuloRequest struct {
	Codigo      string `json:"codigo"`
	Descripcion string `json:"descripcion"`
	Unidad      string `json:"unidad,omitempty"`
}

// ArticuloResponse artículo en respuestas. Stock es la existencia actual
// (suma de movimientos).
type ArticuloResponse struct {
	ID          string          `json:"id"`
	EmpresaID   string          `json:"empresa_id"`
	Codigo      string          `json:"codigo"`
	Descripcion string          `json:"descripcion"`
	Unidad      string          `json:"unidad,omitempty"`
	Stock       decimal.Decimal `json:"stock"`
}

// CreateMovimientoStockRequest body para POST /api/stock/movimientos.
// Tipo: entrada, salida o ajuste. Cantidad siempre positiva en el request;
// para salidas se registra con signo negativo.
type CreateMovimientoStockRequest struct {
	ArticuloID string          `json:"articulo_id"`
	Tipo       string          `json:"tipo"`
	Cantidad   decimal.Decimal `json:"cantidad"`
	Referencia string          `json:"referencia,omitempty"`
	Notas      string          `json:"notas,omitempty"`
}

// MovimientoStockResponse movimiento de stock en respuestas.
type MovimientoStockResponse struct {
	ID         string          `json:"id"`
	EmpresaID  string          `json:"empresa_id"`
	ArticuloID string          `json:"articulo_id"`
	Tipo       string          `json:"tipo"`
	Cantidad   decimal.Decimal `json:"cantidad"`
	Referencia string          `json:"referencia,omitempty"`
	Notas      string          `json:"notas,omitempty"`
	CreatedBy  string          `json:"created_by,omitempty"`
}
