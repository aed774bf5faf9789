package dto

import "github.com/shopspring/decimal"

// ImpuestoLineaDTO impuesto discriminado en un comprobante.
type ImpuestoLineaDTO struct {
	Nombre string          `json:"nombre"`
	Monto  decimal.Decimal `json:"monto"`
}

// CreateFacturaCompraRequest body para POST /api/facturas-compra.
// Referencia: letra + punto de venta (4 dígitos) + número (8 dígitos),
// ej: "A000100001234". Fecha en formato "2006-01-02".
type CreateFacturaCompraRequest struct {
	ProveedorID string             `json:"proveedor_id"`
	Referencia  string             `json:"referencia"`
	Fecha       string             `json:"fecha"`
	Total       decimal.Decimal    `json:"total"`
	Impuestos   []ImpuestoLineaDTO `json:"impuestos,omitempty"`
	Detalle     string             `json:"detalle,omitempty"`
}

// FacturaCompraResponse comprobante de compra en respuestas.
type FacturaCompraResponse struct {
	ID              string             `json:"id"`
	EmpresaID       string             `json:"empresa_id"`
	ProveedorID     string             `json:"proveedor_id"`
	ProveedorNombre string             `json:"proveedor_nombre,omitempty"`
	Referencia      string             `json:"referencia"`
	Fecha           string             `json:"fecha"`
	Total           decimal.Decimal    `json:"total"`
	Impuestos       []ImpuestoLineaDTO `json:"impuestos,omitempty"`
	Detalle         string             `json:"detalle,omitempty"`
}
