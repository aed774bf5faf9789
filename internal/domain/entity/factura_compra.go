package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ImpuestoLinea es un impuesto discriminado en un comprobante o movimiento
// (IVA, Percepción IIBB, impuestos internos, etc.).
type ImpuestoLinea struct {
	Nombre string
	Monto  decimal.Decimal
}

// FacturaCompra representa un comprobante de compra recibido de un proveedor.
// Referencia codifica letra + punto de venta (4 dígitos) + número (8 dígitos),
// ej: "A000100001234". Es la fila de origen del Libro IVA Digital de compras.
type FacturaCompra struct {
	ID          string
	EmpresaID   string
	ProveedorID string
	Referencia  string
	Fecha       time.Time
	Total       decimal.Decimal // importe total de la operación (bruto)
	Impuestos   []ImpuestoLinea
	Detalle     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
