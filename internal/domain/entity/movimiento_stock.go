package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	StockEntrada = "entrada"
	StockSalida  = "salida"
	StockAjuste  = "ajuste"
)

// MovimientoStock representa un movimiento de stock (entrada, salida o ajuste).
type MovimientoStock struct {
	ID         string
	EmpresaID  string
	ArticuloID string
	Tipo       string // entrada, salida, ajuste
	Cantidad   decimal.Decimal // positiva para entrada/ajuste+, negativa para salida
	Referencia string          // factura, remito, nota de ajuste, etc.
	Notas      string
	CreatedAt  time.Time
	CreatedBy  string // UsuarioID
}
