package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de caja.
const (
	MovimientoIngreso = "INGRESO"
	MovimientoEgreso  = "EGRESO"
)

// MovimientoCaja representa un movimiento del libro de caja.
// FechaEfectiva es la fecha en la que el movimiento impacta realmente
// (ej: acreditación de un cheque diferido); si es nil se usa Fecha.
// Monto es siempre no negativo; el signo lo da Tipo.
type MovimientoCaja struct {
	ID            string
	EmpresaID     string
	Fecha         time.Time
	FechaEfectiva *time.Time
	Tipo          string // INGRESO | EGRESO
	Monto         decimal.Decimal
	MedioPago     string
	Detalle       string
	Impuestos     []ImpuestoLinea
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FechaImpacto devuelve FechaEfectiva si está definida, si no Fecha.
func (m *MovimientoCaja) FechaImpacto() time.Time {
	if m.FechaEfectiva != nil {
		return *m.FechaEfectiva
	}
	return m.Fecha
}
