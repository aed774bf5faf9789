package dto

import "github.com/shopspring/decimal"

// CreateMovimientoCajaRequest body para POST /api/caja/movimientos.
// Tipo: INGRESO | EGRESO. Monto siempre no negativo; el signo lo da Tipo.
// FechaEfectiva (opcional): fecha de impacto real, ej. acreditación de un
// cheque diferido.
type CreateMovimientoCajaRequest struct {
	Fecha         string             `json:"fecha"`
	FechaEfectiva string             `json:"fecha_efectiva,omitempty"`
	Tipo          string             `json:"tipo"`
	Monto         decimal.Decimal    `json:"monto"`
	MedioPago     string             `json:"medio_pago,omitempty"`
	Detalle       string             `json:"detalle,omitempty"`
	Impuestos     []ImpuestoLineaDTO `json:"impuestos,omitempty"`
}

// UpdateMovimientoCajaRequest body para PUT /api/caja/movimientos/:id.
type UpdateMovimientoCajaRequest struct {
	Fecha         string          `json:"fecha,omitempty"`
	FechaEfectiva string          `json:"fecha_efectiva,omitempty"`
	Tipo          string          `json:"tipo,omitempty"`
	Monto         decimal.Decimal `json:"monto"`
	MedioPago     string          `json:"medio_pago,omitempty"`
	Detalle       string          `json:"detalle,omitempty"`
}

// MovimientoCajaResponse movimiento con saldo acumulado a esa fila.
type MovimientoCajaResponse struct {
	ID            string          `json:"id"`
	EmpresaID     string          `json:"empresa_id"`
	Fecha         string          `json:"fecha"`
	FechaEfectiva string          `json:"fecha_efectiva,omitempty"`
	Tipo          string          `json:"tipo"`
	Monto         decimal.Decimal `json:"monto"`
	MedioPago     string          `json:"medio_pago,omitempty"`
	Detalle       string          `json:"detalle,omitempty"`
	Saldo         decimal.Decimal `json:"saldo"`
}

// ProyeccionMesResponse fila de la proyección mensual de caja.
type ProyeccionMesResponse struct {
	Mes         string          `json:"mes"` // "2024-01"
	Etiqueta    string          `json:"etiqueta"`
	Ingresos    decimal.Decimal `json:"ingresos"`
	Egresos     decimal.Decimal `json:"egresos"`
	Variacion   decimal.Decimal `json:"variacion"`
	SaldoCierre decimal.Decimal `json:"saldo_cierre"`
}
