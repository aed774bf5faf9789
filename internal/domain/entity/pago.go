package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medios de pago de uso frecuente.
const (
	MedioPagoEfectivo      = "EFECTIVO"
	MedioPagoTransferencia = "TRANSFERENCIA"
	MedioPagoCheque        = "CHEQUE"
	MedioPagoTarjeta       = "TARJETA"
)

// Pago representa un pago a un proveedor. Registrar un pago genera el
// movimiento de caja EGRESO correspondiente en la misma transacción.
// CertificadoID referencia el certificado de retención emitido junto con el
// pago, si lo hubo.
type Pago struct {
	ID            string
	EmpresaID     string
	ProveedorID   string
	FacturaID     string // opcional: factura de compra que cancela
	Fecha         time.Time
	Monto         decimal.Decimal
	MedioPago     string
	CertificadoID string
	Detalle       string
	CreatedAt     time.Time
}
